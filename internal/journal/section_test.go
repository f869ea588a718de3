package journal

import (
	"reflect"
	"testing"
)

const (
	marker = "### Dream Journal"
	prefix = "###"
)

func TestExtractSectionStopsAtNextHeading(t *testing.T) {
	lines := []string{"2024-06-24", "### Dream Journal", "I dreamed of clouds", "### Next"}
	got := ExtractSection(lines, marker, prefix)
	want := []string{"I dreamed of clouds"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractSection() = %#v, want %#v", got, want)
	}
}

func TestExtractSectionMissingMarker(t *testing.T) {
	lines := []string{"2024-06-24", "### Work", "9:00-10:00"}
	if got := ExtractSection(lines, marker, prefix); len(got) != 0 {
		t.Fatalf("ExtractSection() = %#v, want empty", got)
	}
}

func TestExtractSectionMarkerIsExactMatch(t *testing.T) {
	lines := []string{"### Dream Journal notes", "content", "### dream journal", "more"}
	if got := ExtractSection(lines, marker, prefix); len(got) != 0 {
		t.Fatalf("ExtractSection() = %#v, want empty", got)
	}
}

func TestExtractSectionRunsToEndOfDocument(t *testing.T) {
	lines := []string{"### Work", "9:00-10:00", "### Dream Journal", "falling", "", "then flying"}
	got := ExtractSection(lines, marker, prefix)
	want := []string{"falling", "", "then flying"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractSection() = %#v, want %#v", got, want)
	}
}

func TestExtractSectionEmptyRanges(t *testing.T) {
	tests := [][]string{
		{"intro", "### Dream Journal"},
		{"### Dream Journal", "### Work", "9:00-10:00"},
	}
	for _, lines := range tests {
		if got := ExtractSection(lines, marker, prefix); len(got) != 0 {
			t.Fatalf("ExtractSection(%#v) = %#v, want empty", lines, got)
		}
	}
}

func TestExtractSectionUsesFirstMarker(t *testing.T) {
	lines := []string{"### Dream Journal", "first", "### Dream Journal", "second"}
	got := ExtractSection(lines, marker, prefix)
	want := []string{"first"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractSection() = %#v, want %#v", got, want)
	}
}

func TestExtractSectionDoesNotAliasInput(t *testing.T) {
	lines := []string{"### Dream Journal", "a", "b"}
	got := ExtractSection(lines, marker, prefix)
	got[0] = "changed"
	if lines[1] != "a" {
		t.Fatalf("input mutated: %#v", lines)
	}
}
