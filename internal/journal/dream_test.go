package journal

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestMergeIfAbsentIsIdempotent(t *testing.T) {
	title := "### 2024-06-24"
	lines := []string{"I dreamed of clouds"}
	journal := []string{""}

	ok, entry := MergeIfAbsent(title, lines, journal)
	if !ok {
		t.Fatalf("first MergeIfAbsent() = false, want true")
	}
	if entry != "\n\n### 2024-06-24\nI dreamed of clouds" {
		t.Fatalf("entry = %q", entry)
	}

	updated := strings.Split(strings.Join(journal, "\n")+entry, "\n")
	ok, entry = MergeIfAbsent(title, lines, updated)
	if ok {
		t.Fatalf("second MergeIfAbsent() = true, want false")
	}
	if entry != "" {
		t.Fatalf("second entry = %q, want empty", entry)
	}
}

func TestMergeIfAbsentRequiresExactTitle(t *testing.T) {
	journal := []string{"### 2024-06-24 (copy)", "old dream"}
	if ok, _ := MergeIfAbsent("### 2024-06-24", []string{"new"}, journal); !ok {
		t.Fatalf("MergeIfAbsent() = false, want true")
	}
}

func TestBuildEntryMultipleLines(t *testing.T) {
	got := BuildEntry("### 2024-06-25", []string{"a", "", "b"})
	want := "\n\n### 2024-06-25\na\n\nb"
	if got != want {
		t.Fatalf("BuildEntry() = %q, want %q", got, want)
	}
}

func TestNewDreamEntryTrimsBlankEdges(t *testing.T) {
	entry, ok := NewDreamEntry("###", "2024-06-24", []string{"", "flying", "", "over water", "  "})
	if !ok {
		t.Fatalf("NewDreamEntry() ok = false")
	}
	if entry.Title != "### 2024-06-24" {
		t.Fatalf("Title = %q", entry.Title)
	}
	want := []string{"flying", "", "over water"}
	if !reflect.DeepEqual(entry.Lines, want) {
		t.Fatalf("Lines = %#v, want %#v", entry.Lines, want)
	}
	if got := BuildEntry(entry.Title, entry.Lines); got != "\n\n### 2024-06-24\nflying\n\nover water" {
		t.Fatalf("BuildEntry() = %q", got)
	}

	if _, ok := NewDreamEntry("###", "2024-06-24", []string{"", " "}); ok {
		t.Fatalf("NewDreamEntry(blank) ok = true, want false")
	}
}

func TestEntryTitleUsesDatePortion(t *testing.T) {
	if got := EntryTitle("###", "2024-06-24 morning"); got != "### 2024-06-24" {
		t.Fatalf("EntryTitle() = %q", got)
	}
	if got := EntryTitle("##", "today"); got != "## today" {
		t.Fatalf("EntryTitle() = %q", got)
	}
}

func TestEntryTitleKeepsWholeCharacters(t *testing.T) {
	got := EntryTitle("###", "日本語のノート名前です")
	if !utf8.ValidString(got) {
		t.Fatalf("EntryTitle() = %q, not valid UTF-8", got)
	}
	if got != "### 日本語のノート名前で" {
		t.Fatalf("EntryTitle() = %q, want %q", got, "### 日本語のノート名前で")
	}
	if got := EntryTitle("###", "rêve-étrange"); got != "### rêve-étran" {
		t.Fatalf("EntryTitle() = %q", got)
	}
}

func TestJournalYear(t *testing.T) {
	now := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"2024-06-24": "2024",
		"1999":       "1999",
		"notes":      "2026",
		"20a4-01-01": "2026",
		"":           "2026",
	}
	for basename, want := range tests {
		if got := JournalYear(basename, now); got != want {
			t.Fatalf("JournalYear(%q) = %q, want %q", basename, got, want)
		}
	}
}

func TestJournalPath(t *testing.T) {
	if got := JournalPath("Dream Journal", "2024"); got != "Dream Journal/2024 Dreams.md" {
		t.Fatalf("JournalPath() = %q", got)
	}
}
