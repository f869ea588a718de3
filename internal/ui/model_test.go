package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/alloy/internal/organizer"
)

type fakeOrganizer struct {
	items     []organizer.PlanItem
	report    organizer.Report
	organized int
}

func (f *fakeOrganizer) Plan(ctx context.Context) ([]organizer.PlanItem, error) {
	return f.items, nil
}

func (f *fakeOrganizer) Organize(ctx context.Context) (organizer.Report, error) {
	f.organized++
	f.items = nil
	return f.report, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, org *fakeOrganizer) Model {
	t.Helper()
	m := NewModel(context.Background(), org)
	next, _ := m.Update(m.loadPlanCmd()())
	return next.(Model)
}

func samplePlan() []organizer.PlanItem {
	return []organizer.PlanItem{
		{Note: "2024-06-24", Target: "Daily Notes/2024 06-24 thru 06-30", HasDreams: true, Journal: "Dream Journal/2024 Dreams.md"},
		{Note: "2024-06-25", Target: "Daily Notes/2024 06-24 thru 06-30"},
		{Note: "scratch", Err: errors.New("invalid date")},
	}
}

func TestModelListsPlan(t *testing.T) {
	m := loaded(t, &fakeOrganizer{items: samplePlan()})

	if m.loading {
		t.Fatalf("model still loading")
	}
	if m.statusLine != "3 notes to organize" {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
	view := m.View()
	for _, want := range []string{
		"2024-06-24  -> Daily Notes/2024 06-24 thru 06-30  (dreams -> Dream Journal/2024 Dreams.md)",
		"scratch  skipped: invalid date",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelSelection(t *testing.T) {
	m := loaded(t, &fakeOrganizer{items: samplePlan()})

	next, _ := m.Update(runes("j"))
	m = next.(Model)
	next, _ = m.Update(runes("j"))
	m = next.(Model)
	next, _ = m.Update(runes("j"))
	m = next.(Model)
	if m.selected != 2 {
		t.Fatalf("selected = %d, want 2", m.selected)
	}

	next, _ = m.Update(runes("k"))
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
}

func TestModelOrganize(t *testing.T) {
	org := &fakeOrganizer{items: samplePlan(), report: organizer.Report{Total: 3, Moved: 2}}
	m := loaded(t, org)

	next, cmd := m.Update(runes("o"))
	m = next.(Model)
	if !m.busy || cmd == nil {
		t.Fatalf("organize did not start")
	}

	next, _ = m.Update(m.organizeCmd()())
	m = next.(Model)
	if org.organized != 1 {
		t.Fatalf("Organize called %d times", org.organized)
	}
	if m.statusLine != "2 notes moved" {
		t.Fatalf("statusLine = %q", m.statusLine)
	}

	next, _ = m.Update(m.loadPlanCmd()())
	m = next.(Model)
	if len(m.items) != 0 || m.statusLine != "2 notes moved" {
		t.Fatalf("after reload items = %v, status = %q", m.items, m.statusLine)
	}
}

func TestModelOrganizeWithNothingToDo(t *testing.T) {
	org := &fakeOrganizer{}
	m := loaded(t, org)

	next, _ := m.Update(runes("o"))
	m = next.(Model)
	if org.organized != 0 {
		t.Fatalf("Organize should not run for an empty plan")
	}
	if m.statusLine != "No notes to move" {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestModelQuit(t *testing.T) {
	m := loaded(t, &fakeOrganizer{})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
