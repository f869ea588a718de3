package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/alloy/internal/organizer"
)

// Organizer is the part of organizer.Organizer the review screen drives.
type Organizer interface {
	Plan(ctx context.Context) ([]organizer.PlanItem, error)
	Organize(ctx context.Context) (organizer.Report, error)
}

// Model owns Bubble Tea state for the organize review screen.
type Model struct {
	ctx       context.Context
	organizer Organizer

	items    []organizer.PlanItem
	selected int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  styles

	loading    bool
	busy       bool
	statusLine string
	errorLine  string
}

const (
	loadingStatus   = "Loading unorganized notes..."
	reloadingStatus = "Reloading..."
)

type planLoadedMsg struct {
	items []organizer.PlanItem
	err   error
}

type organizeResultMsg struct {
	report organizer.Report
	err    error
}

// NewModel seeds the review screen with its collaborator.
func NewModel(ctx context.Context, org Organizer) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		organizer:  org,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		styles:     defaultStyles(),
		loading:    true,
		statusLine: loadingStatus,
	}
}

// Init loads the plan.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPlanCmd())
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case planLoadedMsg:
		return m.handlePlanLoaded(msg)
	case organizeResultMsg:
		return m.handleOrganizeResult(msg)
	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.loading || m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected note %d of %d", m.selected+1, len(m.items))
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected note %d of %d", m.selected+1, len(m.items))
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Organize):
		if len(m.items) == 0 {
			m.statusLine = "No notes to move"
			m.errorLine = ""
			return m, nil
		}
		m.busy = true
		m.statusLine = "Organizing notes..."
		m.errorLine = ""
		return m, tea.Batch(m.spinner.Tick, m.organizeCmd())
	}
	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = reloadingStatus
	m.errorLine = ""
	return m, tea.Batch(m.spinner.Tick, m.loadPlanCmd())
}

func (m Model) handlePlanLoaded(msg planLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Load failed: %v", msg.err)
		return m, nil
	}

	m.items = msg.items
	if m.selected >= len(m.items) {
		m.selected = max(len(m.items)-1, 0)
	}
	if m.statusLine == loadingStatus || m.statusLine == reloadingStatus {
		if len(m.items) == 0 {
			m.statusLine = "No notes to move"
		} else {
			m.statusLine = fmt.Sprintf("%d note%s to organize", len(m.items), plural(len(m.items)))
		}
	}
	return m, nil
}

func (m Model) handleOrganizeResult(msg organizeResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Organize failed: %v", msg.err)
		return m, nil
	}

	m.statusLine = summarize(msg.report)
	m.errorLine = ""
	if n := msg.report.DreamFailures(); n > 0 {
		m.errorLine = fmt.Sprintf("Failed to add dreams for %d note%s", n, plural(n))
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.loadPlanCmd())
}

func (m Model) loadPlanCmd() tea.Cmd {
	ctx := m.ctx
	org := m.organizer
	return func() tea.Msg {
		items, err := org.Plan(ctx)
		return planLoadedMsg{items: items, err: err}
	}
}

func (m Model) organizeCmd() tea.Cmd {
	ctx := m.ctx
	org := m.organizer
	return func() tea.Msg {
		report, err := org.Organize(ctx)
		return organizeResultMsg{report: report, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Unorganized notes"))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0:
		b.WriteString(m.styles.dim.Render("(nothing to organize)"))
		b.WriteByte('\n')
	default:
		for i, item := range m.items {
			line := formatItem(item)
			if i == m.selected {
				line = m.styles.selected.Render("> " + line)
			} else if item.Err != nil {
				line = m.styles.warn.Render("  " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	if m.busy || m.loading {
		b.WriteString(m.spinner.View())
		b.WriteByte(' ')
	}
	if m.statusLine != "" {
		b.WriteString(m.styles.status.Render(m.statusLine))
		b.WriteByte('\n')
	}
	if m.errorLine != "" {
		b.WriteString(m.styles.err.Render("! " + m.errorLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func formatItem(item organizer.PlanItem) string {
	if item.Err != nil {
		return fmt.Sprintf("%s  skipped: %v", item.Note, item.Err)
	}
	line := fmt.Sprintf("%s  -> %s", item.Note, item.Target)
	if item.HasDreams {
		line += "  (dreams -> " + item.Journal + ")"
	}
	return line
}

func summarize(report organizer.Report) string {
	if report.Total == 0 {
		return "No notes to move"
	}
	return fmt.Sprintf("%d notes moved", report.Moved)
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
