package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	warn     lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
}
