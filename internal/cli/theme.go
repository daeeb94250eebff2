package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Faint lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Faint: lipgloss.NewStyle().Faint(true),
		OK:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
