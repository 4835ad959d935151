package ui

import "github.com/charmbracelet/lipgloss"

var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	SelectedItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	NormalItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DimText = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	SuccessText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)
