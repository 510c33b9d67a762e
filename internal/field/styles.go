package field

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#06B6D4")
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	historyStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
