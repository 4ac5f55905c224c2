package cli

import "github.com/charmbracelet/lipgloss"

// Output palette. Primary marks the values the user asked for (paths,
// ranges, defaults); Silent is for secondary detail like timestamps.
var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E86DE"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1C40F"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1ABC9C"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
