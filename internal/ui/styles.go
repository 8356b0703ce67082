// Package ui holds the lipgloss styles for CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "2"}).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "1"}).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "6", Dark: "6"})
)

// Success renders a message as a success line.
func Success(msg string) string {
	return styleSuccess.Render("✔ " + msg)
}

// Error renders a message as an error line.
func Error(msg string) string {
	return styleError.Render("✘ " + msg)
}

// Info renders a message as an informational line.
func Info(msg string) string {
	return styleInfo.Render(msg)
}
