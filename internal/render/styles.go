package render

import "github.com/charmbracelet/lipgloss"

var (
	// Title styles section headings.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	// Subtle styles secondary notes.
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	// Good marks an optimal answer.
	Good = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	// Bad marks a suboptimal or failed answer.
	Bad = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff4444"))
)
