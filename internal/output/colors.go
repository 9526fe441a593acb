package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color styles for CLI output.
var (
	// Status colors for comment moderation states
	StatusApproved = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))  // Green
	StatusHold     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // Yellow
	StatusSpam     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // Orange
	StatusTrash    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // Gray

	// General styles
	Bold    = lipgloss.NewStyle().Bold(true)
	Faint   = lipgloss.NewStyle().Faint(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))  // Green
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // Yellow
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	Header  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // Yellow
)

// StyleStatus returns a styled status string.
func StyleStatus(status string) string {
	switch status {
	case "approved":
		return StatusApproved.Render(status)
	case "hold":
		return StatusHold.Render(status)
	case "spam":
		return StatusSpam.Render(status)
	case "trash":
		return StatusTrash.Render(status)
	default:
		return status
	}
}
