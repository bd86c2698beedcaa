package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/ashsha/internal/tui/theme"
)

// Styles contains all reusable Lipgloss styles for the TUI.
type Styles struct {
	// Header styles
	Logo          lipgloss.Style
	HeaderVersion lipgloss.Style

	// Input styles
	InputBox        lipgloss.Style
	InputBoxBlurred lipgloss.Style

	// History list styles
	ListTitle        lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Text styles
	Muted     lipgloss.Style
	Highlight lipgloss.Style

	// Status indicators
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles using the current theme.
func DefaultStyles() Styles {
	t := theme.Current

	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HeaderVersion: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),

		InputBoxBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Overlay).
			Padding(0, 1),

		ListTitle: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 1),

		ListItemSelected: lipgloss.NewStyle().
			Foreground(t.TextHighlight).
			Background(t.Overlay).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Highlight: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		StatusOK: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		StatusError: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
	}
}
