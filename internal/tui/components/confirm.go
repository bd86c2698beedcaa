// Package components holds reusable TUI widgets.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/ashsha/internal/tui/theme"
)

// ConfirmDialog is a simple yes/no confirmation dialog.
type ConfirmDialog struct {
	title    string
	message  string
	selected bool // false = no, true = yes
}

// NewConfirmDialog creates a new confirmation dialog.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:    title,
		message:  message,
		selected: false, // Default to "No"
	}
}

// IsYesSelected returns whether "Yes" is selected.
func (c *ConfirmDialog) IsYesSelected() bool {
	return c.selected
}

// Toggle switches between Yes and No.
func (c *ConfirmDialog) Toggle() {
	c.selected = !c.selected
}

// HandleKey processes a key press. done reports that the dialog should
// close; confirmed is only meaningful when done is true.
func (c *ConfirmDialog) HandleKey(msg tea.KeyMsg) (done, confirmed bool) {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		c.Toggle()
	case "y", "Y":
		return true, true
	case "n", "N", "esc", "ctrl+c":
		return true, false
	case "enter":
		return true, c.selected
	}
	return false, false
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	t := theme.Current

	yesStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	noStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	active := lipgloss.NewStyle().
		Background(t.Accent).
		Foreground(lipgloss.Color("0")).
		Padding(0, 2).
		Bold(true)
	if c.selected {
		yesStyle = active
	} else {
		noStyle = active
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"[ ",
		yesStyle.Render("Yes"),
		" ] [ ",
		noStyle.Render("No"),
		" ]",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(c.title),
				"",
				c.message,
				"",
				buttons,
			),
		)
}

// CenteredView renders the dialog centered on the screen.
func (c *ConfirmDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.View())
}
