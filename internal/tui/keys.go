package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keymap defines all key bindings for the TUI.
type Keymap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding

	// Actions
	Generate key.Binding
	Copy     key.Binding
	Trace    key.Binding
	Favorite key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

// DefaultKeymap returns the default key bindings. Plain letters are left to
// the text input, so every action sits on a control key.
func DefaultKeymap() Keymap {
	return Keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "input/history"),
		),

		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save color"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy hex"),
		),
		Trace: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "show trace"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "favorite"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// HelpText returns formatted help text for all key bindings.
func (k Keymap) HelpText() string {
	return "[ enter save • tab history • ctrl+y copy • ctrl+t trace • ctrl+s favorite • ctrl+x clear • esc quit ]"
}

// QuickHelpText returns condensed help text for the footer.
func (k Keymap) QuickHelpText() string {
	return "enter save • tab history • ctrl+y copy • esc quit"
}
