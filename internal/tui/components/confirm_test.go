package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmDialog_DefaultsToNo(t *testing.T) {
	d := NewConfirmDialog("Clear?", "sure")
	assert.False(t, d.IsYesSelected())

	done, confirmed := d.HandleKey(key("enter"))
	assert.True(t, done)
	assert.False(t, confirmed)
}

func TestConfirmDialog_ToggleThenEnter(t *testing.T) {
	d := NewConfirmDialog("Clear?", "sure")

	done, _ := d.HandleKey(key("left"))
	assert.False(t, done)
	assert.True(t, d.IsYesSelected())

	done, confirmed := d.HandleKey(key("enter"))
	assert.True(t, done)
	assert.True(t, confirmed)
}

func TestConfirmDialog_Shortcuts(t *testing.T) {
	tests := []struct {
		key       string
		done      bool
		confirmed bool
	}{
		{"y", true, true},
		{"n", true, false},
		{"esc", true, false},
		{"x", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			done, confirmed := NewConfirmDialog("t", "m").HandleKey(key(tt.key))
			assert.Equal(t, tt.done, done)
			assert.Equal(t, tt.confirmed, confirmed)
		})
	}
}

func TestConfirmDialog_View(t *testing.T) {
	out := ansi.Strip(NewConfirmDialog("Clear history?", "3 colors").CenteredView(60, 20))

	assert.Contains(t, out, "Clear history?")
	assert.Contains(t, out, "3 colors")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "No")
}
