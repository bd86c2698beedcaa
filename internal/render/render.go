// Package render turns derivation results into terminal output: color
// swatches, the step-by-step trace, history lines and markdown reports.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/ashsha/internal/models"
	"github.com/asteroid-belt/ashsha/internal/tui/theme"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// LabelLimit is the number of characters of input shown on a swatch.
const LabelLimit = 20

const (
	black = "#000000"
	white = "#FFFFFF"
)

// Brightness returns the perceived brightness of c on a 0-255 scale.
func Brightness(c colorhash.RGB) float64 {
	return float64(int(c.R)*299+int(c.G)*587+int(c.B)*114) / 1000
}

// TextColor returns black or white, whichever reads better on c.
func TextColor(c colorhash.RGB) string {
	if Brightness(c) > 128 {
		return black
	}
	return white
}

// Truncate shortens text to at most limit characters, appending "..." when
// anything was cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if limit < 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// Swatch renders a block filled with the derived color, labelled with the
// (truncated) input and the hex code.
func Swatch(res *colorhash.Result, width int) string {
	if width < 12 {
		width = 12
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(res.HexColor)).
		Foreground(lipgloss.Color(TextColor(res.Color))).
		Bold(true).
		Padding(1, 2).
		Width(width).
		Align(lipgloss.Center)

	return style.Render(Truncate(res.Input, LabelLimit) + "\n" + res.HexColor)
}

// Chip renders a small block of the given color, or blanks if hexColor does
// not parse.
func Chip(hexColor string) string {
	if _, err := colorhash.ParseHex(hexColor); err != nil {
		return "    "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hexColor)).Render("    ")
}

// ColorLine renders a chip, the hex code and the text on one line.
func ColorLine(text, hexColor string) string {
	t := theme.Current
	hex := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(strings.ToUpper(hexColor))
	label := lipgloss.NewStyle().Foreground(t.Text).Render(Truncate(text, 40))
	return fmt.Sprintf("%s %s  %s", Chip(hexColor), hex, label)
}

// HistoryLine renders one history entry with its timestamp.
func HistoryLine(entry models.HistoryEntry) string {
	when := lipgloss.NewStyle().Foreground(theme.Current.TextMuted).
		Render(entry.CreatedAt.Local().Format(time.DateTime))
	return ColorLine(entry.Text, entry.HexColor) + "  " + when
}
