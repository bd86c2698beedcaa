package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/ashsha/internal/tui/theme"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// Explain renders the full derivation trace: digest, padded digest, the
// segments and the mixer diagnostics for each of them.
func Explain(res *colorhash.Result) string {
	t := theme.Current
	label := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).Width(8)
	value := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	heading := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	var b strings.Builder
	row := func(name, v string) {
		b.WriteString(label.Render(name))
		b.WriteString(" ")
		b.WriteString(value.Render(v))
		b.WriteString("\n")
	}

	row("Input", res.Input)
	row("Digest", res.Digest)
	row("Padded", res.Padded)
	b.WriteString("\n")

	for _, ch := range res.Channels {
		b.WriteString(heading.Render(fmt.Sprintf("Part %d", ch.Index+1)))
		b.WriteString(" ")
		b.WriteString(muted.Render(ch.Segment))
		b.WriteString("\n")
		b.WriteString(value.Render(channelDetails(ch)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	c := res.Color
	row("Color", fmt.Sprintf("%s  rgb(%d, %d, %d)", res.HexColor, c.R, c.G, c.B))
	b.WriteString(Swatch(res, 24))
	return b.String()
}

func channelDetails(ch colorhash.Channel) string {
	return fmt.Sprintf("  Sum: %d  Exact: %.3f  Average: %d  Operations: %d  Final Value: %d (%s)",
		ch.Sum, ch.ExactAverage, ch.RoundedAverage, ch.Raw, ch.Final, strconv.FormatUint(uint64(ch.Final), 16))
}
