package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// Markdown renders res as a markdown report.
func Markdown(res *colorhash.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", res.HexColor)
	fmt.Fprintf(&b, "**Input:** `%s`\n\n", strings.ReplaceAll(res.Input, "`", "'"))
	fmt.Fprintf(&b, "**Digest:** `%s`\n\n", res.Digest)
	fmt.Fprintf(&b, "**Padded:** `%s`\n\n", res.Padded)

	b.WriteString("| Part | Segment | Sum | Exact | Average | Operations | Final |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, ch := range res.Channels {
		fmt.Fprintf(&b, "| %d | `%s` | %d | %.3f | %d | %d | %d (%s) |\n",
			ch.Index+1, ch.Segment, ch.Sum, ch.ExactAverage, ch.RoundedAverage, ch.Raw,
			ch.Final, strconv.FormatUint(uint64(ch.Final), 16))
	}

	c := res.Color
	fmt.Fprintf(&b, "\n**Color:** `%s` rgb(%d, %d, %d)\n", res.HexColor, c.R, c.G, c.B)
	return b.String()
}

// RenderMarkdown renders markdown content using Glamour for terminal display.
// Returns a slice of lines with trailing blank lines removed.
func RenderMarkdown(content string, width int) []string {
	if content == "" {
		return []string{}
	}
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return strings.Split(content, "\n")
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return strings.Split(content, "\n")
	}

	lines := strings.Split(rendered, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Plain removes ANSI escape sequences from s.
func Plain(s string) string {
	return ansi.Strip(s)
}
