package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ashsha/internal/models"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

func derive(t *testing.T, text string) *colorhash.Result {
	t.Helper()
	res, err := colorhash.Derive(text)
	require.NoError(t, err)
	return res
}

func TestBrightness(t *testing.T) {
	assert.InDelta(t, 255.0, Brightness(colorhash.RGB{R: 255, G: 255, B: 255}), 0.0001)
	assert.InDelta(t, 0.0, Brightness(colorhash.RGB{}), 0.0001)
	assert.InDelta(t, 117.151, Brightness(colorhash.RGB{R: 0xBD, G: 0x50, B: 0x78}), 0.0001)
}

func TestTextColor(t *testing.T) {
	assert.Equal(t, black, TextColor(colorhash.RGB{R: 255, G: 255, B: 255}))
	assert.Equal(t, white, TextColor(colorhash.RGB{}))
	assert.Equal(t, white, TextColor(colorhash.RGB{R: 0xBD, G: 0x50, B: 0x78}))
	// #C8C11D is bright enough for black text
	assert.Equal(t, black, TextColor(colorhash.RGB{R: 0xC8, G: 0xC1, B: 0x1D}))
	// exactly 128 still gets white
	assert.Equal(t, white, TextColor(colorhash.RGB{R: 128, G: 128, B: 128}))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short", "abc", 20, "abc"},
		{"exact", strings.Repeat("x", 20), 20, strings.Repeat("x", 20)},
		{"long", strings.Repeat("x", 21), 20, strings.Repeat("x", 20) + "..."},
		{"runes", "ééééé", 3, "ééé..."},
		{"negative limit", "abc", -1, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.limit))
		})
	}
}

func TestSwatch(t *testing.T) {
	res := derive(t, "this input is longer than twenty")
	out := Plain(Swatch(res, 30))

	assert.Contains(t, out, "this input is longer...")
	assert.Contains(t, out, res.HexColor)
}

func TestExplain(t *testing.T) {
	out := Plain(Explain(derive(t, "a")))

	assert.Contains(t, out, "ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb")
	assert.Contains(t, out, "0ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb0")
	assert.Contains(t, out, "Part 1")
	assert.Contains(t, out, "Part 6")
	assert.Contains(t, out, "Sum: 72  Exact: 6.545  Average: 7  Operations: 452  Final Value: 196 (c4)")
	assert.Contains(t, out, "Operations: 76  Final Value: 76 (4c)")
	assert.Contains(t, out, "#BD5078  rgb(189, 80, 120)")
}

func TestMarkdown(t *testing.T) {
	md := Markdown(derive(t, "a"))

	assert.True(t, strings.HasPrefix(md, "# #BD5078\n"))
	assert.Contains(t, md, "| 1 | `0ca978112ca` | 72 | 6.545 | 7 | 452 | 196 (c4) |")
	assert.Contains(t, md, "| 4 | `a786eff8147` | 95 |")
}

func TestRenderMarkdown(t *testing.T) {
	assert.Empty(t, RenderMarkdown("", 80))

	lines := RenderMarkdown(Markdown(derive(t, "a")), 100)
	require.NotEmpty(t, lines)
	assert.Contains(t, Plain(strings.Join(lines, "\n")), "#BD5078")
	assert.NotEqual(t, "", strings.TrimSpace(lines[len(lines)-1]))
}

func TestHistoryLine(t *testing.T) {
	entry := models.HistoryEntry{
		Text:      "hello",
		HexColor:  "#6b6a94",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local),
	}
	out := Plain(HistoryLine(entry))

	assert.Contains(t, out, "#6B6A94")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "2026-03-01 12:00:00")
}

func TestChip_InvalidHex(t *testing.T) {
	assert.Equal(t, "    ", Chip("nope"))
}
