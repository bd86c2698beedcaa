// Package theme provides color theming for the TUI and CLI output.
package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette used around the derived swatch.
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Background colors
	Surface lipgloss.AdaptiveColor
	Overlay lipgloss.AdaptiveColor

	// Text colors
	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
}

// PunkTheme is the default color scheme.
var PunkTheme = Theme{
	Name:      "punk",
	Primary:   lipgloss.AdaptiveColor{Light: "#8B0000", Dark: "#DC143C"}, // Crimson
	Secondary: lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#9B59B6"}, // Purple
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1C40F"}, // Gold

	Surface: lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1A1A1A"},
	Overlay: lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2D2D2D"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#6B6B6B"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00FF41"}, // Matrix green
	Warning: lipgloss.AdaptiveColor{Light: "#CC5500", Dark: "#FF6B35"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF0040"},
	Info:    lipgloss.AdaptiveColor{Light: "#0088CC", Dark: "#00D4FF"},
}

// NeonTheme is a synthwave-inspired color scheme.
var NeonTheme = Theme{
	Name:      "neon",
	Primary:   lipgloss.AdaptiveColor{Light: "#AA00AA", Dark: "#FF00FF"}, // Magenta
	Secondary: lipgloss.AdaptiveColor{Light: "#008B8B", Dark: "#00FFFF"}, // Cyan
	Accent:    lipgloss.AdaptiveColor{Light: "#B8B800", Dark: "#FFFF00"}, // Yellow

	Surface: lipgloss.AdaptiveColor{Light: "#F0F0F0", Dark: "#111111"},
	Overlay: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#222222"},

	Text:          lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#228B22", Dark: "#39FF14"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC7700", Dark: "#FF9500"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0022", Dark: "#FF073A"},
	Info:    lipgloss.AdaptiveColor{Light: "#0077BB", Dark: "#00BFFF"},
}

// BloodTheme is a dark red and black theme.
var BloodTheme = Theme{
	Name:      "blood",
	Primary:   lipgloss.AdaptiveColor{Light: "#660000", Dark: "#8B0000"},
	Secondary: lipgloss.AdaptiveColor{Light: "#8B1A2B", Dark: "#C41E3A"},
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"},

	Surface: lipgloss.AdaptiveColor{Light: "#FFF5F5", Dark: "#1A0000"},
	Overlay: lipgloss.AdaptiveColor{Light: "#FFE5E5", Dark: "#2D0000"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A0000", Dark: "#EEEEEE"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#666666", Dark: "#666666"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#006600", Dark: "#00AA00"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF0000"},
	Info:    lipgloss.AdaptiveColor{Light: "#0077AA", Dark: "#00AAFF"},
}

var themes = map[string]Theme{
	PunkTheme.Name:  PunkTheme,
	NeonTheme.Name:  NeonTheme,
	BloodTheme.Name: BloodTheme,
}

// Current is the active theme (can be changed at runtime).
var Current = PunkTheme

// Get returns the theme with the given name, falling back to PunkTheme.
func Get(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return PunkTheme
}

// Set makes the named theme current and returns it.
func Set(name string) Theme {
	Current = Get(name)
	return Current
}

// Names lists the available theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
