package colorhash

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the color as uppercase #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses #RRGGBB or RRGGBB in either case.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Compose averages channel pairs (0,3), (1,4) and (2,5) into R, G and B,
// rounding down.
func Compose(channels [SegmentCount]uint8) RGB {
	avg := func(a, b uint8) uint8 {
		return uint8((uint16(a) + uint16(b)) / 2)
	}
	return RGB{
		R: avg(channels[0], channels[3]),
		G: avg(channels[1], channels[4]),
		B: avg(channels[2], channels[5]),
	}
}
