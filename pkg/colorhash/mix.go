package colorhash

import "math"

// ChunkSize is the number of characters folded into one chunk value.
const ChunkSize = 7

// Channel is the mixer output for one segment. Sum, ExactAverage,
// RoundedAverage and Raw are diagnostics; only Final feeds the color.
type Channel struct {
	Index          int     `json:"index"`
	Segment        string  `json:"segment"`
	Sum            int     `json:"sum"`
	ExactAverage   float64 `json:"exact_average"`
	RoundedAverage int     `json:"rounded_average"`
	Raw            uint64  `json:"raw"`
	Final          uint8   `json:"final"`
}

// DecodeHex returns the value of a single hex digit, case-insensitively.
// Anything that is not a hex digit decodes to 0.
func DecodeHex(c byte) uint64 {
	v, _ := decodeHex(c)
	return v
}

func decodeHex(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Mix reduces a segment to an 8-bit channel value.
//
// Characters are folded in chunks of ChunkSize. Inside a chunk the operation
// applied to each digit depends on its position in the whole segment modulo 5.
// Non-hex characters still occupy a position but leave the chunk untouched.
// After each chunk the running value is rotated left by 3 (over its full
// width) and XORed with the chunk value. Intermediates are only masked where
// noted, so values may exceed 8 bits until the final mask. uint64 keeps this
// exact for segments up to 126 characters.
func Mix(segment string, index int) Channel {
	ch := Channel{Index: index, Segment: segment}

	for i := 0; i < len(segment); i++ {
		ch.Sum += int(DecodeHex(segment[i]))
	}
	if len(segment) > 0 {
		ch.ExactAverage = float64(ch.Sum) / float64(len(segment))
		ch.RoundedAverage = int(math.Round(ch.ExactAverage))
	}

	leftShift := uint(index % 8)
	rightShift := uint(index % 4)

	var value uint64
	for start := 0; start < len(segment); start += ChunkSize {
		var chunk uint64
		for pos := start; pos < start+ChunkSize && pos < len(segment); pos++ {
			h, ok := decodeHex(segment[pos])
			if !ok {
				continue
			}
			switch pos % 5 {
			case 0:
				chunk ^= h << leftShift
			case 1:
				chunk = (chunk * (h + 1)) % 256
			case 2:
				chunk = ((chunk << 4) | (chunk >> 4)) ^ h
			case 3:
				chunk = (chunk + h) & 0xFF
			case 4:
				chunk ^= h >> rightShift
			}
		}
		value = ((value << 3) | (value >> 5)) ^ chunk
	}

	ch.Raw = value
	ch.Final = uint8(value & 0xFF)
	return ch
}
