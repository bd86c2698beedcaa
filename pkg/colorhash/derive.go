package colorhash

import "strings"

// Result is the derived color together with the full derivation trace.
type Result struct {
	Input    string    `json:"input"`
	Digest   string    `json:"digest"`
	Padded   string    `json:"padded"`
	Segments []string  `json:"segments"`
	Channels []Channel `json:"channels"`
	Color    RGB       `json:"color"`
	HexColor string    `json:"hex_color"`
}

// Derive runs the full pipeline on text. The only failure is ErrEmptyInput.
func Derive(text string) (*Result, error) {
	digest, err := ComputeDigest(text)
	if err != nil {
		return nil, err
	}

	segments := Segment(digest)
	channels := make([]Channel, len(segments))
	var finals [SegmentCount]uint8
	for i, seg := range segments {
		channels[i] = Mix(seg, i)
		finals[i] = channels[i].Final
	}

	color := Compose(finals)
	return &Result{
		Input:    strings.TrimSpace(text),
		Digest:   digest,
		Padded:   Pad(digest),
		Segments: segments,
		Channels: channels,
		Color:    color,
		HexColor: color.Hex(),
	}, nil
}

// Finals returns the final channel values in segment order.
func (r *Result) Finals() []uint8 {
	out := make([]uint8, len(r.Channels))
	for i, ch := range r.Channels {
		out[i] = ch.Final
	}
	return out
}
