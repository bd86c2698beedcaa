// Package colorhash derives a deterministic RGB color from arbitrary text.
//
// The pipeline hashes the trimmed input with SHA-256, pads the hex digest with
// a '0' on each side, splits it into six ordered segments, reduces every
// segment to an 8-bit channel with a chunked bit-mixing cascade, and averages
// channel pairs (0+3, 1+4, 2+5) into the final R, G and B bytes.
//
// SHA-256 is used only as a source of well-distributed bytes. Nothing here is a
// security primitive.
//
// Every function is pure and safe for concurrent use.
package colorhash
