package colorhash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// AlgorithmVersion identifies the derivation recipe. Any change to the hash,
// segmentation, mixing or composition that alters output bumps the major.
const AlgorithmVersion = "1.0.0"

// DigestLength is the number of hex characters in a SHA-256 digest.
const DigestLength = sha256.Size * 2

// ErrEmptyInput is returned when the input is empty after trimming whitespace.
var ErrEmptyInput = errors.New("empty input: enter some text")

// ComputeDigest trims text and returns its lowercase SHA-256 hex digest.
func ComputeDigest(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:]), nil
}
