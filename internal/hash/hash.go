// Package hash provides the short fingerprints used to key stored entries.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// FingerprintLength is the number of hex characters in a fingerprint.
// 16 hex chars = 64 bits, plenty for a history capped at a few hundred rows.
const FingerprintLength = 16

// Fingerprint returns a truncated SHA-256 of the trimmed text.
// Texts that differ only in surrounding whitespace share a fingerprint,
// matching how input is normalized before a color is derived.
func Fingerprint(text string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(h[:])[:FingerprintLength]
}
