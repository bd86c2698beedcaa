// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"testing"
)

// SkipClipboardTests skips the test if ASHSHA_CLIPBOARD_TESTS is not set.
// Use this for tests that touch the system clipboard, which needs a
// display server and xclip, xsel or wl-clipboard on Linux.
//
// Run them with: ASHSHA_CLIPBOARD_TESTS=1 go test ./...
func SkipClipboardTests(t *testing.T) {
	t.Helper()
	if os.Getenv("ASHSHA_CLIPBOARD_TESTS") == "" {
		t.Skip("Skipping clipboard test (set ASHSHA_CLIPBOARD_TESTS=1 to run)")
	}
}
