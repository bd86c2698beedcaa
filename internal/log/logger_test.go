package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console, errOut bytes.Buffer

	l, err := newLogger(dir, &console, &errOut)
	require.NoError(t, err)

	l.Printf("derived %s\n", "#BD5078")
	l.Println("history saved")
	l.Errorf("save state: %s", "disk full")
	require.NoError(t, l.Close())

	assert.Equal(t, "derived #BD5078\nhistory saved\n", console.String())
	assert.Contains(t, errOut.String(), "save state: disk full")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "derived #BD5078")
	assert.Contains(t, string(data), "save state: disk full")
}

func TestLogger_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}

func TestClose_WithoutInit(t *testing.T) {
	assert.NoError(t, Close())
}
