package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/render"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// resetFlags restores every flag under cmd to its default so package-level
// commands can be executed repeatedly.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupHome points the CLI at a fresh data directory.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(telemetry.EnvTrackingEnabled, "false")
	telemetryClient = telemetry.NewNoop()
	return home
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return render.Plain(out.String()), err
}

func openTestDB(t *testing.T, home string) *db.DB {
	t.Helper()
	database, err := db.New(db.DefaultConfig(filepath.Join(home, "ashsha.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "ashsha", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"color", "history", "last", "favorites", "info"} {
		assert.Contains(t, names, want)
	}
}

func TestColorCmd(t *testing.T) {
	home := setupHome(t)

	out, err := runCLI(t, "color", "Hello,", "World!")
	require.NoError(t, err)
	assert.Contains(t, out, "#C8C11D")

	entries, err := openTestDB(t, home).ListHistory(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Hello, World!", entries[0].Text)
}

func TestColorCmd_JSONNoSave(t *testing.T) {
	home := setupHome(t)

	out, err := runCLI(t, "color", "a", "--json", "--no-save")
	require.NoError(t, err)

	var res colorhash.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "#BD5078", res.HexColor)
	assert.Equal(t, uint8(196), res.Channels[0].Final)

	count, err := openTestDB(t, home).CountHistory()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestColorCmd_Explain(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "color", "--explain", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "Sum: 72  Exact: 6.545  Average: 7  Operations: 452  Final Value: 196 (c4)")
}

func TestColorCmd_Markdown(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "color", "--markdown", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "#BD5078")
}

func TestColorCmd_Copy(t *testing.T) {
	setupHome(t)
	var copied []string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	out, err := runCLI(t, "color", "--copy", "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"#6B6A94"}, copied)
	assert.Contains(t, out, "COPIED!")
}

func TestColorCmd_Errors(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "color", "   ")
	assert.ErrorIs(t, err, colorhash.ErrEmptyInput)

	_, err = runCLI(t, "color")
	assert.Error(t, err, "requires at least one argument")

	_, err = runCLI(t, "color", "a", "--json", "--explain")
	assert.Error(t, err, "output flags are mutually exclusive")
}

func TestColorCmd_TooLarge(t *testing.T) {
	setupHome(t)
	t.Setenv(config.EnvMaxInputBytes, "3")

	_, err := runCLI(t, "color", "abcd")
	assert.ErrorIs(t, err, generator.ErrInputTooLarge)
}

func TestHistoryCmd(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No colors saved yet")

	for _, text := range []string{"a", "hello", "a"} {
		_, err := runCLI(t, "color", text)
		require.NoError(t, err)
	}

	out, err = runCLI(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "#BD5078")
	assert.Contains(t, out, "#6B6A94")
	assert.Less(t, bytes.Index([]byte(out), []byte("#BD5078")), bytes.Index([]byte(out), []byte("#6B6A94")),
		"most recent first")

	out, err = runCLI(t, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "#BD5078")
	assert.NotContains(t, out, "#6B6A94")
}

func TestHistoryClearCmd(t *testing.T) {
	home := setupHome(t)

	for _, text := range []string{"a", "hello"} {
		_, err := runCLI(t, "color", text)
		require.NoError(t, err)
	}

	out, err := runCLI(t, "history", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 saved colors.")

	database := openTestDB(t, home)
	count, err := database.CountHistory()
	require.NoError(t, err)
	assert.Zero(t, count)
	state, err := database.GetCurrentState()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestLastCmd(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "last")
	require.NoError(t, err)
	assert.Contains(t, out, "No color saved yet")

	_, err = runCLI(t, "color", "ashsha")
	require.NoError(t, err)

	out, err = runCLI(t, "last", "--json")
	require.NoError(t, err)
	var res colorhash.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ashsha", res.Input)
	assert.Equal(t, "#3A4AAE", res.HexColor)
}

func TestFavoritesCmd(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorites yet")

	out, err = runCLI(t, "favorites", "add", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "#BD5078")

	out, err = runCLI(t, "favorites", "add", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "already a favorite")

	out, err = runCLI(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Favorites (1)")

	out, err = runCLI(t, "favorites", "remove", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 'a'")

	out, err = runCLI(t, "favorites", "remove", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "not a favorite")
}

func TestFavoritesCmd_ArgsValidation(t *testing.T) {
	assert.Error(t, favoritesAddCmd.Args(favoritesAddCmd, []string{}))
	assert.NoError(t, favoritesAddCmd.Args(favoritesAddCmd, []string{"two", "words"}))
	assert.Error(t, favoritesListCmd.Args(favoritesListCmd, []string{"x"}))
}

func TestInfoCmd(t *testing.T) {
	home := setupHome(t)

	_, err := runCLI(t, "color", "a")
	require.NoError(t, err)

	out, err := runCLI(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm:      "+colorhash.AlgorithmVersion)
	assert.Contains(t, out, "Base directory: "+home)
	assert.Contains(t, out, "History:        1 of 25 kept")
	assert.Contains(t, out, "Telemetry:      off")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{colorhash.ErrEmptyInput, "input_error"},
		{generator.ErrInputTooLarge, "input_error"},
		{config.ErrInvalidConfig, "config_error"},
		{errors.New("initialize database: locked"), "database_error"},
		{errors.New("copy to clipboard: no xsel"), "clipboard_error"},
		{errors.New("open: permission denied"), "permission_error"},
		{errors.New("something odd"), "unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
