// Package cli provides the command-line interface for ashsha.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

var telemetryClient telemetry.Client = telemetry.NewNoop()

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "ashsha",
	Short: "Deterministic text to color",
	Long: `Deterministic text to color

Every piece of text maps to one color, always. The text is hashed with
SHA-256, the digest is padded and split into six parts, each part is mixed
down to one byte and the bytes are averaged pairwise into red, green and blue.

Run without arguments to launch the interactive TUI.

Configuration:
  ASHSHA_HOME              data directory (default: $XDG_DATA_HOME/ashsha)
  ASHSHA_HISTORY_LIMIT     history entries kept (default: 25)
  ASHSHA_MAX_INPUT_BYTES   longest accepted input (default: 65536)
  ASHSHA_DEBOUNCE_MS       TUI preview delay (default: 500)
  ASHSHA_THEME             punk, neon or blood (default: punk)

Telemetry:
  Telemetry is enabled by default, always anonymous, and never records the
  text you enter or the colors derived from it.

  Opt-out with:
  	ASHSHA_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runTUI,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Track command execution (skip for root TUI command)
		if cmd.Name() != "ashsha" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.CommandPath(), hasFlags, durationMs)
		}

		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(lastCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	// Track app exit for CLI mode (non-TUI subcommands)
	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "ashsha" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs, 1)
	}

	return err
}

// openDatabase loads configuration and opens the history database.
// The caller closes the database.
func openDatabase() (*config.Config, *db.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	database, err := db.New(db.DefaultConfig(config.GetPaths(cfg).Database))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	return cfg, database, nil
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	switch {
	case errors.Is(err, colorhash.ErrEmptyInput), errors.Is(err, generator.ErrInputTooLarge):
		return "input_error"
	case errors.Is(err, config.ErrInvalidConfig):
		return "config_error"
	}

	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "clipboard"):
		return "clipboard_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
