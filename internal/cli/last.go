package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/tui/theme"
)

var lastOutput outputOptions

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last saved color",
	Long: `Show the last saved color with the same output options as "color".

If the saved snapshot came from an incompatible version of the color
algorithm it is derived again from the stored text.`,
	Args: cobra.NoArgs,
	RunE: runLast,
}

func init() {
	lastOutput.bind(lastCmd)
}

func runLast(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return trackCLIError("last", err)
	}
	defer func() { _ = database.Close() }()
	theme.Set(cfg.UI.Theme)

	res, err := generator.New(database, cfg, telemetryClient).Restore()
	if err != nil {
		return trackCLIError("last", err)
	}

	out := cmd.OutOrStdout()
	if res == nil {
		_, _ = fmt.Fprintln(out, "No color saved yet. Try: ashsha color <text>")
		return nil
	}
	return trackCLIError("last", printResult(out, res, lastOutput))
}
