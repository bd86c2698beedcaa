package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/render"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/internal/tui/theme"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// outputOptions selects how a result is printed.
type outputOptions struct {
	explain  bool
	markdown bool
	json     bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.explain, "explain", "e", false, "Show every step of the derivation")
	cmd.Flags().BoolVarP(&o.markdown, "markdown", "m", false, "Render the derivation as a markdown report")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print the full result as JSON")
	cmd.MarkFlagsMutuallyExclusive("explain", "markdown", "json")
}

var (
	colorOutput outputOptions
	colorNoSave bool
	colorCopy   bool
)

var colorCmd = &cobra.Command{
	Use:   "color <text...>",
	Short: "Derive the color for some text",
	Long: `Derive the color for some text.

All arguments are joined with single spaces. Leading and trailing whitespace
is ignored, so "ashsha color ' a '" and "ashsha color a" give the same color.

The result is saved to history and becomes the last color unless --no-save
is given.`,
	Example: `  ashsha color hello
  ashsha color "Hello, World!" --explain
  ashsha color a --json --no-save`,
	Args: cobra.MinimumNArgs(1),
	RunE: runColor,
}

func init() {
	colorOutput.bind(colorCmd)
	colorCmd.Flags().BoolVar(&colorNoSave, "no-save", false, "Do not record the color in history")
	colorCmd.Flags().BoolVarP(&colorCopy, "copy", "c", false, "Copy the hex color to the clipboard")
}

func runColor(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg, database, err := openDatabase()
	if err != nil {
		return trackCLIError("color", err)
	}
	defer func() { _ = database.Close() }()
	theme.Set(cfg.UI.Theme)

	gen := generator.New(database, cfg, telemetryClient)

	var res *colorhash.Result
	if colorNoSave {
		res, err = gen.Preview(text)
		if err == nil {
			telemetryClient.TrackColorDerived(telemetry.SourceCLI, len(res.Input), false)
		}
	} else {
		res, err = gen.Generate(text, telemetry.SourceCLI)
	}
	if err != nil {
		return trackCLIError("color", err)
	}

	out := cmd.OutOrStdout()
	if err := printResult(out, res, colorOutput); err != nil {
		return trackCLIError("color", err)
	}

	if colorCopy {
		if err := copyToClipboard(res.HexColor); err != nil {
			return trackCLIError("color", fmt.Errorf("copy to clipboard: %w", err))
		}
		telemetryClient.TrackColorCopied(telemetry.SourceCLI)
		if !colorOutput.json {
			_, _ = fmt.Fprintln(out, "COPIED!")
		}
	}
	return nil
}

// printResult writes res in the format selected by opts.
func printResult(out io.Writer, res *colorhash.Result, opts outputOptions) error {
	switch {
	case opts.json:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case opts.markdown:
		_, err := fmt.Fprintln(out, strings.Join(render.RenderMarkdown(render.Markdown(res), 100), "\n"))
		return err
	case opts.explain:
		_, err := fmt.Fprintln(out, render.Explain(res))
		return err
	default:
		_, err := fmt.Fprintln(out, render.Swatch(res, 24))
		return err
	}
}
