package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/render"
	"github.com/asteroid-belt/ashsha/internal/tui/theme"
)

var (
	historyLimit    int
	historyClearYes bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently saved colors",
	Long: `List recently saved colors, most recent first.

Saving the same text again moves it to the top instead of adding a
duplicate. Only the newest ASHSHA_HISTORY_LIMIT entries are kept.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all saved colors",
	Long:  `Remove every history entry and the last color. Favorites are kept.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum entries to show (default: all kept entries)")
	historyClearCmd.Flags().BoolVarP(&historyClearYes, "yes", "y", false, "Skip the confirmation prompt")
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return trackCLIError("history", err)
	}
	defer func() { _ = database.Close() }()
	theme.Set(cfg.UI.Theme)

	entries, err := database.ListHistory(historyLimit)
	if err != nil {
		return trackCLIError("history", fmt.Errorf("list history: %w", err))
	}

	telemetryClient.TrackHistoryViewed(len(entries))

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No colors saved yet. Try: ashsha color <text>")
		return nil
	}
	for _, e := range entries {
		_, _ = fmt.Fprintln(out, render.HistoryLine(e))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("history clear", err)
	}
	defer func() { _ = database.Close() }()

	out := cmd.OutOrStdout()
	if !historyClearYes {
		count, err := database.CountHistory()
		if err != nil {
			return trackCLIError("history clear", fmt.Errorf("count history: %w", err))
		}

		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Forget %d saved colors?", count)).
					Description("Favorites are kept.").
					Affirmative("Clear").
					Negative("Cancel").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				_, _ = fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return trackCLIError("history clear", fmt.Errorf("confirmation prompt: %w", err))
		}
		if !confirmed {
			_, _ = fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	removed, err := database.ClearHistory()
	if err != nil {
		return trackCLIError("history clear", fmt.Errorf("clear history: %w", err))
	}
	if err := database.ClearCurrentState(); err != nil {
		return trackCLIError("history clear", fmt.Errorf("clear last color: %w", err))
	}

	telemetryClient.TrackHistoryCleared(int(removed))
	_, _ = fmt.Fprintf(out, "Cleared %d saved colors.\n", removed)
	return nil
}
