package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show paths, settings and storage statistics",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return trackCLIError("info", err)
	}
	defer func() { _ = database.Close() }()

	stats, err := database.GetStats()
	if err != nil {
		return trackCLIError("info", fmt.Errorf("get stats: %w", err))
	}

	paths := config.GetPaths(cfg)
	favs := favorites.NewStore(paths.Favorites)
	if err := favs.Load(); err != nil {
		return trackCLIError("info", fmt.Errorf("load favorites: %w", err))
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Version:        %s\n", version.Short())
	_, _ = fmt.Fprintf(out, "Algorithm:      %s\n", colorhash.AlgorithmVersion)
	_, _ = fmt.Fprintf(out, "Base directory: %s\n", cfg.BaseDir)
	_, _ = fmt.Fprintf(out, "Database:       %s (%.2f KB)\n", paths.Database, float64(stats.SizeBytes)/1024)
	_, _ = fmt.Fprintf(out, "Favorites:      %s\n", paths.Favorites)
	_, _ = fmt.Fprintf(out, "\nHistory:        %d of %d kept\n", stats.HistoryEntries, cfg.History.Limit)
	_, _ = fmt.Fprintf(out, "Last color:     %t\n", stats.HasState)
	_, _ = fmt.Fprintf(out, "Favorites:      %d\n", favs.Count())
	_, _ = fmt.Fprintf(out, "\nTheme:          %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(out, "Debounce:       %dms\n", cfg.UI.DebounceMs)
	_, _ = fmt.Fprintf(out, "Max input:      %d bytes\n", cfg.Input.MaxBytes)

	if telemetry.IsEnabled() {
		_, _ = fmt.Fprintf(out, "Telemetry:      on (anon ID %s)\n", database.GetOrCreateTrackingID())
	} else {
		_, _ = fmt.Fprintln(out, "Telemetry:      off")
	}
	return nil
}
