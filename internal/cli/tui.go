package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/log"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/internal/tui"
	"github.com/asteroid-belt/ashsha/internal/tui/design"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorf("\U000026A0\U0000FE0F  Failed to close database: %v\n", err)
		}
	}()

	// Initialize logger
	if err := log.Init(cfg.BaseDir); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	printBanner()

	paths := config.GetPaths(cfg)
	log.Printf("\n\U0001F4C1 Base directory: %s\n", cfg.BaseDir)
	log.Printf("\U0001F4C1 Database: %s\n", paths.Database)
	log.Printf("\U0001F4C1 Log file: %s\n", paths.Log)

	stats, err := database.GetStats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}
	log.Printf("   Saved colors: %d\n", stats.HistoryEntries)
	if stats.SizeBytes > 0 {
		log.Printf("   Database size: %.2f KB\n", float64(stats.SizeBytes)/1024)
	}

	favs := favorites.NewStore(paths.Favorites)
	if err := favs.Load(); err != nil {
		log.Errorf("\U000026A0\U0000FE0F  Could not load favorites: %v\n", err)
		favs = nil
	}

	if telemetry.IsEnabled() {
		log.Println("\n\U0001F4CA Telemetry: ON (set ASHSHA_TELEMETRY_TRACKING_ENABLED=false to disable)")
		log.Printf("   Anon ID: %s\n", database.GetOrCreateTrackingID())
	} else {
		log.Println("\n\U0001F4CA Telemetry: OFF")
	}

	telemetryClient.TrackAppStarted("tui", int(stats.HistoryEntries))

	log.Println("\n\U0001F3A8 Launching ashsha TUI...")
	log.Println("   Type to preview, enter to save, esc to quit")

	return tui.Run(database, favs, cfg, telemetryClient)
}

func printBanner() {
	fmt.Println(design.LogoBoxed)
	fmt.Printf("   Version: %s\n", version.Short())
}
