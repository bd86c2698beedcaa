package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/render"
	"github.com/asteroid-belt/ashsha/internal/tui/theme"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite texts",
	Long: `Manage your favorite texts and their colors.

Favorites are stored in favorites.json next to the database and survive
clearing history.

Subcommands:
  add <text...>     Add a text to favorites
  remove <text...>  Remove a text from favorites
  list              List all favorites`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a text to favorites",
	Long:  `Derive the color for a text and add it to your favorites.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <text...>",
	Short: "Remove a text from favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all favorites",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
}

// loadFavorites loads configuration and the favorites store.
func loadFavorites() (*config.Config, *favorites.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	theme.Set(cfg.UI.Theme)

	store := favorites.NewStore(config.GetPaths(cfg).Favorites)
	if err := store.Load(); err != nil {
		return nil, nil, fmt.Errorf("load favorites: %w", err)
	}
	return cfg, store, nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadFavorites()
	if err != nil {
		return trackCLIError("favorites add", err)
	}

	res, err := generator.New(nil, cfg, nil).Preview(strings.Join(args, " "))
	if err != nil {
		return trackCLIError("favorites add", err)
	}

	out := cmd.OutOrStdout()
	if store.IsFavorite(res.Input) {
		_, _ = fmt.Fprintf(out, "'%s' is already a favorite.\n", res.Input)
		return nil
	}

	if err := store.Add(res.Input, res.HexColor); err != nil {
		return trackCLIError("favorites add", fmt.Errorf("add favorite: %w", err))
	}

	telemetryClient.TrackFavoriteAdded()
	_, _ = fmt.Fprintf(out, "Added %s to favorites.\n", render.ColorLine(res.Input, res.HexColor))
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	_, store, err := loadFavorites()
	if err != nil {
		return trackCLIError("favorites remove", err)
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	out := cmd.OutOrStdout()
	if !store.IsFavorite(text) {
		_, _ = fmt.Fprintf(out, "'%s' is not a favorite.\n", text)
		return nil
	}

	if err := store.Remove(text); err != nil {
		return trackCLIError("favorites remove", fmt.Errorf("remove favorite: %w", err))
	}

	telemetryClient.TrackFavoriteRemoved()
	_, _ = fmt.Fprintf(out, "Removed '%s' from favorites.\n", text)
	return nil
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	_, store, err := loadFavorites()
	if err != nil {
		return trackCLIError("favorites list", err)
	}

	list := store.List()
	telemetryClient.TrackFavoritesListed(len(list))

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		_, _ = fmt.Fprintln(out, "No favorites yet. Add one with: ashsha favorites add <text>")
		return nil
	}

	_, _ = fmt.Fprintf(out, "Favorites (%d):\n\n", len(list))
	for _, f := range list {
		_, _ = fmt.Fprintf(out, "  %s\n", render.ColorLine(f.Text, f.HexColor))
	}
	return nil
}
