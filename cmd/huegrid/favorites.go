package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huegrid/internal/render"
	"github.com/vovakirdan/huegrid/internal/storage"
)

var flagFavoritesLimit int

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Show saved favorite colors",
	Long: `Display colors saved from the browser, newest first.

Examples:
  huegrid favorites
  huegrid favorites --limit 5
  huegrid favorites clear`,
	Run: runFavorites,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved favorites",
	Run:   runFavoritesClear,
}

func init() {
	favoritesCmd.Flags().IntVar(&flagFavoritesLimit, "limit", 20, "Maximum number of favorites to show")
	favoritesCmd.AddCommand(favoritesClearCmd)
}

// openStore opens the favorites database, exiting on failure.
func openStore() *storage.Store {
	cfg := loadConfig()
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening favorites database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runFavorites(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	favorites, err := store.Favorites(flagFavoritesLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving favorites: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Favorite colors")
	fmt.Println()

	if len(favorites) == 0 {
		fmt.Println("No favorites saved yet.")
		fmt.Println()
		fmt.Println("Press F on a cell in 'huegrid browse' to save one.")
		return
	}

	fmt.Printf("  %-10s  %-10s  %-6s  %s\n", "Color", "Palette", "Cell", "Saved")
	fmt.Printf("  %-10s  %-10s  %-6s  %s\n", "-----", "-------", "----", "-----")

	for _, f := range favorites {
		c, err := f.Color()
		if err != nil {
			// A malformed row can only come from outside edits; skip it.
			continue
		}
		swatch := render.SwatchStyle(c).Render(c.String())
		cell := fmt.Sprintf("%d,%d", f.Row, f.Col)
		dateStr := f.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %s  %-10s  %-6s  %s\n", swatch, f.PaletteID, cell, dateStr)
	}
}

func runFavoritesClear(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.ClearFavorites(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing favorites: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Favorites cleared.")
}
