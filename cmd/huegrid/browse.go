package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huegrid/internal/platform/tui"
	"github.com/vovakirdan/huegrid/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse [palette]",
	Short: "Browse a palette interactively",
	Long: `Open an interactive browser for the given palette.

Move the cursor over the grid to inspect each color's hex value, channels,
luminance and chosen text color. Favorites are saved to the database.

Controls:
  Arrows/hjkl  - Move cursor
  F/Space      - Toggle favorite
  Tab/P        - Next palette
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  huegrid browse
  huegrid browse grayscale
  huegrid browse --db ./favorites.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBrowse,
}

func runBrowse(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	p := resolvePalette(args, cfg)

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open favorites database: %v\n", err)
		// Continue without storage - browsing still works
		store = nil
	}

	runErr := tui.RunBrowser(p, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", runErr)
		os.Exit(1)
	}
}
