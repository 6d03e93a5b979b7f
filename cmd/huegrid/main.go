// huegrid is a terminal color-palette inspector.
//
// Usage:
//
//	huegrid render [palette]   - Print a palette as a true-color ANSI grid
//	huegrid browse [palette]   - Browse a palette interactively
//	huegrid serve              - Start SSH server for remote browsing
//	huegrid list               - List available palettes
//	huegrid inspect <hex>      - Describe a single color
//	huegrid favorites          - Show saved favorite colors
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Path to the favorites database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huegrid/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huegrid",
	Short: "huegrid - Inspect color palettes in your terminal",
	Long: `huegrid renders color palettes as labeled true-color grids, with a
contrasting black or white label picked per cell from its luminance.

Available commands:
  render     - Print a palette as an ANSI grid
  browse     - Interactive palette browser
  serve      - Start SSH server for remote browsing
  list       - Show all available palettes
  inspect    - Describe a single color
  favorites  - View saved favorite colors

Examples:
  huegrid render
  huegrid render grayscale --columns 6
  huegrid browse
  huegrid serve --ssh :2222
  huegrid inspect f25d94`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to favorites database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(favoritesCmd)
}

// loadConfig loads the config honoring the --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// dbPath resolves the favorites database location: flag over config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.Storage.DBPath != "" {
		return cfg.Storage.DBPath
	}
	return config.Default().Storage.DBPath
}
