package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huegrid/internal/palette"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available palettes",
	Long:  `Shows a list of all palettes registered in huegrid.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	palettes := palette.List()

	if len(palettes) == 0 {
		fmt.Println("No palettes available.")
		return
	}

	fmt.Println("Available palettes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range palettes {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-16s  %6s  %7s\n", maxIDLen, "ID", "Title", "Colors", "Columns")
	fmt.Printf("  %-*s  %-16s  %6s  %7s\n", maxIDLen, "--", "-----", "------", "-------")

	// Print palettes
	for _, p := range palettes {
		fmt.Printf("  %-*s  %-16s  %6d  %7d\n", maxIDLen, p.ID, p.Title, p.Size, p.Columns)
	}

	fmt.Println()
	fmt.Println("Run 'huegrid render <id>' to print a palette.")
}
