package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huegrid/internal/color"
	"github.com/vovakirdan/huegrid/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <hex>",
	Short: "Describe a single color",
	Long: `Decode a 6-digit hex color and print its channels, luminance and the
text color huegrid would draw on top of it, along with a swatch.

Examples:
  huegrid inspect f25d94
  huegrid inspect '#643aff'`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func runInspect(_ *cobra.Command, args []string) {
	hex := strings.TrimPrefix(args[0], "#")

	c, err := color.ParseHex(hex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fgName := "white"
	if c.TextColor() == color.Black {
		fgName = "black"
	}

	fmt.Println(render.SwatchStyle(c).Render(c.String()))
	fmt.Println()
	fmt.Printf("  %-11s %s\n", "hex", c.String())
	fmt.Printf("  %-11s %d, %d, %d\n", "rgb", c.R, c.G, c.B)
	fmt.Printf("  %-11s %d\n", "luminance", c.Luminance())
	fmt.Printf("  %-11s %s\n", "text color", fgName)
}
