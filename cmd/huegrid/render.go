package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/huegrid/internal/config"
	"github.com/vovakirdan/huegrid/internal/palette"
	"github.com/vovakirdan/huegrid/internal/render"
)

var flagColumns int

var renderCmd = &cobra.Command{
	Use:   "render [palette]",
	Short: "Print a palette as a true-color ANSI grid",
	Long: `Render a palette to stdout as a grid of colored cells. Each cell
shows its row,col position over the cell's color, with the label drawn in
black or white depending on the cell's luminance.

The grid shape is derived from the palette's column count. --columns rewraps
the same colors to a different width; it must evenly divide the palette size.

Examples:
  huegrid render
  huegrid render grayscale
  huegrid render charm --columns 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagColumns, "columns", 0, "Override the palette's column count (0 = palette default)")
}

func runRender(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	p := resolvePalette(args, cfg)

	columns := flagColumns
	if columns == 0 {
		columns = cfg.Render.Columns
	}
	if columns > 0 && columns != p.Columns {
		rewrapped, err := p.WithColumns(columns)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		p = rewrapped
	}

	// Warn when the grid's widest row will wrap in the current terminal.
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && render.Width(p) > w {
		fmt.Fprintf(os.Stderr, "Warning: the grid is wider than the terminal and will wrap\n")
	}

	out := render.Grid(p)
	if !cfg.Render.Header {
		out = render.Body(p) + "\n"
	}
	os.Stdout.WriteString(out)
}

// resolvePalette picks the palette to show: argument, then config, then the
// builtin default.
func resolvePalette(args []string, cfg config.Config) palette.Palette {
	id := palette.DefaultID
	if cfg.Render.Palette != "" {
		id = cfg.Render.Palette
	}
	if len(args) > 0 {
		id = args[0]
	}

	p, err := palette.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown palette %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'huegrid list' to see available palettes.")
		os.Exit(1)
	}
	return p
}
