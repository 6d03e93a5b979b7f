// Package render turns palettes into terminal output: a raw true-color ANSI
// grid for stdout and lipgloss styles for the interactive browser.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/huegrid/internal/color"
	"github.com/vovakirdan/huegrid/internal/palette"
)

const (
	esc   = "\x1b"
	reset = esc + "[0m"
)

// Cell formats one grid cell: background escape for the cell color,
// foreground escape for its contrasting text color, the " row,col " label,
// and a reset.
func Cell(c color.RGB, row, col int) string {
	fg := c.TextColor()
	return fmt.Sprintf("%s[48;2;%d;%d;%dm%s[38;2;%d;%d;%dm %d,%d %s",
		esc, c.R, c.G, c.B,
		esc, fg.R, fg.G, fg.B,
		row, col,
		reset)
}

// Header returns the one-line title printed above the grid.
func Header(p palette.Palette) string {
	return fmt.Sprintf("Color Grid (%d×%d) - %s", p.Columns, p.Rows(), p.Attribution)
}

// Body renders the grid rows without header or trailing blank line. Cells
// are emitted in linear order with a line break after every Columns-th cell;
// the output is built in one buffer so callers do a single write.
func Body(p palette.Palette) string {
	var sb strings.Builder
	// Rough per-cell cost of the two escapes plus label.
	sb.Grow(p.Len() * 48)

	for i := 0; i < p.Len(); i++ {
		row, col := i/p.Columns, i%p.Columns
		sb.WriteString(Cell(p.Color(i), row, col))
		if col == p.Columns-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Grid renders the whole palette: header, one line of cells per grid row,
// and a trailing blank line.
func Grid(p palette.Palette) string {
	return Header(p) + "\n" + Body(p) + "\n"
}

// Width returns the visible width of the grid's widest row. Labels widen as
// row and column numbers gain digits, so the bottom row is the widest.
func Width(p palette.Palette) int {
	lastRow := p.Rows() - 1
	w := 0
	for col := 0; col < p.Columns; col++ {
		w += len(fmt.Sprintf(" %d,%d ", lastRow, col))
	}
	return w
}
