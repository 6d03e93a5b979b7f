package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/huegrid/internal/color"
)

// CellStyle builds a lipgloss style for a grid cell: the cell color as
// background and its contrasting text color as foreground. Used by the TUI,
// which lets lipgloss handle profile-aware escape emission.
func CellStyle(c color.RGB) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Foreground(lipgloss.Color(c.TextColor().String()))
}

// SwatchStyle is CellStyle with padding, for standalone color swatches.
func SwatchStyle(c color.RGB) lipgloss.Style {
	return CellStyle(c).Padding(0, 1)
}
