package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// BrowserTheme contains all configurable visual styles for the grid browser.
type BrowserTheme struct {
	// Chrome
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	StatusBar lipgloss.Style

	// CursorMarker is layered onto the cursor cell's style; it must not
	// set colors, which come from the cell itself.
	CursorMarker lipgloss.Style

	// Detail panel
	DetailLabel  lipgloss.Style
	DetailValue  lipgloss.Style
	DetailBorder lipgloss.Style

	// Favorite marker
	FavoriteOn  lipgloss.Style
	FavoriteOff lipgloss.Style
}

// DefaultBrowserTheme returns the default visual theme.
func DefaultBrowserTheme() BrowserTheme {
	return BrowserTheme{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		CursorMarker: lipgloss.NewStyle().Bold(true),

		DetailLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DetailValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DetailBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		FavoriteOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		FavoriteOff: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
