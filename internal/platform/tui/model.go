// Package tui provides the interactive grid browser and its SSH server.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/huegrid/internal/color"
	"github.com/vovakirdan/huegrid/internal/palette"
	"github.com/vovakirdan/huegrid/internal/render"
	"github.com/vovakirdan/huegrid/internal/storage"
)

// maxFavorites bounds how many saved colors the browser loads at startup.
const maxFavorites = 1000

// BrowserModel is the Bubble Tea model for browsing a palette grid.
type BrowserModel struct {
	pal   palette.Palette
	ids   []string // registered palette IDs, for cycling
	store *storage.Store

	keys  BrowserKeyMap
	help  help.Model
	theme BrowserTheme

	row, col  int
	width     int
	height    int
	favorites map[string]bool
	status    string
	quitting  bool
}

// NewBrowserModel creates a browser for the given palette. The store may be
// nil, in which case favorite toggling is disabled.
func NewBrowserModel(p palette.Palette, store *storage.Store) BrowserModel {
	ids := make([]string, 0)
	for _, info := range palette.List() {
		ids = append(ids, info.ID)
	}

	m := BrowserModel{
		pal:       p,
		ids:       ids,
		store:     store,
		keys:      DefaultBrowserKeyMap(),
		help:      help.New(),
		theme:     DefaultBrowserTheme(),
		favorites: make(map[string]bool),
	}
	m.loadFavorites()
	return m
}

// loadFavorites fills the in-memory favorite set from storage.
func (m *BrowserModel) loadFavorites() {
	if m.store == nil {
		return
	}
	saved, err := m.store.Favorites(maxFavorites)
	if err != nil {
		m.status = "favorites unavailable"
		return
	}
	for _, f := range saved {
		m.favorites[f.Hex] = true
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < m.pal.Rows()-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < m.pal.Columns-1 {
			m.col++
		}

	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite()

	case key.Matches(msg, m.keys.NextPalette):
		m.cyclePalette()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// toggleFavorite saves or removes the color under the cursor.
func (m *BrowserModel) toggleFavorite() {
	if m.store == nil {
		m.status = "no favorites database"
		return
	}

	hex := m.Selected().Hex()
	if m.favorites[hex] {
		if _, err := m.store.RemoveFavorite(hex); err != nil {
			m.status = "could not remove favorite"
			return
		}
		delete(m.favorites, hex)
		m.status = fmt.Sprintf("removed #%s", hex)
		return
	}

	f := storage.Favorite{
		Hex:       hex,
		PaletteID: m.pal.ID,
		Row:       m.row,
		Col:       m.col,
	}
	if _, err := m.store.SaveFavorite(f); err != nil {
		m.status = "could not save favorite"
		return
	}
	m.favorites[hex] = true
	m.status = fmt.Sprintf("saved #%s", hex)
}

// cyclePalette switches to the next registered palette.
func (m *BrowserModel) cyclePalette() {
	if len(m.ids) < 2 {
		return
	}

	next := 0
	for i, id := range m.ids {
		if id == m.pal.ID {
			next = (i + 1) % len(m.ids)
			break
		}
	}

	p, err := palette.Get(m.ids[next])
	if err != nil {
		return
	}
	m.pal = p
	m.row, m.col = 0, 0
	m.status = ""
}

// Selected returns the color under the cursor.
func (m BrowserModel) Selected() color.RGB {
	return m.pal.At(m.row, m.col)
}

// Palette returns the palette currently shown.
func (m BrowserModel) Palette() palette.Palette {
	return m.pal
}

// Cursor returns the cursor position.
func (m BrowserModel) Cursor() (row, col int) {
	return m.row, m.col
}

// IsQuitting reports whether the user asked to exit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.theme.Title.Render(m.pal.Title))
	sb.WriteString("  ")
	sb.WriteString(m.theme.Subtitle.Render(render.Header(m.pal)))
	sb.WriteString("\n\n")

	sb.WriteString(m.viewGrid())
	sb.WriteByte('\n')
	sb.WriteString(m.viewDetail())
	sb.WriteByte('\n')

	if m.status != "" {
		sb.WriteString(m.theme.StatusBar.Render(m.status))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// viewGrid renders the cell grid with the cursor marked by brackets instead
// of the label's padding spaces, keeping every cell the same width.
func (m BrowserModel) viewGrid() string {
	var sb strings.Builder

	for row := 0; row < m.pal.Rows(); row++ {
		for col := 0; col < m.pal.Columns; col++ {
			c := m.pal.At(row, col)
			style := render.CellStyle(c)
			label := fmt.Sprintf(" %d,%d ", row, col)
			if row == m.row && col == m.col {
				label = fmt.Sprintf("[%d,%d]", row, col)
				style = style.Inherit(m.theme.CursorMarker)
			}
			sb.WriteString(style.Render(label))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// viewDetail renders the panel describing the color under the cursor.
func (m BrowserModel) viewDetail() string {
	c := m.Selected()
	fg := c.TextColor()

	fgName := "white"
	if fg == color.Black {
		fgName = "black"
	}

	favorite := m.theme.FavoriteOff.Render("☆")
	if m.favorites[c.Hex()] {
		favorite = m.theme.FavoriteOn.Render("★")
	}

	swatch := render.SwatchStyle(c).Render(c.String())
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, swatch, " ", favorite),
		m.theme.DetailLabel.Render("rgb        ") + m.theme.DetailValue.Render(fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)),
		m.theme.DetailLabel.Render("luminance  ") + m.theme.DetailValue.Render(fmt.Sprintf("%d", c.Luminance())),
		m.theme.DetailLabel.Render("text color ") + m.theme.DetailValue.Render(fgName),
	}

	return m.theme.DetailBorder.Render(strings.Join(lines, "\n"))
}

// RunBrowser starts the interactive browser in the local terminal.
func RunBrowser(p palette.Palette, store *storage.Store) error {
	model := NewBrowserModel(p, store)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
