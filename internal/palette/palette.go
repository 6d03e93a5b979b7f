// Package palette provides a global registry for color palettes.
// Palettes register themselves in init() functions, allowing commands to
// discover them without hardcoded dependencies.
package palette

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/huegrid/internal/color"
)

// Palette is an immutable, ordered grid of colors. Colors are stored in
// row-major order; row and column of an entry are derived purely from
// Columns, never assumed from any fixed grid shape.
type Palette struct {
	// ID is a unique identifier (e.g. "charm"), used on the CLI and in
	// favorite records.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Attribution names where the colors come from. It is shown in the
	// grid header.
	Attribution string

	// Columns is the grid width. Len() must be a positive multiple of it.
	Columns int

	colors []color.RGB
}

// New builds a palette from authored hex strings, decoding and validating
// every entry.
func New(id, title, attribution string, columns int, hexes []string) (Palette, error) {
	if columns <= 0 {
		return Palette{}, fmt.Errorf("palette: %s: columns must be positive, got %d", id, columns)
	}
	if len(hexes) == 0 || len(hexes)%columns != 0 {
		return Palette{}, fmt.Errorf("palette: %s: %d colors is not a positive multiple of %d columns", id, len(hexes), columns)
	}

	colors := make([]color.RGB, len(hexes))
	for i, h := range hexes {
		c, err := color.ParseHex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette: %s: entry %d: %w", id, i, err)
		}
		colors[i] = c
	}

	return Palette{
		ID:          id,
		Title:       title,
		Attribution: attribution,
		Columns:     columns,
		colors:      colors,
	}, nil
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// Rows returns the number of grid rows.
func (p Palette) Rows() int {
	return len(p.colors) / p.Columns
}

// At returns the color at the given grid position.
func (p Palette) At(row, col int) color.RGB {
	return p.colors[row*p.Columns+col]
}

// Color returns the color at the given linear index.
func (p Palette) Color(i int) color.RGB {
	return p.colors[i]
}

// WithColumns returns a copy of the palette rewrapped to a different column
// count. The count must evenly divide the palette length.
func (p Palette) WithColumns(columns int) (Palette, error) {
	if columns <= 0 || len(p.colors)%columns != 0 {
		return Palette{}, fmt.Errorf("palette: %s: cannot rewrap %d colors to %d columns", p.ID, len(p.colors), columns)
	}
	q := p
	q.Columns = columns
	return q, nil
}

// Info contains metadata about a registered palette.
type Info struct {
	ID      string
	Title   string
	Size    int
	Columns int
}

var (
	palettes = make(map[string]Palette)
	mu       sync.RWMutex
)

// Register adds a palette to the registry. Typically called from an init()
// function in the palette's own file. Panics if the ID is already taken.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := palettes[p.ID]; exists {
		panic(fmt.Sprintf("palette: %q already registered", p.ID))
	}
	palettes[p.ID] = p
}

// MustNew builds a palette from a compiled-in table, panicking on authoring
// errors.
func MustNew(id, title, attribution string, columns int, hexes []string) Palette {
	p, err := New(id, title, attribution, columns, hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Get looks up a palette by ID.
func Get(id string) (Palette, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := palettes[id]
	if !ok {
		return Palette{}, fmt.Errorf("palette: unknown palette %q", id)
	}
	return p, nil
}

// Exists checks whether a palette with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := palettes[id]
	return ok
}

// List returns information about all registered palettes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(palettes))
	for _, p := range palettes {
		result = append(result, Info{
			ID:      p.ID,
			Title:   p.Title,
			Size:    p.Len(),
			Columns: p.Columns,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}
