package palette

import (
	"testing"

	"github.com/vovakirdan/huegrid/internal/color"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		hexes   []string
		wantErr bool
	}{
		{"valid 2x2", 2, []string{"000000", "ffffff", "f25d94", "643aff"}, false},
		{"valid single row", 4, []string{"000000", "ffffff", "f25d94", "643aff"}, false},
		{"length not multiple of columns", 3, []string{"000000", "ffffff", "f25d94", "643aff"}, true},
		{"zero columns", 0, []string{"000000"}, true},
		{"negative columns", -1, []string{"000000"}, true},
		{"empty table", 2, nil, true},
		{"malformed entry", 2, []string{"000000", "nothex"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("test", "Test", "test", tc.columns, tc.hexes)
			if tc.wantErr && err == nil {
				t.Error("New() expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("New() failed: %v", err)
			}
		})
	}
}

func TestPaletteIndexing(t *testing.T) {
	p, err := New("test", "Test", "test", 3, []string{
		"000000", "111111", "222222",
		"333333", "444444", "555555",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if p.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", p.Len())
	}
	if p.Rows() != 2 {
		t.Errorf("Rows() = %d, expected 2", p.Rows())
	}

	// Linear index i maps to (i/columns, i%columns).
	for i := 0; i < p.Len(); i++ {
		row, col := i/p.Columns, i%p.Columns
		if p.At(row, col) != p.Color(i) {
			t.Errorf("At(%d, %d) != Color(%d)", row, col, i)
		}
	}

	if got := p.At(1, 2); got != (color.RGB{R: 0x55, G: 0x55, B: 0x55}) {
		t.Errorf("At(1, 2) = %v, expected 555555", got)
	}
}

func TestWithColumns(t *testing.T) {
	p, err := New("test", "Test", "test", 4, []string{
		"000000", "111111", "222222", "333333",
		"444444", "555555", "666666", "777777",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	q, err := p.WithColumns(2)
	if err != nil {
		t.Fatalf("WithColumns(2) failed: %v", err)
	}
	if q.Columns != 2 || q.Rows() != 4 {
		t.Errorf("rewrapped shape = %dx%d, expected 2x4", q.Columns, q.Rows())
	}
	// Linear order is preserved; only the wrap point moves.
	if q.At(1, 0) != p.At(0, 2) {
		t.Error("rewrap changed linear color order")
	}

	if _, err := p.WithColumns(3); err == nil {
		t.Error("WithColumns(3) should fail for 8 colors")
	}
	if _, err := p.WithColumns(0); err == nil {
		t.Error("WithColumns(0) should fail")
	}
}

func TestBuiltinCharm(t *testing.T) {
	p, err := Get(DefaultID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultID, err)
	}

	if p.Len() != 112 {
		t.Errorf("charm palette has %d colors, expected 112", p.Len())
	}
	if p.Columns != 14 || p.Rows() != 8 {
		t.Errorf("charm palette shape = %dx%d, expected 14x8", p.Columns, p.Rows())
	}

	// The four authored corners survive decoding.
	corners := map[string]color.RGB{
		"top left":     p.At(0, 0),
		"top right":    p.At(0, 13),
		"bottom left":  p.At(7, 0),
		"bottom right": p.At(7, 13),
	}
	expected := map[string]string{
		"top left":     "f25d94",
		"top right":    "edff82",
		"bottom left":  "643aff",
		"bottom right": "14f9d5",
	}
	for name, c := range corners {
		if c.Hex() != expected[name] {
			t.Errorf("%s corner = %s, expected %s", name, c.Hex(), expected[name])
		}
	}
}

func TestBuiltinGrayscale(t *testing.T) {
	p, err := Get("grayscale")
	if err != nil {
		t.Fatalf("Get(grayscale) failed: %v", err)
	}
	if p.Len() != 24 || p.Columns != 8 {
		t.Errorf("grayscale shape = %d colors x %d columns, expected 24x8", p.Len(), p.Columns)
	}
	for i := 0; i < p.Len(); i++ {
		c := p.Color(i)
		if c.R != c.G || c.G != c.B {
			t.Errorf("grayscale entry %d is not gray: %v", i, c)
		}
	}
}

func TestRegistry(t *testing.T) {
	if !Exists(DefaultID) {
		t.Errorf("builtin palette %q not registered", DefaultID)
	}
	if Exists("no-such-palette") {
		t.Error("Exists() reported an unregistered palette")
	}
	if _, err := Get("no-such-palette"); err == nil {
		t.Error("Get() of unregistered palette should fail")
	}

	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List() returned %d palettes, expected at least 2 builtins", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Error("List() is not sorted by ID")
			break
		}
	}
}
