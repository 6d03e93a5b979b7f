package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	favorites := []Favorite{
		{Hex: "f25d94", PaletteID: "charm", Row: 0, Col: 0},
		{Hex: "643aff", PaletteID: "charm", Row: 7, Col: 0},
		{Hex: "808080", PaletteID: "grayscale", Row: 1, Col: 4, Note: "mid gray"},
	}
	for _, f := range favorites {
		if _, err := store.SaveFavorite(f); err != nil {
			t.Fatalf("SaveFavorite(%q) failed: %v", f.Hex, err)
		}
	}

	got, err := store.Favorites(10)
	if err != nil {
		t.Fatalf("Favorites() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 favorites, got %d", len(got))
	}

	// Newest first
	if got[0].Hex != "808080" {
		t.Errorf("Expected newest favorite first, got %q", got[0].Hex)
	}
	if got[0].Note != "mid gray" {
		t.Errorf("Note = %q, expected %q", got[0].Note, "mid gray")
	}

	f, err := store.FavoriteByHex("643aff")
	if err != nil {
		t.Fatalf("FavoriteByHex() failed: %v", err)
	}
	if f == nil {
		t.Fatal("FavoriteByHex() returned nil for a saved color")
	}
	if f.PaletteID != "charm" || f.Row != 7 || f.Col != 0 {
		t.Errorf("FavoriteByHex() origin = %s %d,%d, expected charm 7,0", f.PaletteID, f.Row, f.Col)
	}

	c, err := f.Color()
	if err != nil {
		t.Fatalf("Color() failed: %v", err)
	}
	if c.Hex() != "643aff" {
		t.Errorf("Color() = %s, expected 643aff", c.Hex())
	}
}

func TestStoreSaveDuplicateUpdates(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	firstID, err := store.SaveFavorite(Favorite{Hex: "f25d94", PaletteID: "charm", Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("SaveFavorite() failed: %v", err)
	}
	// An unrelated insert in between must not leak its rowid into the
	// duplicate save's return value.
	if _, err := store.SaveFavorite(Favorite{Hex: "643aff", PaletteID: "charm", Row: 7, Col: 0}); err != nil {
		t.Fatalf("SaveFavorite() failed: %v", err)
	}
	secondID, err := store.SaveFavorite(Favorite{Hex: "f25d94", PaletteID: "charm", Row: 0, Col: 0, Note: "hot pink"})
	if err != nil {
		t.Fatalf("SaveFavorite() of duplicate failed: %v", err)
	}
	if secondID != firstID {
		t.Errorf("duplicate save returned ID %d, expected the existing row's ID %d", secondID, firstID)
	}

	favorites, err := store.Favorites(10)
	if err != nil {
		t.Fatalf("Favorites() failed: %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("Expected 2 favorites after duplicate save, got %d", len(favorites))
	}

	saved, err := store.FavoriteByHex("f25d94")
	if err != nil {
		t.Fatalf("FavoriteByHex() failed: %v", err)
	}
	if saved == nil {
		t.Fatal("FavoriteByHex() returned nil after duplicate save")
	}
	if saved.Note != "hot pink" {
		t.Errorf("Note = %q, expected duplicate save to update it", saved.Note)
	}
}

func TestStoreSaveRejectsMalformedHex(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveFavorite(Favorite{Hex: "nothex"}); err == nil {
		t.Error("SaveFavorite() should reject a malformed hex value")
	}
}

func TestStoreRemoveAndClear(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveFavorite(Favorite{Hex: "f25d94", PaletteID: "charm"})
	store.SaveFavorite(Favorite{Hex: "643aff", PaletteID: "charm"})

	removed, err := store.RemoveFavorite("f25d94")
	if err != nil {
		t.Fatalf("RemoveFavorite() failed: %v", err)
	}
	if !removed {
		t.Error("RemoveFavorite() of a saved color reported nothing removed")
	}

	removed, err = store.RemoveFavorite("ffffff")
	if err != nil {
		t.Fatalf("RemoveFavorite() of unsaved color failed: %v", err)
	}
	if removed {
		t.Error("RemoveFavorite() of an unsaved color reported a removal")
	}

	if err := store.ClearFavorites(); err != nil {
		t.Fatalf("ClearFavorites() failed: %v", err)
	}
	favorites, err := store.Favorites(10)
	if err != nil {
		t.Fatalf("Favorites() failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("Expected 0 favorites after clear, got %d", len(favorites))
	}
}

func TestStoreFavoriteByHexMissing(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	f, err := store.FavoriteByHex("f25d94")
	if err != nil {
		t.Fatalf("FavoriteByHex() failed: %v", err)
	}
	if f != nil {
		t.Errorf("FavoriteByHex() of unsaved color = %v, expected nil", f)
	}
}

func TestStorePaletteStats(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveFavorite(Favorite{Hex: "f25d94", PaletteID: "charm"})
	store.SaveFavorite(Favorite{Hex: "643aff", PaletteID: "charm"})
	store.SaveFavorite(Favorite{Hex: "808080", PaletteID: "grayscale"})

	stats, err := store.GetPaletteStats()
	if err != nil {
		t.Fatalf("GetPaletteStats() failed: %v", err)
	}

	if got := stats["charm"]; got == nil || got.Count != 2 {
		t.Errorf("charm stats = %+v, expected count 2", got)
	}
	if got := stats["grayscale"]; got == nil || got.Count != 1 {
		t.Errorf("grayscale stats = %+v, expected count 1", got)
	}
}
