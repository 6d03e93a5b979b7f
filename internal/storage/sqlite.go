// Package storage provides SQLite-based persistence for color favorites.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/huegrid/internal/color"
)

// Store manages the SQLite database connection for favorite persistence.
type Store struct {
	db *sql.DB
}

// Favorite is a saved color, remembering which palette cell it came from.
type Favorite struct {
	ID        int64
	Hex       string
	PaletteID string
	Row       int
	Col       int
	Note      string
	CreatedAt time.Time
}

// Color decodes the stored hex value.
func (f Favorite) Color() (color.RGB, error) {
	return color.ParseHex(f.Hex)
}

// PaletteStats counts saved favorites per palette.
type PaletteStats struct {
	PaletteID string
	Count     int
	LastSaved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hex TEXT NOT NULL UNIQUE,
			palette_id TEXT NOT NULL,
			grid_row INTEGER NOT NULL,
			grid_col INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_favorites_palette ON favorites(palette_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveFavorite records a color. Saving a hex that is already stored updates
// its origin and note instead of failing.
// Returns the ID of the stored record.
func (s *Store) SaveFavorite(f Favorite) (int64, error) {
	if _, err := color.ParseHex(f.Hex); err != nil {
		return 0, fmt.Errorf("storage: cannot save favorite: %w", err)
	}

	// RETURNING yields the row's real ID on both the insert and the
	// conflict-update path; last_insert_rowid() would be stale on updates.
	var id int64
	err := s.db.QueryRow(
		`INSERT INTO favorites (hex, palette_id, grid_row, grid_col, note) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(hex) DO UPDATE SET palette_id=excluded.palette_id,
		    grid_row=excluded.grid_row, grid_col=excluded.grid_col, note=excluded.note
		 RETURNING id`,
		f.Hex, f.PaletteID, f.Row, f.Col, f.Note,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save favorite: %w", err)
	}

	return id, nil
}

// Favorites retrieves saved colors, newest first.
func (s *Store) Favorites(limit int) ([]Favorite, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, hex, palette_id, grid_row, grid_col, note, created_at
		 FROM favorites
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return favorites, nil
}

// FavoriteByHex retrieves a favorite by its hex value.
// Returns nil if the color is not saved.
func (s *Store) FavoriteByHex(hex string) (*Favorite, error) {
	row := s.db.QueryRow(
		`SELECT id, hex, palette_id, grid_row, grid_col, note, created_at
		 FROM favorites
		 WHERE hex = ?`,
		hex,
	)

	f, err := scanFavorite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// RemoveFavorite deletes a saved color by hex value.
// Reports whether a record was removed.
func (s *Store) RemoveFavorite(hex string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM favorites WHERE hex = ?", hex)
	if err != nil {
		return false, fmt.Errorf("storage: cannot remove favorite: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count removed rows: %w", err)
	}
	return n > 0, nil
}

// ClearFavorites deletes all saved colors.
func (s *Store) ClearFavorites() error {
	_, err := s.db.Exec("DELETE FROM favorites")
	if err != nil {
		return fmt.Errorf("storage: cannot clear favorites: %w", err)
	}
	return nil
}

// GetPaletteStats retrieves per-palette favorite counts.
func (s *Store) GetPaletteStats() (map[string]*PaletteStats, error) {
	rows, err := s.db.Query(
		`SELECT palette_id, COUNT(*), MAX(created_at)
		 FROM favorites
		 GROUP BY palette_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get palette stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PaletteStats)
	for rows.Next() {
		var ps PaletteStats
		var lastSaved any
		if err := rows.Scan(&ps.PaletteID, &ps.Count, &lastSaved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastSaved = parseTimestamp(lastSaved)
		stats[ps.PaletteID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFavorite(row scanner) (Favorite, error) {
	var f Favorite
	var createdAt any
	if err := row.Scan(&f.ID, &f.Hex, &f.PaletteID, &f.Row, &f.Col, &f.Note, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return f, err
		}
		return f, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	f.CreatedAt = parseTimestamp(createdAt)
	return f, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
