// Package config provides YAML-based configuration loading for huegrid.
package config

// Config holds user-tunable settings for rendering and storage.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Storage StorageConfig `yaml:"storage"`
}

// RenderConfig controls grid output.
type RenderConfig struct {
	// Palette is the ID rendered when the command line names none.
	Palette string `yaml:"palette"`

	// Columns overrides the palette's column count when positive. It must
	// evenly divide the palette length.
	Columns int `yaml:"columns"`

	// Header toggles the title line above the grid.
	Header bool `yaml:"header"`
}

// StorageConfig controls the favorites database.
type StorageConfig struct {
	// DBPath is the SQLite database location. A leading ~ expands to the
	// home directory.
	DBPath string `yaml:"db_path"`
}
