package config

import (
	_ "embed"
)

//go:embed defaults/huegrid.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Palette: "charm",
			Columns: 0,
			Header:  true,
		},
		Storage: StorageConfig{
			DBPath: "~/.huegrid/favorites.db",
		},
	}
}
