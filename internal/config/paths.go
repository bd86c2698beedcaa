package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database  string // SQLite database (history, current state)
	Favorites string // Pinned texts, JSON
	Log       string // Log file
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database:  filepath.Join(cfg.BaseDir, "ashsha.db"),
		Favorites: filepath.Join(cfg.BaseDir, "favorites.json"),
		Log:       filepath.Join(cfg.BaseDir, "ashsha.log"),
	}
}

// DefaultBaseDir returns the default base directory ($XDG_DATA_HOME/ashsha).
func DefaultBaseDir() string {
	return filepath.Join(xdg.DataHome, "ashsha")
}
