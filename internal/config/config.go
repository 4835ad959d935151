package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	DBPath        string
	DefaultTarget string
	Apply         bool
}

func Default() Config {
	return Config{
		DBPath:        defaultDBPath(),
		DefaultTarget: "",
		Apply:         true,
	}
}

// defaultDBPath puts the theme database under the XDG data directory.
func defaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "termtint", "themes.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "termtint", "themes.db")
}
