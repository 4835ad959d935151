package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	DBPath        *string `toml:"db_path"`
	DefaultTarget *string `toml:"default_target"`
	Apply         *bool   `toml:"apply"`
}

// ConfigDir returns the termtint config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termtint")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "termtint")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, err
	}

	if fc.DBPath != nil {
		cfg.DBPath = ExpandHome(*fc.DBPath)
	}
	if fc.DefaultTarget != nil {
		cfg.DefaultTarget = *fc.DefaultTarget
	}
	if fc.Apply != nil {
		cfg.Apply = *fc.Apply
	}

	return true, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
