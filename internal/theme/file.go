package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is a theme definition on disk, a TOML document with a [theme]
// header and a flat [colors] table using the same keys as the store.
type File struct {
	Theme struct {
		ID   string `toml:"id"`
		Name string `toml:"name"`
	} `toml:"theme"`
	Colors map[string]string `toml:"colors"`
}

// LoadFile reads and validates a theme definition. Every color key must be
// recognized and every value a well-formed "#rrggbb" string; a file with no
// colors at all is rejected.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read theme file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(f.Colors) == 0 {
		return File{}, fmt.Errorf("%s: no colors defined", path)
	}
	for key, value := range f.Colors {
		if _, ok := Default(key); !ok {
			return File{}, fmt.Errorf("%s: unknown color key %q", path, key)
		}
		if _, err := ParseHex(value); err != nil {
			return File{}, fmt.Errorf("%s: %s: %w", path, key, err)
		}
	}

	if f.Theme.Name == "" {
		f.Theme.Name = DefaultName
	}
	return f, nil
}
