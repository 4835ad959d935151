package theme

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when no color rows exist for a theme id.
var ErrNotFound = errors.New("theme not found")

// DefaultName is used when a theme has no stored display name.
const DefaultName = "Untitled"

// AnsiKeys lists the 16 palette color keys in terminal index order (0-15).
var AnsiKeys = [16]string{
	"ansi_black",
	"ansi_red",
	"ansi_green",
	"ansi_yellow",
	"ansi_blue",
	"ansi_magenta",
	"ansi_cyan",
	"ansi_white",
	"ansi_brightBlack",
	"ansi_brightRed",
	"ansi_brightGreen",
	"ansi_brightYellow",
	"ansi_brightBlue",
	"ansi_brightMagenta",
	"ansi_brightCyan",
	"ansi_brightWhite",
}

// defaults maps every color key to its fallback hex value. A theme with
// partial rows resolves missing keys from this table instead of failing.
var defaults = map[string]string{
	"background":         "#000000",
	"foreground":         "#ffffff",
	"cursor":             "#ffffff",
	"cursorText":         "#000000",
	"selection":          "#444444",
	"selectionText":      "#ffffff",
	"ansi_black":         "#000000",
	"ansi_red":           "#cd0000",
	"ansi_green":         "#00cd00",
	"ansi_yellow":        "#cdcd00",
	"ansi_blue":          "#0000ee",
	"ansi_magenta":       "#cd00cd",
	"ansi_cyan":          "#00cdcd",
	"ansi_white":         "#e5e5e5",
	"ansi_brightBlack":   "#7f7f7f",
	"ansi_brightRed":     "#ff0000",
	"ansi_brightGreen":   "#00ff00",
	"ansi_brightYellow":  "#ffff00",
	"ansi_brightBlue":    "#5c5cff",
	"ansi_brightMagenta": "#ff00ff",
	"ansi_brightCyan":    "#00ffff",
	"ansi_brightWhite":   "#ffffff",
}

// Keys returns every recognized color key.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for _, k := range []string{"background", "foreground", "cursor", "cursorText", "selection", "selectionText"} {
		keys = append(keys, k)
	}
	keys = append(keys, AnsiKeys[:]...)
	return keys
}

// Default returns the fallback hex value for a color key and whether the
// key is recognized.
func Default(key string) (string, bool) {
	v, ok := defaults[key]
	return v, ok
}

// ColorSet is a fully-resolved set of theme colors, every field a 7-char
// "#rrggbb" hex string.
type ColorSet struct {
	Background    string
	Foreground    string
	Cursor        string
	CursorText    string
	Selection     string
	SelectionText string
	ANSI          [16]string
}

// Resolve builds a ColorSet from flat color rows, filling any missing key
// from the defaults table. Rows with unrecognized keys are ignored.
func Resolve(rows map[string]string) ColorSet {
	get := func(key string) string {
		if v, ok := rows[key]; ok && v != "" {
			return v
		}
		return defaults[key]
	}

	cs := ColorSet{
		Background:    get("background"),
		Foreground:    get("foreground"),
		Cursor:        get("cursor"),
		CursorText:    get("cursorText"),
		Selection:     get("selection"),
		SelectionText: get("selectionText"),
	}
	for i, key := range AnsiKeys {
		cs.ANSI[i] = get(key)
	}
	return cs
}

// Source is the read-only storage surface Lookup needs.
type Source interface {
	// ThemeColors returns all color rows for a theme id. An empty map
	// means the theme does not exist.
	ThemeColors(id string) (map[string]string, error)
	// ThemeName returns the stored display name, or "" when absent.
	ThemeName(id string) (string, error)
}

// Lookup fetches a theme's display name and resolved colors. It returns
// ErrNotFound when no color rows exist for the id; partial rows are filled
// from defaults and never fail.
func Lookup(src Source, id string) (string, ColorSet, error) {
	rows, err := src.ThemeColors(id)
	if err != nil {
		return "", ColorSet{}, fmt.Errorf("theme colors: %w", err)
	}
	if len(rows) == 0 {
		return "", ColorSet{}, ErrNotFound
	}

	name, err := src.ThemeName(id)
	if err != nil {
		return "", ColorSet{}, fmt.Errorf("theme name: %w", err)
	}
	if name == "" {
		name = DefaultName
	}

	return name, Resolve(rows), nil
}
