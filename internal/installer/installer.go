// Package installer writes stored themes into the native configuration of
// supported terminal emulators. Each target is an independent transform
// from a resolved theme to that emulator's config format, with a
// best-effort live-apply step where the emulator supports one.
package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"termtint/internal/theme"
)

// Result is the uniform outcome record every installer returns. Installers
// never let an error escape; all failure is captured here as data.
type Result struct {
	Success      bool   `json:"success"`
	Path         string `json:"path"`
	Instructions string `json:"instructions,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Installer installs a stored theme into one terminal emulator.
type Installer interface {
	// Name is the emulator's display name.
	Name() string
	// Install looks up the theme, writes the target's config, and
	// optionally live-applies it. All failure comes back in the Result.
	Install(themeID string) Result
}

// Target identifiers accepted by ForTarget and the CLI/IPC surfaces.
const (
	TargetITerm2          = "iterm2"
	TargetTerminalApp     = "terminal-app"
	TargetWindowsTerminal = "windows-terminal"
	TargetAlacritty       = "alacritty"
	TargetKitty           = "kitty"
)

// Targets lists every supported target identifier.
func Targets() []string {
	return []string{
		TargetITerm2,
		TargetTerminalApp,
		TargetWindowsTerminal,
		TargetAlacritty,
		TargetKitty,
	}
}

// ForTarget returns the installer for a target identifier.
func ForTarget(target string, src theme.Source, apply bool) (Installer, error) {
	switch target {
	case TargetITerm2:
		return ITerm2{Source: src, Apply: apply}, nil
	case TargetTerminalApp:
		return TerminalApp{Source: src, Apply: apply}, nil
	case TargetWindowsTerminal:
		return WindowsTerminal{Source: src}, nil
	case TargetAlacritty:
		return Alacritty{Source: src}, nil
	case TargetKitty:
		return Kitty{Source: src}, nil
	default:
		return nil, fmt.Errorf("unknown target %q", target)
	}
}

// All returns every installer, in Targets() order.
func All(src theme.Source, apply bool) []Installer {
	installers := make([]Installer, 0, 5)
	for _, t := range Targets() {
		inst, _ := ForTarget(t, src, apply)
		installers = append(installers, inst)
	}
	return installers
}

// DetectInstalled enumerates themes already present in terminal configs.
// Not implemented; always returns an empty list.
func DetectInstalled() []string {
	return []string{}
}

func success(path, instructions string) Result {
	return Result{Success: true, Path: path, Instructions: instructions}
}

func failure(path string, err error) Result {
	return Result{Path: path, Error: err.Error()}
}

// lookupTheme resolves a theme for an installer. A non-nil Result means the
// install must stop and return it.
func lookupTheme(src theme.Source, id string) (string, theme.ColorSet, *Result) {
	name, cs, err := theme.Lookup(src, id)
	if err == theme.ErrNotFound {
		return "", theme.ColorSet{}, &Result{Error: "Theme not found"}
	}
	if err != nil {
		r := failure("", err)
		return "", theme.ColorSet{}, &r
	}
	return name, cs, nil
}

// validateColors rejects any malformed hex value up front so textual
// targets never write garbage into a config file.
func validateColors(cs theme.ColorSet) error {
	check := func(key, hex string) error {
		if _, err := theme.ParseHex(hex); err != nil {
			return fmt.Errorf("color %s: %w", key, err)
		}
		return nil
	}

	pairs := []struct{ key, hex string }{
		{"background", cs.Background},
		{"foreground", cs.Foreground},
		{"cursor", cs.Cursor},
		{"cursorText", cs.CursorText},
		{"selection", cs.Selection},
		{"selectionText", cs.SelectionText},
	}
	for _, p := range pairs {
		if err := check(p.key, p.hex); err != nil {
			return err
		}
	}
	for i, hex := range cs.ANSI {
		if err := check(theme.AnsiKeys[i], hex); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes data, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
