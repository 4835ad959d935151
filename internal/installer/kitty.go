package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"termtint/internal/theme"
)

const kittyThemeFile = "termtint-theme.conf"

// Kitty overwrites a dedicated theme file whole and prepends an include
// directive to kitty.conf once. Kitty does not reload on its own; the user
// reloads with ctrl+shift+f5 or restarts.
type Kitty struct {
	Source theme.Source
}

func (k Kitty) Name() string { return "Kitty" }

func kittyConfigDir() (string, error) {
	// Kitty reads ~/.config/kitty on macOS too, so XDG resolution covers
	// every platform here.
	if Platform() == PlatformMac {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "kitty"), nil
	}
	return configDir("kitty")
}

func (k Kitty) Install(themeID string) Result {
	name, cs, fail := lookupTheme(k.Source, themeID)
	if fail != nil {
		return *fail
	}
	if err := validateColors(cs); err != nil {
		return failure("", err)
	}

	dir, err := kittyConfigDir()
	if err != nil {
		return failure("", err)
	}
	themePath := filepath.Join(dir, kittyThemeFile)

	if err := writeFile(themePath, []byte(kittyConf(name, cs))); err != nil {
		return failure(themePath, err)
	}

	if err := ensureInclude(filepath.Join(dir, "kitty.conf")); err != nil {
		return failure(themePath, err)
	}

	return success(themePath, fmt.Sprintf("Theme %q written. Reload kitty with ctrl+shift+f5 or restart it.", name))
}

// ensureInclude prepends the theme include directive to kitty.conf unless
// it is already present. The rest of the config is left untouched.
func ensureInclude(confPath string) error {
	include := "include " + kittyThemeFile

	existing, err := os.ReadFile(confPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", confPath, err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == include {
			return nil
		}
	}

	content := include + "\n" + string(existing)
	return writeFile(confPath, []byte(content))
}

func kittyConf(name string, cs theme.ColorSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Theme: %s\n", name)
	fmt.Fprintf(&b, "%s\n\n", generatedMark)

	fmt.Fprintf(&b, "background %s\n", cs.Background)
	fmt.Fprintf(&b, "foreground %s\n", cs.Foreground)
	fmt.Fprintf(&b, "cursor %s\n", cs.Cursor)
	fmt.Fprintf(&b, "cursor_text_color %s\n", cs.CursorText)
	fmt.Fprintf(&b, "selection_background %s\n", cs.Selection)
	fmt.Fprintf(&b, "selection_foreground %s\n", cs.SelectionText)
	b.WriteString("\n")
	for i, hex := range cs.ANSI {
		fmt.Fprintf(&b, "color%d %s\n", i, hex)
	}
	return b.String()
}
