package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"termtint/internal/theme"
)

const generatedMark = "# Generated by termtint"

// Alacritty appends a generated color block to alacritty.toml after
// stripping any color sections and prior generated header from the
// existing content. Everything that is not a color section is preserved
// verbatim, so repeated installs are stable. Alacritty watches its config
// file, so there is no live-apply step.
type Alacritty struct {
	Source theme.Source
}

func (a Alacritty) Name() string { return "Alacritty" }

func alacrittyConfigPath() (string, error) {
	switch Platform() {
	case PlatformWindows:
		root, err := roamingAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, "alacritty", "alacritty.toml"), nil
	case PlatformMac:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "alacritty", "alacritty.toml"), nil
	default:
		dir, err := configDir("alacritty")
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "alacritty.toml"), nil
	}
}

func (a Alacritty) Install(themeID string) Result {
	name, cs, fail := lookupTheme(a.Source, themeID)
	if fail != nil {
		return *fail
	}
	if err := validateColors(cs); err != nil {
		return failure("", err)
	}

	path, err := alacrittyConfigPath()
	if err != nil {
		return failure("", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return failure(path, fmt.Errorf("read %s: %w", path, err))
	}

	kept := stripColorBlock(string(existing))
	block := alacrittyBlock(name, cs)

	var content string
	if kept == "" {
		content = block
	} else {
		content = kept + "\n\n" + block
	}

	if err := writeFile(path, []byte(content)); err != nil {
		return failure(path, err)
	}

	return success(path, fmt.Sprintf("Theme %q written. Alacritty reloads its config automatically.", name))
}

var colorSections = []string{
	"[colors.primary]",
	"[colors.cursor]",
	"[colors.selection]",
	"[colors.normal]",
	"[colors.bright]",
}

func isColorSection(header string) bool {
	for _, s := range colorSections {
		if header == s {
			return true
		}
	}
	return false
}

// stripColorBlock removes the generated comment header and every color
// section from existing config content, keeping all other lines verbatim.
// A color section runs from its header to the next non-color section
// header or end of file.
func stripColorBlock(content string) string {
	if content == "" {
		return ""
	}

	var kept []string
	skipping := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[") {
			skipping = isColorSection(trimmed)
			if skipping {
				continue
			}
		}
		if skipping {
			continue
		}
		if strings.HasPrefix(trimmed, "# Theme: ") || trimmed == generatedMark {
			continue
		}
		kept = append(kept, line)
	}

	// Drop trailing blank lines left behind by the removed block.
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}
	return strings.Join(kept, "\n")
}

func alacrittyBlock(name string, cs theme.ColorSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Theme: %s\n", name)
	fmt.Fprintf(&b, "%s\n", generatedMark)

	b.WriteString("[colors.primary]\n")
	fmt.Fprintf(&b, "background = %q\n", cs.Background)
	fmt.Fprintf(&b, "foreground = %q\n", cs.Foreground)

	b.WriteString("\n[colors.cursor]\n")
	fmt.Fprintf(&b, "text = %q\n", cs.CursorText)
	fmt.Fprintf(&b, "cursor = %q\n", cs.Cursor)

	b.WriteString("\n[colors.selection]\n")
	fmt.Fprintf(&b, "text = %q\n", cs.SelectionText)
	fmt.Fprintf(&b, "background = %q\n", cs.Selection)

	names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	b.WriteString("\n[colors.normal]\n")
	for i, n := range names {
		fmt.Fprintf(&b, "%s = %q\n", n, cs.ANSI[i])
	}
	b.WriteString("\n[colors.bright]\n")
	for i, n := range names {
		fmt.Fprintf(&b, "%s = %q\n", n, cs.ANSI[i+8])
	}

	return b.String()
}
