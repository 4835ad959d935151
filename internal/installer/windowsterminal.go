package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"termtint/internal/jsonc"
	"termtint/internal/theme"
)

// WindowsTerminal mutates the existing settings.json in place: the file is
// read through the tolerant JSONC lens, the scheme list is de-duplicated by
// name, the new scheme appended, and the default profile pointed at it.
// The rewrite is plain JSON with 4-space indent; comments do not survive.
// Windows Terminal hot-reloads the file, so there is no live-apply step.
type WindowsTerminal struct {
	Source theme.Source
}

func (wt WindowsTerminal) Name() string { return "Windows Terminal" }

// settingsCandidates lists the known settings.json locations relative to
// the local-app-data root, in the order they are probed: packaged stable,
// packaged preview, unpackaged.
var settingsCandidates = []string{
	filepath.Join("Packages", "Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json"),
	filepath.Join("Packages", "Microsoft.WindowsTerminalPreview_8wekyb3d8bbwe", "LocalState", "settings.json"),
	filepath.Join("Microsoft", "Windows Terminal", "settings.json"),
}

func settingsPath() (string, error) {
	root, err := localAppDataDir()
	if err != nil {
		return "", err
	}
	for _, rel := range settingsCandidates {
		path := filepath.Join(root, rel)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("Windows Terminal settings.json not found under %s", root)
}

func (wt WindowsTerminal) Install(themeID string) Result {
	name, cs, fail := lookupTheme(wt.Source, themeID)
	if fail != nil {
		return *fail
	}
	if err := validateColors(cs); err != nil {
		return failure("", err)
	}

	path, err := settingsPath()
	if err != nil {
		return failure("", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failure(path, fmt.Errorf("read %s: %w", path, err))
	}

	var doc map[string]any
	if err := jsonc.Parse(data, path, &doc); err != nil {
		return failure(path, err)
	}

	scheme := wtScheme(name, cs)

	schemes, _ := doc["schemes"].([]any)
	kept := make([]any, 0, len(schemes)+1)
	for _, s := range schemes {
		if m, ok := s.(map[string]any); ok && m["name"] == name {
			continue
		}
		kept = append(kept, s)
	}
	doc["schemes"] = append(kept, scheme)

	setDefaultScheme(doc, name)

	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return failure(path, err)
	}
	if err := writeFile(path, append(out, '\n')); err != nil {
		return failure(path, err)
	}

	return success(path, fmt.Sprintf("Color scheme %q installed. Windows Terminal reloads settings automatically.", name))
}

// setDefaultScheme points profiles.defaults.colorScheme at the scheme.
// Old settings files store profiles as a bare array; those are wrapped
// into the modern {defaults, list} shape.
func setDefaultScheme(doc map[string]any, name string) {
	switch profiles := doc["profiles"].(type) {
	case map[string]any:
		defaults, _ := profiles["defaults"].(map[string]any)
		if defaults == nil {
			defaults = map[string]any{}
		}
		defaults["colorScheme"] = name
		profiles["defaults"] = defaults
	case []any:
		doc["profiles"] = map[string]any{
			"defaults": map[string]any{"colorScheme": name},
			"list":     profiles,
		}
	default:
		doc["profiles"] = map[string]any{
			"defaults": map[string]any{"colorScheme": name},
		}
	}
}

// wtScheme renders the theme as a Windows Terminal color scheme entry.
// The format names the fifth ANSI color "purple" rather than "magenta".
func wtScheme(name string, cs theme.ColorSet) map[string]any {
	return map[string]any{
		"name":                name,
		"background":          cs.Background,
		"foreground":          cs.Foreground,
		"cursorColor":         cs.Cursor,
		"selectionBackground": cs.Selection,
		"black":               cs.ANSI[0],
		"red":                 cs.ANSI[1],
		"green":               cs.ANSI[2],
		"yellow":              cs.ANSI[3],
		"blue":                cs.ANSI[4],
		"purple":              cs.ANSI[5],
		"cyan":                cs.ANSI[6],
		"white":               cs.ANSI[7],
		"brightBlack":         cs.ANSI[8],
		"brightRed":           cs.ANSI[9],
		"brightGreen":         cs.ANSI[10],
		"brightYellow":        cs.ANSI[11],
		"brightBlue":          cs.ANSI[12],
		"brightPurple":        cs.ANSI[13],
		"brightCyan":          cs.ANSI[14],
		"brightWhite":         cs.ANSI[15],
	}
}
