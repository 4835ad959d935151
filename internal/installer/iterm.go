package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"termtint/internal/theme"
)

// ITerm2 writes a dynamic profile file named after the theme slug. iTerm2
// picks up new dynamic profiles without a restart; live-apply additionally
// switches every open session to the new profile.
type ITerm2 struct {
	Source theme.Source
	Apply  bool
}

func (it ITerm2) Name() string { return "iTerm2" }

func (it ITerm2) Install(themeID string) Result {
	name, cs, fail := lookupTheme(it.Source, themeID)
	if fail != nil {
		return *fail
	}

	profile, err := itermProfile(name, cs)
	if err != nil {
		return failure("", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return failure("", err)
	}
	dir := filepath.Join(home, "Library", "Application Support", "iTerm2", "DynamicProfiles")
	path := filepath.Join(dir, Slugify(name)+".json")

	doc := map[string]any{"Profiles": []any{profile}}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return failure(path, err)
	}
	if err := writeFile(path, append(data, '\n')); err != nil {
		return failure(path, err)
	}

	instructions := fmt.Sprintf("Profile %q installed. Select it in iTerm2 under Settings > Profiles.", name)
	if it.Apply && Platform() == PlatformMac {
		if err := runScript(itermApplyScript(name)); err != nil {
			instructions = fmt.Sprintf("Profile %q saved, but open sessions could not be updated. Select the profile manually in iTerm2.", name)
		} else {
			instructions = fmt.Sprintf("Profile %q installed and applied to open sessions.", name)
		}
	}
	return success(path, instructions)
}

// itermProfile renders one dynamic-profile entry with fractional sRGB
// color dictionaries.
func itermProfile(name string, cs theme.ColorSet) (map[string]any, error) {
	p := map[string]any{
		"Name": name,
		"Guid": "termtint-" + Slugify(name),
	}

	set := func(key, hex string) error {
		dict, err := colorDict(hex)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		p[key] = dict
		return nil
	}

	pairs := []struct{ key, hex string }{
		{"Background Color", cs.Background},
		{"Foreground Color", cs.Foreground},
		{"Cursor Color", cs.Cursor},
		{"Cursor Text Color", cs.CursorText},
		{"Selection Color", cs.Selection},
		{"Selected Text Color", cs.SelectionText},
	}
	for _, pair := range pairs {
		if err := set(pair.key, pair.hex); err != nil {
			return nil, err
		}
	}
	for i, hex := range cs.ANSI {
		if err := set(fmt.Sprintf("Ansi %d Color", i), hex); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func colorDict(hex string) (map[string]any, error) {
	f, err := theme.ToFractional(hex)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"Red Component":   f.R,
		"Green Component": f.G,
		"Blue Component":  f.B,
		"Alpha Component": f.A,
		"Color Space":     f.ColorSpace,
	}, nil
}

// itermApplyScript switches every session of every open window to the
// named profile.
func itermApplyScript(name string) string {
	quoted := escapeScript(name)
	return fmt.Sprintf(`tell application "iTerm2"
	repeat with w in windows
		repeat with t in tabs of w
			repeat with s in sessions of t
				tell s to set profile to "%s"
			end repeat
		end repeat
	end repeat
end tell`, quoted)
}
