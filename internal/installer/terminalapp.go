package installer

import (
	"fmt"
	"strings"

	"termtint/internal/theme"
)

// TerminalApp manages a Terminal.app settings set entirely through
// AppleScript; there is no file this installer owns. The settings set is
// created if absent, updated in place otherwise, and made the default and
// startup profile. Applying it to already-open windows is best-effort.
type TerminalApp struct {
	Source theme.Source
	Apply  bool
}

func (ta TerminalApp) Name() string { return "Terminal.app" }

func (ta TerminalApp) Install(themeID string) Result {
	name, cs, fail := lookupTheme(ta.Source, themeID)
	if fail != nil {
		return *fail
	}

	script, err := terminalSettingsScript(name, cs)
	if err != nil {
		return failure("", err)
	}
	if err := runScript(script); err != nil {
		return failure("", err)
	}

	instructions := fmt.Sprintf("Settings set %q created and made the default profile.", name)
	if ta.Apply {
		if err := runScript(terminalApplyScript(name)); err != nil {
			instructions = fmt.Sprintf("Settings set %q saved. Apply it to open windows from Terminal > Settings > Profiles.", name)
		} else {
			instructions = fmt.Sprintf("Settings set %q applied to open windows and made the default profile.", name)
		}
	}
	return success("", instructions)
}

// terminalSettingsScript builds the create-or-update script. Terminal's
// scripting dictionary exposes only the base colors of a settings set, not
// the ANSI palette, so only those are pushed.
func terminalSettingsScript(name string, cs theme.ColorSet) (string, error) {
	bg, err := theme.To16Bit(cs.Background)
	if err != nil {
		return "", fmt.Errorf("background: %w", err)
	}
	fg, err := theme.To16Bit(cs.Foreground)
	if err != nil {
		return "", fmt.Errorf("foreground: %w", err)
	}
	cursor, err := theme.To16Bit(cs.Cursor)
	if err != nil {
		return "", fmt.Errorf("cursor: %w", err)
	}
	bold, err := theme.To16Bit(cs.ANSI[15])
	if err != nil {
		return "", fmt.Errorf("ansi_brightWhite: %w", err)
	}

	quoted := escapeScript(name)
	var b strings.Builder
	fmt.Fprintf(&b, "tell application \"Terminal\"\n")
	fmt.Fprintf(&b, "\tif not (exists settings set \"%s\") then\n", quoted)
	fmt.Fprintf(&b, "\t\tmake new settings set with properties {name:\"%s\"}\n", quoted)
	fmt.Fprintf(&b, "\tend if\n")
	fmt.Fprintf(&b, "\ttell settings set \"%s\"\n", quoted)
	fmt.Fprintf(&b, "\t\tset background color to %s\n", asTriple(bg))
	fmt.Fprintf(&b, "\t\tset normal text color to %s\n", asTriple(fg))
	fmt.Fprintf(&b, "\t\tset bold text color to %s\n", asTriple(bold))
	fmt.Fprintf(&b, "\t\tset cursor color to %s\n", asTriple(cursor))
	fmt.Fprintf(&b, "\tend tell\n")
	fmt.Fprintf(&b, "\tset default settings to settings set \"%s\"\n", quoted)
	fmt.Fprintf(&b, "\tset startup settings to settings set \"%s\"\n", quoted)
	fmt.Fprintf(&b, "end tell")
	return b.String(), nil
}

// terminalApplyScript points the selected tab of every open window at the
// named settings set.
func terminalApplyScript(name string) string {
	quoted := escapeScript(name)
	return fmt.Sprintf(`tell application "Terminal"
	repeat with w in windows
		set current settings of selected tab of w to settings set "%s"
	end repeat
end tell`, quoted)
}

func asTriple(c theme.RGB16) string {
	return fmt.Sprintf("{%d, %d, %d}", c.R, c.G, c.B)
}
