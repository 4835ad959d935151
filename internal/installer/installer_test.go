package installer

import (
	"errors"
	"strings"
	"testing"

	"termtint/internal/theme"
)

// fakeSource serves themes from maps, standing in for the SQLite store.
type fakeSource struct {
	colors map[string]map[string]string
	names  map[string]string
}

func (f *fakeSource) ThemeColors(id string) (map[string]string, error) {
	return f.colors[id], nil
}

func (f *fakeSource) ThemeName(id string) (string, error) {
	return f.names[id], nil
}

func testSource() *fakeSource {
	return &fakeSource{
		colors: map[string]map[string]string{
			"mocha": {
				"background": "#1e1e2e",
				"foreground": "#cdd6f4",
			},
			"broken": {
				"background": "not-a-color",
			},
		},
		names: map[string]string{"mocha": "Catppuccin Mocha"},
	}
}

// stubScript replaces the osascript bridge for the duration of a test and
// records the scripts it receives.
func stubScript(t *testing.T, err error) *[]string {
	t.Helper()
	var scripts []string
	orig := runScript
	runScript = func(script string) error {
		scripts = append(scripts, script)
		return err
	}
	t.Cleanup(func() { runScript = orig })
	return &scripts
}

func TestInstall_ThemeNotFound(t *testing.T) {
	stubScript(t, nil)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("LOCALAPPDATA", t.TempDir())

	for _, inst := range All(testSource(), true) {
		res := inst.Install("no-such-theme")
		if res.Success {
			t.Errorf("%s: expected failure", inst.Name())
		}
		if res.Error != "Theme not found" {
			t.Errorf("%s: error = %q, want %q", inst.Name(), res.Error, "Theme not found")
		}
		if res.Path != "" {
			t.Errorf("%s: path = %q, want empty", inst.Name(), res.Path)
		}
	}
}

func TestForTarget_Unknown(t *testing.T) {
	_, err := ForTarget("emacs", testSource(), false)
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
}

func TestTerminalApp_ScriptFailureIsFailure(t *testing.T) {
	stubScript(t, errors.New("osascript exploded"))

	res := TerminalApp{Source: testSource(), Apply: true}.Install("mocha")
	if res.Success {
		t.Fatal("settings-set creation failure must fail the install")
	}
	if res.Error == "" {
		t.Fatal("expected an error message")
	}
}

func TestTerminalApp_Success(t *testing.T) {
	scripts := stubScript(t, nil)

	res := TerminalApp{Source: testSource(), Apply: true}.Install("mocha")
	if !res.Success {
		t.Fatalf("install failed: %s", res.Error)
	}
	if res.Path != "" {
		t.Errorf("path = %q, want empty (no file owned)", res.Path)
	}
	if len(*scripts) != 2 {
		t.Fatalf("expected settings script + apply script, got %d calls", len(*scripts))
	}
}

func TestTerminalApp_QuotedNameEscaped(t *testing.T) {
	scripts := stubScript(t, nil)

	src := testSource()
	src.colors[`q`] = map[string]string{"background": "#000000"}
	src.names[`q`] = `The "Best" Theme`

	res := TerminalApp{Source: src, Apply: false}.Install("q")
	if !res.Success {
		t.Fatalf("install failed: %s", res.Error)
	}
	for _, s := range *scripts {
		if strings.Contains(s, `"The "Best" Theme"`) {
			t.Errorf("unescaped quote reached the script:\n%s", s)
		}
		if !strings.Contains(s, `The \"Best\" Theme`) {
			t.Errorf("escaped name missing from script:\n%s", s)
		}
	}
}

func TestValidateColors_MalformedHex(t *testing.T) {
	cs := theme.Resolve(map[string]string{"background": "#abc"})
	if err := validateColors(cs); err == nil {
		t.Fatal("expected error for shorthand hex")
	}
}
