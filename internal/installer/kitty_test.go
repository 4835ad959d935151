package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKitty_Install(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	res := Kitty{Source: testSource()}.Install("mocha")
	if !res.Success {
		t.Fatalf("install failed: %s", res.Error)
	}

	themePath := filepath.Join(tmp, "kitty", kittyThemeFile)
	if res.Path != themePath {
		t.Errorf("path = %q, want %q", res.Path, themePath)
	}

	data, err := os.ReadFile(themePath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, line := range []string{
		"background #1e1e2e",
		"foreground #cdd6f4",
		"color0 #000000",
		"color15 #ffffff",
	} {
		if !strings.Contains(content, line) {
			t.Errorf("theme file missing %q:\n%s", line, content)
		}
	}

	conf, err := os.ReadFile(filepath.Join(tmp, "kitty", "kitty.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(conf), "include "+kittyThemeFile+"\n") {
		t.Errorf("kitty.conf should start with the include directive:\n%s", conf)
	}
}

func TestKitty_IncludeAddedOnce(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "kitty")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	confPath := filepath.Join(dir, "kitty.conf")
	if err := os.WriteFile(confPath, []byte("font_size 13\n"), 0644); err != nil {
		t.Fatal(err)
	}

	inst := Kitty{Source: testSource()}
	for i := 0; i < 3; i++ {
		if res := inst.Install("mocha"); !res.Success {
			t.Fatalf("install %d failed: %s", i, res.Error)
		}
	}

	conf, err := os.ReadFile(confPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(conf)
	if n := strings.Count(content, "include "+kittyThemeFile); n != 1 {
		t.Errorf("include directive appears %d times, want 1:\n%s", n, content)
	}
	if !strings.Contains(content, "font_size 13") {
		t.Errorf("existing config lost:\n%s", content)
	}
}

func TestKitty_ThemeFileReplacedWhole(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	src := testSource()
	src.colors["nord"] = map[string]string{"background": "#2e3440"}
	src.names["nord"] = "Nord"

	inst := Kitty{Source: src}
	if res := inst.Install("mocha"); !res.Success {
		t.Fatalf("install failed: %s", res.Error)
	}
	res := inst.Install("nord")
	if !res.Success {
		t.Fatalf("install failed: %s", res.Error)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Catppuccin") {
		t.Errorf("theme file should be fully overwritten:\n%s", data)
	}
	if !strings.Contains(string(data), "background #2e3440") {
		t.Errorf("new background missing:\n%s", data)
	}
}
