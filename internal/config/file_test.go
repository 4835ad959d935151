package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"~/themes.db", filepath.Join(home, "themes.db")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExpandHome(tt.input)
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("LoadFile should return false for missing file")
	}
}

func TestLoadFile_Partial(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_DATA_HOME", "")

	dir := filepath.Join(tmp, "termtint")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`default_target = "kitty"`+"\n"), 0644)

	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true for existing file")
	}
	if cfg.DefaultTarget != "kitty" {
		t.Errorf("DefaultTarget = %q, want %q", cfg.DefaultTarget, "kitty")
	}
	// DBPath should remain the default since it wasn't in the file.
	home, _ := os.UserHomeDir()
	if cfg.DBPath != filepath.Join(home, ".local", "share", "termtint", "themes.db") {
		t.Errorf("DBPath changed unexpectedly: %q", cfg.DBPath)
	}
}

func TestLoadFile_Full(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "termtint")
	os.MkdirAll(dir, 0755)
	content := `db_path = "~/themes/store.db"
default_target = "alacritty"
apply = false
`
	os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644)

	cfg := Default()
	exists, err := LoadFile(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true")
	}

	home, _ := os.UserHomeDir()
	if cfg.DBPath != filepath.Join(home, "themes", "store.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.DefaultTarget != "alacritty" {
		t.Errorf("DefaultTarget = %q", cfg.DefaultTarget)
	}
	if cfg.Apply {
		t.Error("Apply should be false")
	}
}

func TestConfigDir_XDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	want := filepath.Join(tmp, "termtint")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}
