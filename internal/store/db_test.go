package store

import "testing"

func TestOpenMemory(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if err := db.UpsertTheme("mocha", "Catppuccin Mocha"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetColor("mocha", "background", "#1e1e2e"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetColor("mocha", "foreground", "#cdd6f4"); err != nil {
		t.Fatal(err)
	}

	colors, err := db.ThemeColors("mocha")
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}
	if colors["background"] != "#1e1e2e" {
		t.Errorf("background = %q", colors["background"])
	}

	name, err := db.ThemeName("mocha")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Catppuccin Mocha" {
		t.Errorf("name = %q", name)
	}
}

func TestSetColor_LastWriteWins(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	db.UpsertTheme("x", "X")
	db.SetColor("x", "background", "#000000")
	db.SetColor("x", "background", "#111111")

	colors, err := db.ThemeColors("x")
	if err != nil {
		t.Fatal(err)
	}
	if colors["background"] != "#111111" {
		t.Errorf("background = %q, want #111111", colors["background"])
	}
}

func TestThemeName_Missing(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	name, err := db.ThemeName("nope")
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
}

func TestListThemes(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	db.UpsertTheme("b", "Beta")
	db.UpsertTheme("a", "Alpha")

	themes, err := db.ListThemes()
	if err != nil {
		t.Fatal(err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}
	if themes[0].Name != "Alpha" || themes[1].Name != "Beta" {
		t.Errorf("unexpected order: %v", themes)
	}
}

func TestDeleteTheme_Cascades(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	db.UpsertTheme("x", "X")
	db.SetColor("x", "background", "#000000")

	if err := db.DeleteTheme("x"); err != nil {
		t.Fatal(err)
	}

	colors, err := db.ThemeColors("x")
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 0 {
		t.Errorf("expected no colors after delete, got %d", len(colors))
	}
}
