package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS themes (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS theme_colors (
    theme_id TEXT NOT NULL REFERENCES themes(id) ON DELETE CASCADE,
    key TEXT NOT NULL,
    value TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (theme_id, key)
);
`

// DB wraps the SQLite database connection holding themes and their colors.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// OpenMemory opens an in-memory database (for testing).
func OpenMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(on)")
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// UpsertTheme inserts or renames a theme.
func (db *DB) UpsertTheme(id, name string) error {
	_, err := db.conn.Exec(`
		INSERT INTO themes (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, id, name)
	return err
}

// SetColor writes one color row for a theme. Last write wins for a key.
func (db *DB) SetColor(themeID, key, value string) error {
	_, err := db.conn.Exec(`
		INSERT INTO theme_colors (theme_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(theme_id, key) DO UPDATE SET value = excluded.value
	`, themeID, key, value)
	return err
}

// ThemeColors returns all color rows for a theme id as a flat key/value map.
// An empty map means the theme has no colors (or does not exist).
func (db *DB) ThemeColors(id string) (map[string]string, error) {
	rows, err := db.conn.Query("SELECT key, value FROM theme_colors WHERE theme_id = ?", id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	colors := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		colors[k] = v
	}
	return colors, rows.Err()
}

// ThemeName returns a theme's display name, or "" when the theme row is
// absent or has no name.
func (db *DB) ThemeName(id string) (string, error) {
	var name string
	err := db.conn.QueryRow("SELECT name FROM themes WHERE id = ?", id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return name, err
}

// ThemeInfo is one row of the theme listing.
type ThemeInfo struct {
	ID   string
	Name string
}

// ListThemes returns every stored theme ordered by display name.
func (db *DB) ListThemes() ([]ThemeInfo, error) {
	rows, err := db.conn.Query("SELECT id, name FROM themes ORDER BY name, id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var themes []ThemeInfo
	for rows.Next() {
		var t ThemeInfo
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, rows.Err()
}

// DeleteTheme removes a theme and all its color rows.
func (db *DB) DeleteTheme(id string) error {
	_, err := db.conn.Exec("DELETE FROM themes WHERE id = ?", id)
	return err
}
