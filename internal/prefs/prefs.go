// Package prefs persists user preferences across sessions in a small
// SQLite key/value table. The only preference today is the theme.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// Theme values. Dark is the default and is what an empty store means.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const themeKey = "theme"

// Store is the durable preference store.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (and if needed creates) the preference database.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs table: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Theme returns the persisted theme, defaulting to dark when nothing
// (or something unrecognized) is stored.
func (s *Store) Theme(ctx context.Context) string {
	var v string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM prefs WHERE key = ?", themeKey).Scan(&v)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("reading theme preference", "error", err)
		}
		return ThemeDark
	}
	if v != ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme persists the theme. Unrecognized values are coerced to the
// dark default rather than stored.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		themeKey, theme)
	if err != nil {
		return fmt.Errorf("persist theme preference: %w", err)
	}
	return nil
}
