// ABOUTME: SQLite theme selections, one row per owner
// ABOUTME: Saving an owner's theme again replaces the row
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	loadThemeQuery = `SELECT name FROM themes WHERE owner = ?`

	saveThemeQuery = `
		INSERT INTO themes (owner, name, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (owner) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at`
)

// LoadTheme returns the owner's theme name
func (s *ClipStore) LoadTheme(ctx context.Context, owner string) (string, bool, error) {
	if err := ValidateKey("owner", owner, s.logger); err != nil {
		return "", false, err
	}

	var name string
	err := s.db.QueryRowContext(ctx, loadThemeQuery, owner).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load theme: %w", err)
	}
	return name, true, nil
}

// SaveTheme stores or replaces the owner's theme name
func (s *ClipStore) SaveTheme(ctx context.Context, owner, name string) error {
	if err := ValidateKey("owner", owner, s.logger); err != nil {
		return err
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx, saveThemeQuery, owner, name, updatedAt); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
