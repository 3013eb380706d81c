// ABOUTME: SQLite-backed clip storage that survives application restarts
// ABOUTME: Rows are keyed by (owner, publisher, id) and ordered by an autoincrement sequence

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS clips (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		owner        TEXT NOT NULL,
		publisher    TEXT NOT NULL,
		id           TEXT NOT NULL,
		title        TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		link         TEXT NOT NULL DEFAULT '',
		thumbnail    TEXT NOT NULL DEFAULT '',
		author       TEXT NOT NULL DEFAULT '',
		published_at TEXT,
		clipped_at   TEXT,
		UNIQUE (owner, publisher, id)
	);
	CREATE INDEX IF NOT EXISTS idx_clips_owner ON clips(owner, seq);

	CREATE TABLE IF NOT EXISTS themes (
		owner      TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
`

const (
	listQuery = `
		SELECT id, publisher, title, description, link, thumbnail, author, published_at, clipped_at
		FROM clips WHERE owner = ? ORDER BY seq`

	upsertQuery = `
		INSERT INTO clips (owner, publisher, id, title, description, link, thumbnail, author, published_at, clipped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner, publisher, id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			link = excluded.link,
			thumbnail = excluded.thumbnail,
			author = excluded.author,
			published_at = excluded.published_at,
			clipped_at = excluded.clipped_at`

	deleteQuery = `DELETE FROM clips WHERE owner = ? AND publisher = ? AND id = ?`
)

// ClipStore implements ClipStorage and ThemeStorage using SQLite
type ClipStore struct {
	db       *sql.DB
	filePath string
	logger   interfaces.Logger
}

// NewClipStore opens (or creates) the database at filePath
func NewClipStore(filePath string) (*ClipStore, error) {
	return NewClipStoreWithLogger(filePath, nil)
}

// NewClipStoreWithLogger opens the database and reports suspicious keys to logger
func NewClipStoreWithLogger(filePath string, logger interfaces.Logger) (*ClipStore, error) {
	if filePath == "" {
		filePath = "clips.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite allows a single writer; one connection avoids "database is locked"
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &ClipStore{
		db:       db,
		filePath: filePath,
		logger:   logger,
	}, nil
}

// List returns the owner's clips in insertion order
func (s *ClipStore) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	if err := ValidateKey("owner", owner, s.logger); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list clips: %w", err)
	}
	defer rows.Close()

	clips := []domain.Clipped{}
	for rows.Next() {
		var (
			clip                   domain.Clipped
			publishedAt, clippedAt sql.NullString
		)
		if err := rows.Scan(&clip.ID, &clip.Publisher, &clip.Title, &clip.Description,
			&clip.Link, &clip.Thumbnail, &clip.Author, &publishedAt, &clippedAt); err != nil {
			return nil, fmt.Errorf("failed to scan clip: %w", err)
		}
		clip.PublishedAt = decodeTime(publishedAt)
		clip.ClippedAt = decodeTime(clippedAt)
		clips = append(clips, clip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clips: %w", err)
	}

	return clips, nil
}

// Save inserts the clip or updates the stored row with the same composite key
func (s *ClipStore) Save(ctx context.Context, owner string, clip domain.Clipped) error {
	for field, value := range map[string]string{"owner": owner, "publisher": clip.Publisher, "id": clip.ID} {
		if err := ValidateKey(field, value, s.logger); err != nil {
			return err
		}
	}

	_, err := s.db.ExecContext(ctx, upsertQuery,
		owner, clip.Publisher, clip.ID, clip.Title, clip.Description, clip.Link,
		clip.Thumbnail, clip.Author, encodeTime(clip.PublishedAt), encodeTime(clip.ClippedAt))
	if err != nil {
		return fmt.Errorf("failed to save clip: %w", err)
	}

	return nil
}

// Delete removes the owner's row with the indicator's composite key
func (s *ClipStore) Delete(ctx context.Context, owner string, indicator domain.ClippedIndicator) error {
	if err := ValidateKey("owner", owner, s.logger); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, deleteQuery, owner, indicator.Publisher, indicator.ID); err != nil {
		return fmt.Errorf("failed to delete clip: %w", err)
	}

	return nil
}

// Count returns the number of stored clips across all owners
func (s *ClipStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM clips").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Close closes the database connection
func (s *ClipStore) Close() error {
	return s.db.Close()
}

func encodeTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func decodeTime(value sql.NullString) *time.Time {
	if !value.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, value.String)
	if err != nil {
		return nil
	}
	return &t
}
