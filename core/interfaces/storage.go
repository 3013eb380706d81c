// ABOUTME: Storage interfaces for persisting clipped articles and theme selections
// ABOUTME: Per-owner contracts implemented by the memory, SQLite and Redis backends

package interfaces

import (
	"context"

	"clipper-app-api/core/domain"
)

// ClipStorage persists each owner's clip list
type ClipStorage interface {
	// List returns the owner's clips in insertion order. An unknown owner has no clips.
	List(ctx context.Context, owner string) ([]domain.Clipped, error)

	// Save appends a clip to the owner's list. A clip whose composite key is
	// already stored replaces the stored copy in place.
	Save(ctx context.Context, owner string, clip domain.Clipped) error

	// Delete removes every clip of the owner matching the indicator's composite key
	Delete(ctx context.Context, owner string, indicator domain.ClippedIndicator) error
}

// ThemeStorage persists the theme each owner selected
type ThemeStorage interface {
	// LoadTheme returns the owner's stored theme name; found is false when none was saved
	LoadTheme(ctx context.Context, owner string) (name string, found bool, err error)

	// SaveTheme stores or replaces the owner's theme name
	SaveTheme(ctx context.Context, owner, name string) error
}

// Storage is a backend that keeps both clip lists and theme selections
type Storage interface {
	ClipStorage
	ThemeStorage
}
