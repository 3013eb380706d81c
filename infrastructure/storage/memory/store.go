// ABOUTME: In-memory clip storage for development and tests
// ABOUTME: Keeps clip lists and themes in mutex-guarded maps; contents are lost on restart

package memory

import (
	"context"
	"sync"

	"clipper-app-api/core/domain"
)

// ClipStore implements ClipStorage and ThemeStorage in process memory
type ClipStore struct {
	mu     sync.RWMutex
	clips  map[string][]domain.Clipped
	themes map[string]string
}

// NewClipStore creates an empty store
func NewClipStore() *ClipStore {
	return &ClipStore{
		clips:  make(map[string][]domain.Clipped),
		themes: make(map[string]string),
	}
}

// List returns a copy of the owner's clips in insertion order
func (s *ClipStore) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.clips[owner]
	result := make([]domain.Clipped, len(stored))
	copy(result, stored)
	return result, nil
}

// Save appends the clip, or replaces a stored clip with the same composite key
func (s *ClipStore) Save(ctx context.Context, owner string, clip domain.Clipped) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := clip.Indicator()
	for i, existing := range s.clips[owner] {
		if existing.Indicator() == key {
			s.clips[owner][i] = clip
			return nil
		}
	}
	s.clips[owner] = append(s.clips[owner], clip)
	return nil
}

// Delete removes every clip of the owner with the indicator's composite key
func (s *ClipStore) Delete(ctx context.Context, owner string, indicator domain.ClippedIndicator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.clips[owner]
	kept := stored[:0]
	for _, clip := range stored {
		if clip.Indicator() != indicator {
			kept = append(kept, clip)
		}
	}

	if len(kept) == 0 {
		delete(s.clips, owner)
		return nil
	}
	s.clips[owner] = kept
	return nil
}
