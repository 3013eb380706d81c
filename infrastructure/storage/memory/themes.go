// ABOUTME: In-memory theme selections kept beside the clip lists
// ABOUTME: Lost on restart like the clips
package memory

import "context"

// LoadTheme returns the owner's theme name
func (s *ClipStore) LoadTheme(ctx context.Context, owner string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	name, ok := s.themes[owner]
	return name, ok, nil
}

// SaveTheme stores the owner's theme name
func (s *ClipStore) SaveTheme(ctx context.Context, owner, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.themes[owner] = name
	return nil
}
