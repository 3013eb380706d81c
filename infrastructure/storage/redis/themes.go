// ABOUTME: Redis theme selections stored as plain strings under themes:<owner>
// ABOUTME: Keys never expire
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const themeKeyPrefix = "themes:"

// LoadTheme returns the owner's theme name
func (s *ClipStore) LoadTheme(ctx context.Context, owner string) (string, bool, error) {
	name, err := s.client.Get(ctx, themeKeyPrefix+owner).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load theme: %w", err)
	}
	return name, true, nil
}

// SaveTheme stores the owner's theme name without expiry
func (s *ClipStore) SaveTheme(ctx context.Context, owner, name string) error {
	if err := s.client.Set(ctx, themeKeyPrefix+owner, name, 0).Err(); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
