// ABOUTME: Redis-backed clip storage shared between API instances
// ABOUTME: Each owner's clip list is one JSON document updated with optimistic transactions

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"clipper-app-api/core/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "clips:"
	maxRetries = 5
)

// ErrConflict is returned when concurrent writers keep invalidating a transaction
var ErrConflict = errors.New("clip list changed concurrently, retries exhausted")

// ClipStore implements ClipStorage and ThemeStorage on Redis
type ClipStore struct {
	client *redis.Client
}

// NewClipStore wraps an established client
func NewClipStore(client *redis.Client) *ClipStore {
	return &ClipStore{client: client}
}

// List returns the owner's clips in insertion order
func (s *ClipStore) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	return load(ctx, s.client, owner)
}

// Save appends the clip, or replaces a stored clip with the same composite key
func (s *ClipStore) Save(ctx context.Context, owner string, clip domain.Clipped) error {
	return s.update(ctx, owner, func(clips []domain.Clipped) []domain.Clipped {
		key := clip.Indicator()
		for i, existing := range clips {
			if existing.Indicator() == key {
				clips[i] = clip
				return clips
			}
		}
		return append(clips, clip)
	})
}

// Delete removes every clip of the owner with the indicator's composite key
func (s *ClipStore) Delete(ctx context.Context, owner string, indicator domain.ClippedIndicator) error {
	return s.update(ctx, owner, func(clips []domain.Clipped) []domain.Clipped {
		kept := clips[:0]
		for _, clip := range clips {
			if clip.Indicator() != indicator {
				kept = append(kept, clip)
			}
		}
		return kept
	})
}

// Close closes the Redis connection
func (s *ClipStore) Close() error {
	return s.client.Close()
}

// update applies mutate to the stored list inside a WATCH transaction
func (s *ClipStore) update(ctx context.Context, owner string, mutate func([]domain.Clipped) []domain.Clipped) error {
	key := keyPrefix + owner

	txf := func(tx *redis.Tx) error {
		clips, err := load(ctx, tx, owner)
		if err != nil {
			return err
		}

		updated := mutate(clips)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(updated) == 0 {
				pipe.Del(ctx, key)
				return nil
			}
			data, err := json.Marshal(updated)
			if err != nil {
				return fmt.Errorf("failed to encode clips: %w", err)
			}
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return ErrConflict
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// load reads and decodes the owner's list; a missing key is an empty list
func load(ctx context.Context, cmd getter, owner string) ([]domain.Clipped, error) {
	data, err := cmd.Get(ctx, keyPrefix+owner).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Clipped{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load clips: %w", err)
	}

	clips := []domain.Clipped{}
	if err := json.Unmarshal(data, &clips); err != nil {
		return nil, fmt.Errorf("failed to decode clips: %w", err)
	}
	return clips, nil
}
