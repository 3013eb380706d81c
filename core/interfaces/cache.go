// ABOUTME: Cache contract for search result pages
// ABOUTME: Implemented by go-cache and Redis

// Package interfaces defines the contracts the core services depend on.
// Adapters in infrastructure/ implement them so services can be tested with mocks.
package interfaces

import (
	"context"
	"time"
)

// Cache stores opaque byte values such as search result pages.
// Implementations are go-cache (in-process) or Redis.
//
// Example usage:
//
//	// Keep a search page for five minutes
//	err := cache.Set(ctx, "search:golang", payload, 5*time.Minute)
//
//	// Read it back
//	data, err := cache.Get(ctx, "search:golang")
//	if err != nil {
//		// cache miss
//	}
type Cache interface {
	// Get retrieves a value by key. A missing or expired key is an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A ttl of 0 stores the value indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
