// ABOUTME: Package documentation for the infrastructure adapters
// ABOUTME: Lists cache, storage, http and logger implementations

// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, clip storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache built on go-redis
// - storage/memory: Process-local clip and theme storage
// - storage/sqlite: Clip and theme storage in a SQLite file (mattn/go-sqlite3)
// - storage/redis: Clip lists as one JSON document per owner, themes as plain keys
// - http/standard: Standard library HTTP client with retry logic
// - logger/zap, logger/logrus: Structured logger backends
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	redisCache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Storage Implementations
//
//	store, err := sqlite.NewClipStore("clips.db")
//	err = store.Save(ctx, "alice", clipped)
//
// # Error Handling
//
// Cache misses are reported as ErrCacheMiss. Storage implementations wrap
// backend errors with context and never return partial lists.
package infrastructure
