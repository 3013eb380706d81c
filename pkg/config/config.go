// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, search, rate limiting and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains clip storage configuration
	Storage StorageConfig

	// Search contains article search configuration
	Search SearchConfig

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration
}

// StorageConfig holds clip storage configuration
type StorageConfig struct {
	// Type specifies the storage backend (memory/sqlite/redis)
	Type string

	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string

	// Redis is used by the redis backend; shares the cache connection settings
	Redis RedisConfig
}

// SearchConfig holds article search configuration
type SearchConfig struct {
	// ProviderURL is an RSS search URL template, %s is replaced with the escaped query
	ProviderURL string

	// CacheTTL is how long fetched results are cached
	CacheTTL time.Duration
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int

	// Window is the period the request budget refills over
	Window time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Backend selects the logger implementation (zap/logrus)
	Backend string

	// Level is one of debug, info, warn, error
	Level string

	// File is an optional path for rotated log output
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	redis := RedisConfig{
		Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
		Password: getEnvOrDefault("REDIS_PASSWORD", ""),
		DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ShutdownTimeout: getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Type:  strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: redis,
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsDurationOrDefault("MEMORY_CACHE_CLEANUP", 10*time.Minute),
			},
		},
		Storage: StorageConfig{
			Type:       strings.ToLower(getEnvOrDefault("STORAGE_TYPE", "memory")),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "clips.db"),
			Redis:      redis,
		},
		Search: SearchConfig{
			ProviderURL: getEnvOrDefault("SEARCH_PROVIDER_URL", "https://news.google.com/rss/search?q=%s"),
			CacheTTL:    getEnvAsDurationOrDefault("SEARCH_CACHE_TTL", 15*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window:   getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Backend: strings.ToLower(getEnvOrDefault("LOG_BACKEND", "zap")),
			Level:   strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go duration strings ("90s") or whole seconds ("90")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	switch c.Storage.Type {
	case "memory":
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite storage")
		}
	case "redis":
		if c.Storage.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis storage")
		}
	default:
		return errors.New("storage type must be 'memory', 'sqlite' or 'redis'")
	}

	if !strings.Contains(c.Search.ProviderURL, "%s") {
		return errors.New("search provider url must contain a %s placeholder for the query")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit must allow at least 1 request")
	}

	if c.RateLimit.Window <= 0 {
		return errors.New("rate window must be positive")
	}

	if c.Log.Backend != "zap" && c.Log.Backend != "logrus" {
		return errors.New("log backend must be 'zap' or 'logrus'")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	return nil
}
