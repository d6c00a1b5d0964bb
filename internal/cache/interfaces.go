package cache

import (
	"context"
	"errors"
	"time"
)

// Cache defines the generic cache interface for all cache implementations
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching the given glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Increment atomically increments a numeric value
	Increment(ctx context.Context, key string, delta int64) (int64, error)

	// Close closes the cache connection
	Close() error
}

// Config holds configuration for cache instances
type Config struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
	Prefix  string        `json:"prefix"`
	Backend string        `json:"backend"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// Backend names
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// DefaultConfig returns a memory-backed cache configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		TTL:     1 * time.Hour,
		Prefix:  "mkt:",
		Backend: BackendMemory,
	}
}

// Cache errors
var (
	ErrKeyNotFound           = errors.New("cache: key not found")
	ErrCacheUnavailable      = errors.New("cache: backend unavailable")
	ErrCacheDisabled         = errors.New("cache: disabled")
	ErrSerializationFailed   = errors.New("cache: serialization failed")
	ErrDeserializationFailed = errors.New("cache: deserialization failed")
	ErrNotNumeric            = errors.New("cache: value is not numeric")
)
