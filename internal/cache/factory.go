package cache

import (
	"fmt"

	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
)

// FromPlatformConfig builds a cache Config from the platform configuration
func FromPlatformConfig(cfg platformconfig.CacheConfig) *Config {
	return &Config{
		Enabled: cfg.Enabled,
		TTL:     cfg.TTL,
		Prefix:  cfg.Prefix,
		Backend: cfg.Backend,
		Redis: RedisConfig{
			Address:      cfg.Redis.Address,
			Password:     cfg.Redis.Password,
			Database:     cfg.Redis.Database,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxConnAge:   cfg.Redis.MaxConnAge,
		},
	}
}

// New creates a cache backend from config
func New(config *Config) (Cache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Backend {
	case BackendMemory, "":
		return NewMemoryCache(), nil
	case BackendRedis:
		return NewRedisCache(config)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", config.Backend)
	}
}
