package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

// GenericCacheService provides a JSON caching layer shared by all modules
type GenericCacheService struct {
	cache  Cache
	config *Config
}

// NewGenericCacheService creates a new generic cache service
func NewGenericCacheService(cache Cache, config *Config) *GenericCacheService {
	if config == nil {
		config = DefaultConfig()
	}
	return &GenericCacheService{
		cache:  cache,
		config: config,
	}
}

// IsEnabled reports whether caching is active
func (gcs *GenericCacheService) IsEnabled() bool {
	return gcs.config.Enabled && gcs.cache != nil
}

// Backend exposes the underlying cache for layers that need raw access
func (gcs *GenericCacheService) Backend() Cache {
	return gcs.cache
}

// GetCached retrieves and unmarshals cached data into the target interface
func (gcs *GenericCacheService) GetCached(ctx context.Context, key string, target interface{}) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(key)

	data, err := gcs.cache.Get(ctx, fullKey)
	if err != nil {
		if err != ErrKeyNotFound {
			log.Error("Cache get error for key %s: %v", fullKey, err)
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Error("Cache data unmarshal error for key %s: %v", fullKey, err)
		return fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}
	return nil
}

// CacheData marshals and stores data in cache with TTL
func (gcs *GenericCacheService) CacheData(ctx context.Context, key string, data interface{}, ttl ...time.Duration) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	cacheTTL := gcs.config.TTL
	if len(ttl) > 0 && ttl[0] > 0 {
		cacheTTL = ttl[0]
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error("Cache data marshal error for key %s: %v", key, err)
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	fullKey := gcs.buildKey(key)
	if err := gcs.cache.Set(ctx, fullKey, jsonData, cacheTTL); err != nil {
		log.Error("Cache set error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// Invalidate removes a single cached entry
func (gcs *GenericCacheService) Invalidate(ctx context.Context, key string) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}
	return gcs.cache.Delete(ctx, gcs.buildKey(key))
}

// InvalidatePattern removes all cached entries matching the glob pattern
func (gcs *GenericCacheService) InvalidatePattern(ctx context.Context, pattern string) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}
	return gcs.cache.DeletePattern(ctx, gcs.buildKey(pattern))
}

func (gcs *GenericCacheService) buildKey(key string) string {
	return gcs.config.Prefix + key
}
