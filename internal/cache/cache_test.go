package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitsaini000/rwew-sub002/internal/cache"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		c := cache.NewMemoryCache()

		err := c.Set(ctx, "test", []byte("value"), time.Minute)
		assert.NoError(t, err)

		value, err := c.Get(ctx, "test")
		assert.NoError(t, err)
		assert.Equal(t, []byte("value"), value)

		err = c.Delete(ctx, "test")
		assert.NoError(t, err)

		_, err = c.Get(ctx, "test")
		assert.Equal(t, cache.ErrKeyNotFound, err)
	})

	t.Run("Expiry", func(t *testing.T) {
		c := cache.NewMemoryCache()

		err := c.Set(ctx, "short", []byte("value"), 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, err = c.Get(ctx, "short")
		assert.Equal(t, cache.ErrKeyNotFound, err)
	})

	t.Run("Exists", func(t *testing.T) {
		c := cache.NewMemoryCache()

		ok, err := c.Exists(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, c.Set(ctx, "present", []byte("x"), time.Minute))
		ok, err = c.Exists(ctx, "present")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Increment", func(t *testing.T) {
		c := cache.NewMemoryCache()

		v, err := c.Increment(ctx, "counter", 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), v)

		v, err = c.Increment(ctx, "counter", -2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), v)

		require.NoError(t, c.Set(ctx, "text", []byte("abc"), time.Minute))
		_, err = c.Increment(ctx, "text", 1)
		assert.Equal(t, cache.ErrNotNumeric, err)
	})

	t.Run("DeletePattern", func(t *testing.T) {
		c := cache.NewMemoryCache()

		require.NoError(t, c.Set(ctx, "drafts:user-1:a", []byte("1"), 0))
		require.NoError(t, c.Set(ctx, "drafts:user-1:b", []byte("2"), 0))
		require.NoError(t, c.Set(ctx, "drafts:user-2:a", []byte("3"), 0))

		err := c.DeletePattern(ctx, "drafts:user-1:*")
		assert.NoError(t, err)

		_, err = c.Get(ctx, "drafts:user-1:a")
		assert.Equal(t, cache.ErrKeyNotFound, err)
		_, err = c.Get(ctx, "drafts:user-2:a")
		assert.NoError(t, err)
	})

	t.Run("StoredValueIsCopied", func(t *testing.T) {
		c := cache.NewMemoryCache()

		src := []byte("value")
		require.NoError(t, c.Set(ctx, "copy", src, time.Minute))
		src[0] = 'X'

		got, err := c.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), got)
	})
}

func TestFactory(t *testing.T) {
	t.Run("MemoryBackend", func(t *testing.T) {
		c, err := cache.New(&cache.Config{Backend: cache.BackendMemory})
		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.NoError(t, c.Close())
	})

	t.Run("DefaultsToMemory", func(t *testing.T) {
		c, err := cache.New(nil)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("UnsupportedBackend", func(t *testing.T) {
		_, err := cache.New(&cache.Config{Backend: "etcd"})
		assert.Error(t, err)
	})
}

func TestGenericCacheService(t *testing.T) {
	ctx := context.Background()

	type doc struct {
		Name string `json:"name"`
	}

	t.Run("RoundTrip", func(t *testing.T) {
		backend := cache.NewMemoryCache()
		svc := cache.NewGenericCacheService(backend, &cache.Config{Enabled: true, Prefix: "t:", TTL: time.Minute})

		require.NoError(t, svc.CacheData(ctx, "doc", doc{Name: "jane"}))

		var got doc
		require.NoError(t, svc.GetCached(ctx, "doc", &got))
		assert.Equal(t, "jane", got.Name)

		// The prefix is applied to stored keys.
		_, err := backend.Get(ctx, "t:doc")
		assert.NoError(t, err)
	})

	t.Run("MissReturnsKeyNotFound", func(t *testing.T) {
		svc := cache.NewGenericCacheService(cache.NewMemoryCache(), &cache.Config{Enabled: true, TTL: time.Minute})

		var got doc
		err := svc.GetCached(ctx, "missing", &got)
		assert.Equal(t, cache.ErrKeyNotFound, err)
	})

	t.Run("Invalidate", func(t *testing.T) {
		svc := cache.NewGenericCacheService(cache.NewMemoryCache(), &cache.Config{Enabled: true, TTL: time.Minute})

		require.NoError(t, svc.CacheData(ctx, "doc", doc{Name: "jane"}))
		require.NoError(t, svc.Invalidate(ctx, "doc"))

		var got doc
		assert.Equal(t, cache.ErrKeyNotFound, svc.GetCached(ctx, "doc", &got))
	})

	t.Run("DisabledCacheIsInert", func(t *testing.T) {
		svc := cache.NewGenericCacheService(cache.NewMemoryCache(), &cache.Config{Enabled: false, TTL: time.Minute})

		err := svc.CacheData(ctx, "doc", doc{Name: "jane"})
		assert.Equal(t, cache.ErrCacheDisabled, err)

		var got doc
		assert.Equal(t, cache.ErrCacheDisabled, svc.GetCached(ctx, "doc", &got))
	})
}
