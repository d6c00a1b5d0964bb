package draftstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ankitsaini000/rwew-sub002/internal/cache"
)

type payload struct {
	Title string `json:"title"`
}

func TestDraftRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := New(cache.NewMemoryCache(), Config{})

	t.Run("set then get returns the draft", func(t *testing.T) {
		require.True(t, store.SetJSON(ctx, "user-1", "personalInfo", payload{Title: "draft"}))

		var got payload
		require.True(t, store.GetJSON(ctx, "user-1", "personalInfo", &got))
		require.Equal(t, "draft", got.Title)
	})

	t.Run("missing draft leaves target untouched", func(t *testing.T) {
		got := payload{Title: "unchanged"}
		require.False(t, store.GetJSON(ctx, "user-1", "pricing", &got))
		require.Equal(t, "unchanged", got.Title)
	})

	t.Run("drafts are namespaced per user", func(t *testing.T) {
		var got payload
		require.False(t, store.GetJSON(ctx, "user-2", "personalInfo", &got))
	})
}

func TestCorruptDraftIsDropped(t *testing.T) {
	ctx := context.Background()
	backend := cache.NewMemoryCache()
	store := New(backend, Config{})

	require.NoError(t, backend.Set(ctx, "drafts:user-1:personalInfo", []byte("{not json"), 0))

	var got payload
	require.False(t, store.GetJSON(ctx, "user-1", "personalInfo", &got))

	// The corrupt payload must not shadow a later write.
	_, err := backend.Get(ctx, "drafts:user-1:personalInfo")
	require.Equal(t, cache.ErrKeyNotFound, err)
}

func TestQuota(t *testing.T) {
	ctx := context.Background()
	store := New(cache.NewMemoryCache(), Config{QuotaBytes: 100, TTL: time.Hour})

	t.Run("writes under budget succeed", func(t *testing.T) {
		require.True(t, store.SetJSON(ctx, "user-1", "a", payload{Title: "ok"}))
	})

	t.Run("write crossing the budget is refused", func(t *testing.T) {
		big := payload{Title: string(make([]byte, 200))}
		require.False(t, store.SetJSON(ctx, "user-1", "b", big))

		var got payload
		require.False(t, store.GetJSON(ctx, "user-1", "b", &got))
	})

	t.Run("refused write does not consume budget", func(t *testing.T) {
		require.False(t, store.OverQuota(ctx, "user-1"))
		require.True(t, store.SetJSON(ctx, "user-1", "c", payload{Title: "ok"}))
	})
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	store := New(cache.NewMemoryCache(), Config{QuotaBytes: 100})

	require.True(t, store.SetJSON(ctx, "user-1", "personalInfo", payload{Title: "draft"}))
	require.True(t, store.SetJSON(ctx, "user-1", "pricing", payload{Title: "draft"}))

	store.Purge(ctx, "user-1")

	var got payload
	require.False(t, store.GetJSON(ctx, "user-1", "personalInfo", &got))
	require.False(t, store.GetJSON(ctx, "user-1", "pricing", &got))

	// Usage counter resets with the purge, so the budget is available again.
	require.False(t, store.OverQuota(ctx, "user-1"))
	require.True(t, store.SetJSON(ctx, "user-1", "personalInfo", payload{Title: "fresh"}))
}
