package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ankitsaini000/rwew-sub002/internal/cache"
	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

// Store persists per-user draft payloads so an interrupted onboarding session
// can resume, and serves as the read fallback when the primary store is
// unreachable. Drafts are best-effort: every operation degrades to a no-op or
// a default value instead of returning an error to the caller.
type Store struct {
	backend    cache.Cache
	quotaBytes int64
	ttl        time.Duration
}

// Config bounds the draft store
type Config struct {
	// QuotaBytes is the approximate per-user budget for draft payloads.
	QuotaBytes int64
	// TTL controls how long an untouched draft survives.
	TTL time.Duration
}

// New creates a draft store over the given cache backend
func New(backend cache.Cache, cfg Config) *Store {
	if cfg.QuotaBytes <= 0 {
		cfg.QuotaBytes = 5 * 1024 * 1024
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	return &Store{
		backend:    backend,
		quotaBytes: cfg.QuotaBytes,
		ttl:        cfg.TTL,
	}
}

func draftKey(userID, section string) string {
	return fmt.Sprintf("drafts:%s:%s", userID, section)
}

func usageKey(userID string) string {
	return fmt.Sprintf("drafts:%s:usage", userID)
}

// GetJSON reads the draft stored under (userID, section) into target.
// Returns true when a draft was found and decoded. A missing key or a corrupt
// payload leaves target untouched and returns false; corrupt payloads are
// deleted so they cannot shadow later writes.
func (s *Store) GetJSON(ctx context.Context, userID, section string, target interface{}) bool {
	key := draftKey(userID, section)

	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if err != cache.ErrKeyNotFound {
			log.Error("draftstore: get %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Warn("draftstore: corrupt draft at %s, dropping: %v", key, err)
		if delErr := s.backend.Delete(ctx, key); delErr != nil {
			log.Error("draftstore: delete corrupt %s failed: %v", key, delErr)
		}
		return false
	}
	return true
}

// SetJSON stores v as the draft for (userID, section). Returns false when the
// payload cannot be serialized, the user is over quota, or the backend write
// fails. Failures are logged, never propagated.
func (s *Store) SetJSON(ctx context.Context, userID, section string, v interface{}) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("draftstore: marshal draft %s/%s failed: %v", userID, section, err)
		return false
	}

	key := draftKey(userID, section)
	size := int64(len(key) + len(data))

	if !s.reserve(ctx, userID, key, size) {
		return false
	}

	if err := s.backend.Set(ctx, key, data, s.ttl); err != nil {
		log.Error("draftstore: set %s failed: %v", key, err)
		// Release the reservation so a failed write does not leak usage.
		if _, incErr := s.backend.Increment(ctx, usageKey(userID), -size); incErr != nil {
			log.Error("draftstore: usage rollback for %s failed: %v", userID, incErr)
		}
		return false
	}
	return true
}

// OverQuota reports whether the user's draft usage has crossed the budget.
// Callers use this to surface a user-facing storage warning before data loss.
func (s *Store) OverQuota(ctx context.Context, userID string) bool {
	used, err := s.backend.Increment(ctx, usageKey(userID), 0)
	if err != nil {
		return false
	}
	return used >= s.quotaBytes
}

// Purge removes every draft belonging to the user, including the usage
// counter. This backs the reset-profile operation.
func (s *Store) Purge(ctx context.Context, userID string) {
	pattern := fmt.Sprintf("drafts:%s:*", userID)
	if err := s.backend.DeletePattern(ctx, pattern); err != nil {
		log.Error("draftstore: purge %s failed: %v", userID, err)
	}
}

// reserve accounts the new payload size against the user's budget. The
// accounting is approximate: replacing an existing draft double-counts until
// TTL expiry, which errs on the safe side of the quota.
func (s *Store) reserve(ctx context.Context, userID, key string, size int64) bool {
	used, err := s.backend.Increment(ctx, usageKey(userID), size)
	if err != nil {
		log.Error("draftstore: usage tracking for %s failed: %v", userID, err)
		// Accounting failure should not block the write path.
		return true
	}

	if used > s.quotaBytes {
		if _, incErr := s.backend.Increment(ctx, usageKey(userID), -size); incErr != nil {
			log.Error("draftstore: usage rollback for %s failed: %v", userID, incErr)
		}
		log.Warn("draftstore: quota exceeded for %s (used=%d budget=%d)", userID, used, s.quotaBytes)
		return false
	}
	return true
}
