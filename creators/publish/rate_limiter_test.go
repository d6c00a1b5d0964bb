package publish

import (
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterPerSession(t *testing.T) {
	rl := NewRateLimiter(100, 3, time.Minute)
	userID := uuid.Must(uuid.NewV4())

	for i := 0; i < 3; i++ {
		require.NoError(t, rl.IsAllowed("10.0.0.1", userID))
		rl.RecordAttempt("10.0.0.1", userID)
	}

	require.Error(t, rl.IsAllowed("10.0.0.1", userID))

	// another session from the same IP is still fine
	require.NoError(t, rl.IsAllowed("10.0.0.1", uuid.Must(uuid.NewV4())))
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(2, 100, time.Minute)
	userID := uuid.Must(uuid.NewV4())

	rl.RecordAttempt("10.0.0.9", userID)
	rl.RecordAttempt("10.0.0.9", uuid.Must(uuid.NewV4()))

	require.Error(t, rl.IsAllowed("10.0.0.9", userID))
	require.NoError(t, rl.IsAllowed("10.0.0.10", userID))
}

func TestRateLimiterReset(t *testing.T) {
	rl := NewRateLimiter(100, 1, time.Minute)
	userID := uuid.Must(uuid.NewV4())

	rl.RecordAttempt("10.0.0.1", userID)
	require.Error(t, rl.IsAllowed("10.0.0.1", userID))

	rl.Reset(userID)
	require.NoError(t, rl.IsAllowed("10.0.0.1", userID))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 100, 10*time.Millisecond)
	userID := uuid.Must(uuid.NewV4())

	rl.RecordAttempt("10.0.0.1", userID)
	require.Error(t, rl.IsAllowed("10.0.0.1", userID))

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, rl.IsAllowed("10.0.0.1", userID))
}
