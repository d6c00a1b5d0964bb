package publish

import (
	"fmt"
	"sync"
	"time"

	uuid "github.com/gofrs/uuid"
)

// RateLimiter bounds verification attempts per remote IP and per session.
type RateLimiter struct {
	mu                    sync.Mutex
	ipAttempts            map[string][]time.Time
	sessionAttempts       map[uuid.UUID]int
	maxAttemptsPerIP      int
	maxAttemptsPerSession int
	timeWindow            time.Duration
	cleanupInterval       time.Duration
	lastCleanup           time.Time
}

// NewRateLimiter creates a rate limiter with the specified limits
func NewRateLimiter(maxAttemptsPerIP, maxAttemptsPerSession int, timeWindow time.Duration) *RateLimiter {
	return &RateLimiter{
		ipAttempts:            make(map[string][]time.Time),
		sessionAttempts:       make(map[uuid.UUID]int),
		maxAttemptsPerIP:      maxAttemptsPerIP,
		maxAttemptsPerSession: maxAttemptsPerSession,
		timeWindow:            timeWindow,
		cleanupInterval:       timeWindow / 2,
		lastCleanup:           time.Now(),
	}
}

// DefaultRateLimiter creates a rate limiter with secure default settings
func DefaultRateLimiter() *RateLimiter {
	return NewRateLimiter(10, 5, 15*time.Minute)
}

// IsAllowed checks whether another verification attempt is permitted for the
// given IP and session owner.
func (rl *RateLimiter) IsAllowed(remoteIP string, userID uuid.UUID) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) > rl.cleanupInterval {
		rl.cleanup()
	}

	cutoff := time.Now().Add(-rl.timeWindow)
	recent := 0
	for _, attempt := range rl.ipAttempts[remoteIP] {
		if attempt.After(cutoff) {
			recent++
		}
	}
	if recent >= rl.maxAttemptsPerIP {
		return fmt.Errorf("rate limit exceeded: %d/%d attempts from %s in %v",
			recent, rl.maxAttemptsPerIP, remoteIP, rl.timeWindow)
	}

	if attempts := rl.sessionAttempts[userID]; attempts >= rl.maxAttemptsPerSession {
		return fmt.Errorf("attempt limit exceeded: %d/%d attempts for session %s",
			attempts, rl.maxAttemptsPerSession, userID)
	}

	return nil
}

// RecordAttempt records a failed verification attempt
func (rl *RateLimiter) RecordAttempt(remoteIP string, userID uuid.UUID) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.ipAttempts[remoteIP] = append(rl.ipAttempts[remoteIP], time.Now())
	rl.sessionAttempts[userID]++
}

// Reset clears the per-session counter after a successful verification
func (rl *RateLimiter) Reset(userID uuid.UUID) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.sessionAttempts, userID)
}

func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.timeWindow)

	for ip, attempts := range rl.ipAttempts {
		valid := attempts[:0]
		for _, attempt := range attempts {
			if attempt.After(cutoff) {
				valid = append(valid, attempt)
			}
		}
		if len(valid) == 0 {
			delete(rl.ipAttempts, ip)
		} else {
			rl.ipAttempts[ip] = valid
		}
	}

	rl.lastCleanup = time.Now()
}
