package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimiter enforces a requests-per-minute quota with a token bucket.
type RateLimiter struct {
	bucket *tokenBucket
}

// Ensure RateLimiter implements Limiter.
var _ Limiter = (*RateLimiter)(nil)

// New initializes a rate limiter allowing requestsPerMinute requests.
func New(requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		bucket: newTokenBucket(requestsPerMinute, requestsPerMinute, time.Minute),
	}
}

// HasCapacity checks if request slots are available WITHOUT consuming them.
func (rl *RateLimiter) HasCapacity(requests int) bool {
	return rl.bucket.hasCapacity(requests)
}

// TryConsume atomically checks capacity and consumes slots if available.
func (rl *RateLimiter) TryConsume(requests int) bool {
	return rl.bucket.consume(requests)
}

// TimeUntilAvailable returns how long until the requested slots would be
// available. This does not modify state.
func (rl *RateLimiter) TimeUntilAvailable(requests int) time.Duration {
	return rl.bucket.timeUntilAvailable(requests)
}

// WaitAndConsume waits until slots are available (up to maxWait), then
// consumes them. If maxWait is 0, there is no limit on how long to wait.
// Returns an error if the context is cancelled or maxWait is exceeded.
func (rl *RateLimiter) WaitAndConsume(ctx context.Context, requests int, maxWait time.Duration) error {
	waitDuration := rl.TimeUntilAvailable(requests)

	if waitDuration > 0 {
		if maxWait > 0 && waitDuration > maxWait {
			return fmt.Errorf("rate limit wait time %v exceeds max wait %v", waitDuration, maxWait)
		}

		timer := time.NewTimer(waitDuration)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if !rl.TryConsume(requests) {
		// Shouldn't happen normally, but handle the race with other callers.
		return fmt.Errorf("failed to acquire request slots after waiting")
	}

	return nil
}

// tokenBucket implements a token bucket rate limit algorithm.
type tokenBucket struct {
	mu             sync.Mutex
	capacity       int
	remaining      int
	refillInterval time.Duration
	lastRefill     time.Time
}

func newTokenBucket(capacity int, initial int, refillInterval time.Duration) *tokenBucket {
	return &tokenBucket{
		capacity:       capacity,
		remaining:      initial,
		refillInterval: refillInterval,
		lastRefill:     time.Now(),
	}
}

func (tb *tokenBucket) hasCapacity(n int) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	remaining := tb.remaining
	if time.Since(tb.lastRefill) >= tb.refillInterval {
		remaining = tb.capacity
	}
	return n <= remaining
}

func (tb *tokenBucket) consume(n int) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := time.Now()
	if now.Sub(tb.lastRefill) >= tb.refillInterval {
		tb.remaining = tb.capacity
		tb.lastRefill = now
	}
	if n <= tb.remaining {
		tb.remaining -= n
		return true
	}
	return false
}

// timeUntilAvailable accounts for partial refills based on elapsed time and
// adds a small buffer to ensure sufficient slots on wake.
func (tb *tokenBucket) timeUntilAvailable(n int) time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	elapsed := time.Since(tb.lastRefill)

	effectiveRemaining := tb.remaining
	if elapsed >= tb.refillInterval {
		effectiveRemaining = tb.capacity
	} else if elapsed > 0 {
		replenished := int(float64(tb.capacity) * (float64(elapsed) / float64(tb.refillInterval)))
		effectiveRemaining = min(tb.capacity, tb.remaining+replenished)
	}

	if n <= effectiveRemaining {
		return 0
	}

	needed := n - effectiveRemaining
	refillRate := float64(tb.capacity) / float64(tb.refillInterval)
	waitDuration := time.Duration(float64(needed) / refillRate)

	return waitDuration + (waitDuration / 10)
}
