package ratelimiter

import (
	"context"
	"time"
)

// Limiter defines the interface for request rate limiters.
// Implementations can be local (in-memory) or distributed (Redis, etc.).
type Limiter interface {
	// TryConsume atomically checks capacity and consumes request slots if
	// available. Returns true if consumed, false if insufficient capacity.
	TryConsume(requests int) bool

	// TimeUntilAvailable returns how long until the slots would be
	// available (read-only).
	TimeUntilAvailable(requests int) time.Duration

	// WaitAndConsume waits until slots are available, then consumes them.
	// Returns error if context is cancelled or maxWait is exceeded.
	WaitAndConsume(ctx context.Context, requests int, maxWait time.Duration) error
}
