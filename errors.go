package imagenedit

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError is returned when a rate limit is hit, either locally or
// by the remote service.
type RateLimitError struct {
	RetryAfter time.Duration
	Model      string
	Err        error // Underlying error from the backend
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s: retry after %v",
		e.Model, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimitError checks if an error is a RateLimitError.
func IsRateLimitError(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

var (
	// ErrNoImages is returned when a response contains no usable images.
	ErrNoImages = errors.New("response contained no images")

	// ErrNoImageData is returned when an image has no bytes to persist.
	ErrNoImageData = errors.New("image has no data")

	// ErrStorageNotConfigured is returned when storage operations are
	// attempted without a configured storage backend.
	ErrStorageNotConfigured = errors.New("storage not configured")
)
