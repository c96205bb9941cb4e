// Package llm - retry.go provides a fixed-attempt retry policy for transport
// failures on external text-completion calls.
package llm

import (
	"context"
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultMaxAttempts is the number of attempts for one external call.
	DefaultMaxAttempts = 3

	minRetryDelay = 1 * time.Second
	maxRetryDelay = 10 * time.Second
	backoffFactor = 2.0
)

// RetryableFunc is one attempt of an external call.
type RetryableFunc func() error

// WithRetry executes fn up to maxAttempts times, sleeping with exponential
// backoff and jitter between attempts. Delays are bounded to [1s, 10s].
// Context cancellation aborts immediately with ctx.Err().
func WithRetry(ctx context.Context, maxAttempts int, fn RetryableFunc) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		if attempt == maxAttempts-1 {
			break
		}

		delay := retryDelay(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// retryDelay computes the backoff delay for the next attempt.
func retryDelay(attempt int) time.Duration {
	delay := time.Duration(float64(minRetryDelay) * math.Pow(backoffFactor, float64(attempt)))
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}

	// Up to 10% jitter to avoid synchronized retries
	jitter := time.Duration(rand.Int63n(int64(delay / 10)))
	delay += jitter
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	if delay < minRetryDelay {
		delay = minRetryDelay
	}
	return delay
}
