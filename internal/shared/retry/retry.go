// Package retry provides a fixed-delay retry loop for operations that can fail transiently.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Policy controls how many times an operation is attempted and which errors are worth another try.
type Policy struct {
	MaxAttempts int           // total attempts including the first one
	Wait        time.Duration // fixed delay between attempts
	// Retryable reports whether err should trigger another attempt.
	// A nil Retryable retries every error.
	Retryable func(err error) bool
}

// ExhaustedError is returned when every attempt failed with a retryable error.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed, last error: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Do runs fn until it succeeds, returns a non-retryable error, or MaxAttempts is reached.
// The wait between attempts is interrupted by ctx cancellation, and no further
// attempt starts once ctx is done, even with a zero Wait.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, p.Wait); err != nil {
				return errors.Join(err, lastErr)
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		lastErr = err
	}
	return &ExhaustedError{Attempts: attempts, Err: lastErr}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
