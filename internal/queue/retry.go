package queue

import (
	"fmt"
	"time"
)

// retryWithBackoff retries fn up to attempts times with linearly
// increasing waits. Used for transient failures (object download); the
// final error wraps the last attempt's.
func retryWithBackoff[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
