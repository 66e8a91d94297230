package cache

import (
	"context"
	"errors"
	"io"
	"net"
	"time"
)

// ErrNetwork marks a transient backend failure (timeouts, dropped
// connections).
var ErrNetwork = errors.New("network error")

// RetryableError marks an error that RetryWithBackoff may retry.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is wrapped with Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// isTransient reports whether a backend error is worth retrying.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var ne net.Error
	return errors.As(err, &ne) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// retryBaseDelay is the first backoff delay; it doubles per attempt.
var retryBaseDelay = 200 * time.Millisecond

// retryAttempts bounds how often fn runs.
const retryAttempts = 3

// RetryWithBackoff runs fn until it succeeds, returns a non-retryable error,
// or retryAttempts is exhausted.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	var last error
	for i := range retryAttempts {
		last = fn()
		if last == nil || !IsRetryable(last) {
			return last
		}
		if i == retryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return last
}
