// Package shared provides common utilities used across the codebase.
//
//nolint:revive // "shared" is an intentional package name for cross-cutting helpers.
package shared

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// IsSQLiteConflictError checks if the error is a SQLITE_BUSY or
// "database is locked" error. Both are SQLite concurrency errors that
// typically warrant retry logic.
func IsSQLiteConflictError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "SQLITE_BUSY") ||
		strings.Contains(err.Error(), "database is locked")
}

// WithSQLiteRetry runs fn, retrying up to maxRetries times with exponential
// backoff while fn keeps failing with a SQLite concurrency error. Any other
// error, or exhaustion of the budget, is returned to the caller.
func WithSQLiteRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !IsSQLiteConflictError(err) || i == maxRetries-1 {
			return err
		}

		delay := baseDelay * time.Duration(1<<i) // exponential backoff
		slog.Debug("SQLite busy, retrying", "attempt", i+1, "delay", delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
