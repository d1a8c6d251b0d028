// Package retry runs a fallible operation up to a bounded number of
// sequential attempts with no delay between them. The upstream failure
// profile here is transient 5xx/timeout, where an immediate second try
// almost always succeeds; callers that need backoff don't exist in this
// codebase.
package retry

import (
	"context"
	"log/slog"
)

// Do invokes op up to maxAttempts times, stopping at the first success.
// Each failure is logged at debug level; only the last error is returned
// once the budget is exhausted. Cancellation is checked between attempts.
func Do(ctx context.Context, logger *slog.Logger, maxAttempts int, op func(ctx context.Context) error) error {
	_, err := DoValue(ctx, logger, maxAttempts, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, logger *slog.Logger, maxAttempts int, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		value, err := op(ctx)
		if err == nil {
			return value, nil
		}

		lastErr = err
		logger.Debug("attempt failed",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"error", err,
		)
	}

	logger.Debug("all attempts failed", "max_attempts", maxAttempts, "error", lastErr)

	return zero, lastErr
}
