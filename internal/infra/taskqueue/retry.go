package taskqueue

import (
	"context"
	"log/slog"
	"math"
	"time"
)

const defaultMaxRetries = 3

func backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

// withRetry runs fn up to maxRetries times with exponential backoff between attempts.
func withRetry(ctx context.Context, maxRetries int, op, localID string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			slog.DebugContext(ctx, "retrying "+op,
				slog.String("local_id", localID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}
	}

	slog.ErrorContext(ctx, "all retries exhausted for "+op,
		slog.String("local_id", localID),
		slog.Int("max_retries", maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return lastErr
}
