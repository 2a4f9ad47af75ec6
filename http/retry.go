package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/enrzones"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryFetcher implements enrzones.Fetcher at compile time.
var _ enrzones.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff. Missing documents
// (ENOTFOUND) are not retried: a cycle that is not published yet will
// not appear within seconds.
type RetryFetcher struct {
	next   enrzones.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. One attempt is made per delay plus the
// initial one.
func NewRetryFetcher(next enrzones.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch implements enrzones.Fetcher.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	maxAttempts := len(f.delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := f.next.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// Don't retry after the last attempt or when retrying cannot help
		if attempt >= maxAttempts-1 || enrzones.ErrorCode(err) == enrzones.ENOTFOUND {
			break
		}

		if f.logger != nil {
			f.logger.Warn("retry fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return nil, lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
