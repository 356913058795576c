package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/howto"
)

var _ howto.Fetcher = (*RetryFetcher)(nil)

// BackoffDelays returns n exponential backoff delays starting at one second.
func BackoffDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}

// RetryFetcher retries fetches that fail with ENETWORK, waiting delays[i]
// before attempt i+2. Timeouts, not-found and every other failure are
// returned immediately. With no delays it behaves like the wrapped fetcher.
type RetryFetcher struct {
	next   howto.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher creates a new RetryFetcher.
func NewRetryFetcher(next howto.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch fetches url, retrying transient network failures.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil || attempt >= len(f.delays) || howto.ErrorCode(err) != howto.ENETWORK {
			return html, err
		}

		f.logger.Warn("retry", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", err
		case <-time.After(f.delays[attempt]):
		}
	}
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
