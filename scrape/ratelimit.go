package scrape

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/fwojciec/howto"
	"golang.org/x/time/rate"
)

var _ howto.RateLimiter = (*HostLimiter)(nil)

// HostLimiter provides per-host rate limiting using token buckets.
// Each host gets its own limiter, so search and article requests to the
// same site share one budget.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second per
// host with a burst of 1. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to host.
// Returns an error if the context is done, or its deadline would pass,
// before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(l.limit, 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ howto.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits for its RateLimiter before every fetch.
type LimitedFetcher struct {
	next    howto.Fetcher
	limiter howto.RateLimiter
}

// NewLimitedFetcher creates a new LimitedFetcher.
func NewLimitedFetcher(next howto.Fetcher, limiter howto.RateLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the host of rawURL to be available and delegates.
// A wait cut short by the context deadline is reported as ETIMEOUT.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", howto.Errorf(howto.ENETWORK, "invalid URL %q: %v", rawURL, err)
	}

	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", howto.Errorf(howto.ENETWORK, "request canceled: %v", err)
		}
		// rate.Limiter refuses to wait past the deadline without
		// returning context.DeadlineExceeded, so check for a deadline.
		if _, ok := ctx.Deadline(); ok {
			return "", howto.Errorf(howto.ETIMEOUT, "request timed out waiting for %s", u.Host)
		}
		return "", howto.Errorf(howto.ENETWORK, "rate limiter: %v", err)
	}

	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
