package mock

import (
	"context"

	"github.com/fwojciec/howto"
)

var _ howto.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of howto.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ howto.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of howto.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (r *RateLimiter) Wait(ctx context.Context, host string) error {
	return r.WaitFn(ctx, host)
}
