package scrape_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/howto"
	"github.com/fwojciec/howto/mock"
	"github.com/fwojciec/howto/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(10) // 10 req/sec

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.wikihow.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same host", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background(), "www.wikihow.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "www.wikihow.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(10)

		err := limiter.Wait(context.Background(), "www.wikihow.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "other.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different host should not wait")
	})

	t.Run("non-positive rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), "www.wikihow.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context deadline", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(1) // 1 req/sec

		err := limiter.Wait(context.Background(), "www.wikihow.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "www.wikihow.com")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent requests are serialized per host", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(100) // 100 req/sec = 10ms between requests

		var wg sync.WaitGroup
		var completed atomic.Int32

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "www.wikihow.com"); err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load(), "all requests should complete")
	})
}

func TestLimitedFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("waits on URL host before fetching", func(t *testing.T) {
		t.Parallel()

		var waitedFor string
		limiter := &mock.RateLimiter{
			WaitFn: func(_ context.Context, host string) error {
				waitedFor = host
				return nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		html, err := scrape.NewLimitedFetcher(inner, limiter).Fetch(context.Background(), "https://www.wikihow.com/Tie-a-Tie")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, "www.wikihow.com", waitedFor)
	})

	t.Run("reports wait past deadline as timeout", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.RateLimiter{
			WaitFn: func(context.Context, string) error {
				return errors.New("rate: Wait(n=1) would exceed context deadline")
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch must not be called")
				return "", nil
			},
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_, err := scrape.NewLimitedFetcher(inner, limiter).Fetch(ctx, "https://www.wikihow.com/Tie-a-Tie")

		require.Error(t, err)
		assert.Equal(t, howto.ETIMEOUT, howto.ErrorCode(err))
	})

	t.Run("reports canceled wait as network error", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.RateLimiter{
			WaitFn: func(ctx context.Context, _ string) error {
				return ctx.Err()
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := scrape.NewLimitedFetcher(&mock.Fetcher{}, limiter).Fetch(ctx, "https://www.wikihow.com/Tie-a-Tie")

		require.Error(t, err)
		assert.Equal(t, howto.ENETWORK, howto.ErrorCode(err))
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		require.NoError(t, scrape.NewLimitedFetcher(inner, scrape.NewHostLimiter(1)).Close())
		assert.True(t, closed)
	})
}
