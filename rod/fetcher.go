// Package rod implements howto.Fetcher with a headless Chrome browser, for
// articles whose markup is only complete after scripts run.
package rod

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/fwojciec/howto"
	howtohttp "github.com/fwojciec/howto/http"
	"github.com/go-rod/rod/lib/proto"
)

var _ howto.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds navigation, load and serialization of one page.
const DefaultFetchTimeout = 30 * time.Second

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxPages sets how many pages are rendered before the browser is
// relaunched. Zero disables recycling.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *browser
	timeout   time.Duration
	userAgent string
	maxPages  int
	closed    atomic.Bool
}

// NewFetcher launches a headless Chrome browser. Close must be called when
// the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: howtohttp.DefaultUserAgent,
		maxPages:  DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	b, err := launchBrowser(f.maxPages)
	if err != nil {
		return nil, err
	}
	f.browser = b
	return f, nil
}

// Fetch navigates to url, waits for the load event, and returns the rendered
// HTML of the page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", howto.Errorf(howto.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", fetchError(ctx, err, url)
	}

	b, err := f.browser.acquire()
	if err != nil {
		return "", howto.Errorf(howto.EINVALID, "fetcher is closed")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fetchError(ctx, err, url)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", fetchError(ctx, err, url)
		}
	}
	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, err, url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, err, url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(ctx, err, url)
	}
	return html, nil
}

// LauncherPID returns the process ID of the running browser, or zero after
// Close.
func (f *Fetcher) LauncherPID() int {
	return f.browser.pid()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.browser.close()
}

func fetchError(ctx context.Context, err error, url string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return howto.Errorf(howto.ETIMEOUT, "request timed out while fetching %s", url)
	}
	return howto.Errorf(howto.ENETWORK, "failed to fetch %s: %v", url, err)
}
