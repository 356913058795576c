package howto

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations send the configured user agent and bound every request by
// a timeout, reporting ETIMEOUT when it is exceeded and ENETWORK for any
// other transport failure, including non-2xx responses.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// RateLimiter paces outbound requests per host.
type RateLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is done before the wait completes.
	Wait(ctx context.Context, host string) error
}
