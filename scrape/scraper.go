// Package scrape implements the search, fetch and extract pipeline behind
// howto.Service.
package scrape

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/howto"
)

// Ensure Scraper implements howto.Service at compile time.
var _ howto.Service = (*Scraper)(nil)

// Scraper runs one extraction per call: resolve the query to an article,
// fetch it, extract it. Steps run sequentially and share no state across
// calls, so a Scraper is safe for concurrent use.
type Scraper struct {
	resolver  howto.Resolver
	fetcher   howto.Fetcher
	extractor howto.Extractor
}

// NewScraper creates a new Scraper.
func NewScraper(resolver howto.Resolver, fetcher howto.Fetcher, extractor howto.Extractor) *Scraper {
	return &Scraper{
		resolver:  resolver,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// HowTo extracts the how-to guide best matching query.
func (s *Scraper) HowTo(ctx context.Context, query string) (*howto.Document, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, howto.Errorf(howto.EINVALID, "no query provided")
	}

	source, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, classify(err)
	}

	html, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, classify(err)
	}

	doc, _, err := s.extractor.Extract(html, source, query)
	if err != nil {
		return nil, classify(err)
	}
	return doc, nil
}

// classify converts err into an *howto.Error so nothing else leaves the
// service.
func classify(err error) error {
	var e *howto.Error
	switch {
	case errors.As(err, &e):
		return e
	case errors.Is(err, context.DeadlineExceeded):
		return howto.Errorf(howto.ETIMEOUT, "request timed out")
	default:
		return howto.Errorf(howto.EINTERNAL, "server error: %v", err)
	}
}
