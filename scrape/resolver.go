package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/howto"
	"github.com/fwojciec/howto/extract"
)

// DefaultBaseURL is the site searched for articles.
const DefaultBaseURL = "https://www.wikihow.com"

var resultLinkMatch = howto.Match{Tags: []string{"a"}, Class: "result_link"}

// Ensure Resolver implements howto.Resolver at compile time.
var _ howto.Resolver = (*Resolver)(nil)

// Resolver finds articles through the site's search page.
type Resolver struct {
	fetcher howto.Fetcher
	parser  howto.Parser
	baseURL string
}

// NewResolver creates a Resolver searching the site at baseURL.
func NewResolver(fetcher howto.Fetcher, parser howto.Parser, baseURL string) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		parser:  parser,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchURL returns the search page URL for query, with spaces encoded as "+".
func (r *Resolver) SearchURL(query string) string {
	return r.baseURL + "/wikiHowTo?search=" + url.QueryEscape(query)
}

// Resolve returns the absolute URL of the first search result for query.
func (r *Resolver) Resolve(ctx context.Context, query string) (string, error) {
	html, err := r.fetcher.Fetch(ctx, r.SearchURL(query))
	if err != nil {
		return "", err
	}

	root, err := r.parser.Parse(html)
	if err != nil {
		return "", err
	}

	link, ok := root.Find(resultLinkMatch)
	if !ok {
		return "", howto.Errorf(howto.ENOTFOUND, "no article found for %q", query)
	}
	href, _ := link.Attr("href")
	if strings.TrimSpace(href) == "" {
		return "", howto.Errorf(howto.ENOTFOUND, "no article found for %q", query)
	}

	abs, err := extract.Absolute(r.baseURL, strings.TrimSpace(href))
	if err != nil {
		return "", howto.Errorf(howto.EINTERNAL, "invalid result link %q: %v", href, err)
	}
	return abs, nil
}
