package howto

import "context"

// Resolver resolves a free-text query to the absolute URL of an article.
type Resolver interface {
	// Resolve searches the site for query and returns the first result.
	// Returns ENOTFOUND if the search has no result link.
	Resolve(ctx context.Context, query string) (string, error)
}

// Service performs complete extractions.
type Service interface {
	// HowTo resolves query to an article, fetches it and extracts a Document.
	// Returns EINVALID for an empty query without making any request.
	// Every returned error is an *Error.
	HowTo(ctx context.Context, query string) (*Document, error)
}

// Prompter sends a single prompt to a language model and returns its reply.
type Prompter interface {
	// Prompt returns the model's response to prompt.
	// Returns EINVALID for an empty prompt.
	Prompt(ctx context.Context, prompt string) (string, error)
}
