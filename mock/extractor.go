package mock

import "github.com/fwojciec/howto"

var _ howto.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of howto.Extractor.
type Extractor struct {
	ExtractFn func(html, source, query string) (*howto.Document, *howto.Trace, error)
}

func (e *Extractor) Extract(html, source, query string) (*howto.Document, *howto.Trace, error) {
	return e.ExtractFn(html, source, query)
}

var _ howto.Parser = (*Parser)(nil)

// Parser is a mock implementation of howto.Parser.
type Parser struct {
	ParseFn func(html string) (howto.Node, error)
}

func (p *Parser) Parse(html string) (howto.Node, error) {
	return p.ParseFn(html)
}
