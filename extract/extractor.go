// Package extract turns parsed how-to articles into structured documents.
//
// Every algorithm here is written against howto.Node, so it works with any
// howto.Parser. Section locators each apply their own ordered selectors and
// return zero values for missing sections. Steps are found by an ordered
// list of strategies where the first strategy with candidates wins, and an
// aggressive list-mining fallback runs only when that yields nothing.
package extract

import (
	"github.com/fwojciec/howto"
)

// Ensure Extractor implements howto.Extractor at compile time.
var _ howto.Extractor = (*Extractor)(nil)

// Extractor extracts Documents from article HTML.
// Extractor holds no per-document state and is safe for concurrent use.
type Extractor struct {
	parser howto.Parser
}

// NewExtractor creates a new Extractor that parses HTML with parser.
func NewExtractor(parser howto.Parser) *Extractor {
	return &Extractor{parser: parser}
}

// Extract parses html fetched from source and assembles a Document.
func (e *Extractor) Extract(html, source, query string) (*howto.Document, *howto.Trace, error) {
	root, err := e.parser.Parse(html)
	if err != nil {
		return nil, nil, err
	}

	sections := LocateSections(root, source, query)

	steps, trace := ExtractSteps(root)
	if len(steps) == 0 {
		steps = AggressiveSteps(root)
		if len(steps) > 0 {
			trace = howto.Trace{Strategy: howto.StrategyAggressive, Candidates: trace.Candidates, Steps: len(steps)}
		}
	}

	doc, err := howto.NewDocument(sections, steps, source)
	return doc, &trace, err
}
