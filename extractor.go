package howto

// Strategy names reported in a Trace.
const (
	StrategyMarkedStep  = "marked-step"
	StrategyStepID      = "step-id"
	StrategyStepsList   = "steps-list"
	StrategyContentList = "content-list"
	StrategyAggressive  = "aggressive"
)

// Trace records how the steps of a document were found. It exists for
// diagnostics and is not part of the Document.
type Trace struct {
	// Strategy is the name of the strategy whose candidates were used,
	// or empty if no strategy located any candidate.
	Strategy string

	// Candidates is the number of candidate elements the strategy returned.
	Candidates int

	// Steps is the number of steps that survived validation.
	Steps int
}

// Extractor turns a fetched article into a structured Document.
type Extractor interface {
	// Extract parses html fetched from source. The query is the title of
	// last resort when the article has no heading.
	// Returns EEXTRACT if no steps could be extracted. The Trace is returned
	// whenever the HTML could be parsed, including on EEXTRACT.
	Extract(html, source, query string) (*Document, *Trace, error)
}
