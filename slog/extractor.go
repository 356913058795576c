package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/howto"
)

// Ensure LoggingExtractor implements howto.Extractor.
var _ howto.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs which step strategy matched.
type LoggingExtractor struct {
	next   howto.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next howto.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs its trace.
func (e *LoggingExtractor) Extract(html, source, query string) (doc *howto.Document, trace *howto.Trace, err error) {
	defer func(begin time.Time) {
		var t howto.Trace
		if trace != nil {
			t = *trace
		}
		strategy := t.Strategy
		if strategy == "" {
			strategy = "(none)"
		}
		e.logger.Info("extract",
			"source", source,
			"strategy", strategy,
			"candidates", t.Candidates,
			"steps", t.Steps,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, source, query)
}
