package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/howto"
)

// Ensure LoggingPrompter implements howto.Prompter.
var _ howto.Prompter = (*LoggingPrompter)(nil)

// LoggingPrompter wraps a Prompter with logging. Prompt and response
// contents are not logged, only their sizes.
type LoggingPrompter struct {
	next   howto.Prompter
	logger *slog.Logger
}

// NewLoggingPrompter creates a new LoggingPrompter.
func NewLoggingPrompter(next howto.Prompter, logger *slog.Logger) *LoggingPrompter {
	return &LoggingPrompter{next: next, logger: logger}
}

// Prompt delegates to the wrapped prompter.
func (p *LoggingPrompter) Prompt(ctx context.Context, prompt string) (answer string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("prompt",
			"prompt_bytes", len(prompt),
			"response_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Prompt(ctx, prompt)
}
