package mock

import (
	"context"

	"github.com/fwojciec/howto"
)

var _ howto.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of howto.Prompter.
type Prompter struct {
	PromptFn func(ctx context.Context, prompt string) (string, error)
}

func (p *Prompter) Prompt(ctx context.Context, prompt string) (string, error) {
	return p.PromptFn(ctx, prompt)
}
