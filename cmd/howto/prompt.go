package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/howto"
)

// Run executes the prompt command.
func (c *PromptCmd) Run(deps *Dependencies) error {
	if deps.Prompter == nil {
		fmt.Fprintln(deps.Stderr, "error: prompt provider not configured. Set OPENAI_API_KEY, or GEMINI_API_KEY with --ai-provider=gemini")
		return howto.Errorf(howto.EINVALID, "prompt provider not configured")
	}

	answer, err := deps.Prompter.Prompt(deps.Ctx, strings.Join(c.Text, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", howto.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
