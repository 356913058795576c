// Package gemini implements howto.Prompter using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/howto"
	"google.golang.org/genai"
)

// Model is the Gemini model prompts are sent to.
const Model = "gemini-2.5-flash"

// Ensure Prompter implements howto.Prompter at compile time.
var _ howto.Prompter = (*Prompter)(nil)

// Prompter passes a single user prompt to Gemini and returns the reply text.
type Prompter struct {
	client *genai.Client
}

// NewPrompter creates a new Prompter.
func NewPrompter(client *genai.Client) *Prompter {
	return &Prompter{client: client}
}

// Prompt sends prompt as a single user turn.
func (p *Prompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", howto.Errorf(howto.EINVALID, "no prompt provided")
	}
	if p.client == nil {
		return "", howto.Errorf(howto.EINTERNAL, "prompt provider not configured")
	}

	result, err := p.client.Models.GenerateContent(ctx, Model,
		[]*genai.Content{genai.NewContentFromText(prompt, "user")},
		BuildConfig(),
	)
	if err != nil {
		return "", apiError(err)
	}
	if result == nil {
		return "", howto.Errorf(howto.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for prompt calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: 1000,
	}
}

func apiError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var ptr *genai.APIError
		if !errors.As(err, &ptr) || ptr == nil {
			return howto.Errorf(howto.EINTERNAL, "gemini API error: %v", err)
		}
		apiErr = *ptr
	}
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return howto.Errorf(howto.EUNAUTHORIZED, "invalid Gemini API key")
	case http.StatusTooManyRequests:
		return howto.Errorf(howto.ERATELIMIT, "Gemini rate limit exceeded")
	}
	return howto.Errorf(howto.EINTERNAL, "gemini API error: %s", apiErr.Message)
}
