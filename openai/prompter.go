// Package openai implements howto.Prompter using the OpenAI chat completions
// API.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/howto"
	openai "github.com/sashabaranov/go-openai"
)

// Request parameters sent with every prompt.
const (
	Model       = openai.GPT3Dot5Turbo
	MaxTokens   = 1000
	Temperature = 0.7
)

// Ensure Prompter implements howto.Prompter at compile time.
var _ howto.Prompter = (*Prompter)(nil)

// ChatClient is the subset of *openai.Client used by Prompter.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Prompter passes a single user prompt to a chat model and returns the reply.
type Prompter struct {
	client ChatClient
}

// NewPrompter creates a new Prompter.
func NewPrompter(client ChatClient) *Prompter {
	return &Prompter{client: client}
}

// NewClient returns an OpenAI client for apiKey. A non-empty baseURL points
// it at a compatible endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Prompt sends prompt as a single user message.
func (p *Prompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", howto.Errorf(howto.EINVALID, "no prompt provided")
	}
	if p.client == nil {
		return "", howto.Errorf(howto.EINTERNAL, "prompt provider not configured")
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", apiError(err)
	}
	if len(resp.Choices) == 0 {
		return "", howto.Errorf(howto.EINTERNAL, "OpenAI API error: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

func apiError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return howto.Errorf(howto.EUNAUTHORIZED, "Invalid OpenAI API key")
	case http.StatusTooManyRequests:
		return howto.Errorf(howto.ERATELIMIT, "OpenAI rate limit exceeded")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return howto.Errorf(howto.ETIMEOUT, "OpenAI request timed out")
	}
	return howto.Errorf(howto.EINTERNAL, "OpenAI API error: %v", err)
}
