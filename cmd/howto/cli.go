package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/howto"
	howtohttp "github.com/fwojciec/howto/http"
	"github.com/fwojciec/howto/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Service  howto.Service
	Prompter howto.Prompter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"YAML file with flag defaults" placeholder:"FILE"`

	Timeout   time.Duration `default:"10s" env:"HOWTO_TIMEOUT" help:"Per-request fetch timeout"`
	UserAgent string        `default:"${user_agent}" env:"HOWTO_USER_AGENT" help:"User-Agent sent to the site"`
	BaseURL   string        `default:"${base_url}" env:"HOWTO_BASE_URL" help:"Site origin searched for articles"`
	RPS       float64       `name:"rps" default:"2" env:"HOWTO_RPS" help:"Requests per second per host (0 disables limiting)"`
	Retries   int           `default:"0" env:"HOWTO_RETRIES" help:"Retries for transient network failures, with exponential backoff"`
	Browser   bool          `env:"HOWTO_BROWSER" help:"Render pages with headless Chrome"`
	LogLevel  string        `default:"info" enum:"debug,info,warn,error" env:"HOWTO_LOG_LEVEL" help:"Log level (${enum})"`

	AIProvider    string `name:"ai-provider" default:"openai" enum:"openai,gemini" env:"HOWTO_AI_PROVIDER" help:"Prompt provider (${enum})"`
	GeminiAPIKey  string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OpenAIAPIKey  string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`

	Extract ExtractCmd `cmd:"" help:"Extract the how-to guide best matching a query"`
	Serve   ServeCmd   `cmd:"" help:"Run the JSON API"`
	Prompt  PromptCmd  `cmd:"" help:"Send a prompt to the configured AI provider"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Query []string `arg:"" help:"Search query, e.g. tie a tie"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":5000" env:"HOWTO_ADDR" help:"Listen address"`
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct {
	Text []string `arg:"" help:"Prompt text"`
}

// Vars supplies the interpolated flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"user_agent": howtohttp.DefaultUserAgent,
		"base_url":   scrape.DefaultBaseURL,
	}
}
