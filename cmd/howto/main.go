package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/howto"
	"github.com/fwojciec/howto/extract"
	"github.com/fwojciec/howto/gemini"
	"github.com/fwojciec/howto/goquery"
	howtohttp "github.com/fwojciec/howto/http"
	howtoopenai "github.com/fwojciec/howto/openai"
	"github.com/fwojciec/howto/rod"
	"github.com/fwojciec/howto/scrape"
	howtoslog "github.com/fwojciec/howto/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When set, Run uses them instead of
	// building the real pipeline.
	Service  howto.Service
	Prompter howto.Prompter

	fetcher howto.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases the fetcher, if one was started.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("howto"),
		kong.Description("Extract structured how-to guides from wikiHow."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLLoader),
		Vars(),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'howto --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = NewLogger(stderr, cli.LogLevel)

	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd == "extract" || cmd == "serve" {
		if m.Service == nil {
			svc, err := m.buildService(cli, deps.Logger)
			if err != nil {
				return err
			}
			m.Service = svc
		}
		defer m.Close()
		deps.Service = m.Service
	}

	if cmd == "prompt" || cmd == "serve" {
		if m.Prompter == nil {
			p, err := buildPrompter(ctx, cli)
			if err != nil {
				return err
			}
			if p != nil {
				m.Prompter = howtoslog.NewLoggingPrompter(p, deps.Logger)
			}
		}
		deps.Prompter = m.Prompter
	}

	return kongCtx.Run(deps)
}

// buildService wires the extraction pipeline: a fetcher, rate limited per
// host, shared by search and article retrieval.
func (m *Main) buildService(cli *CLI, logger *slog.Logger) (howto.Service, error) {
	var fetcher howto.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(cli.UserAgent),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	} else {
		fetcher = howtohttp.NewFetcher(
			howtohttp.WithTimeout(cli.Timeout),
			howtohttp.WithUserAgent(cli.UserAgent),
		)
	}
	m.fetcher = fetcher

	fetcher = scrape.NewLimitedFetcher(fetcher, scrape.NewHostLimiter(cli.RPS))
	fetcher = scrape.NewRetryFetcher(fetcher, scrape.BackoffDelays(cli.Retries), logger)
	fetcher = howtoslog.NewLoggingFetcher(fetcher, logger)

	parser := goquery.NewParser()
	resolver := howtoslog.NewLoggingResolver(scrape.NewResolver(fetcher, parser, cli.BaseURL), logger)
	extractor := howtoslog.NewLoggingExtractor(extract.NewExtractor(parser), logger)

	return howtoslog.NewLoggingService(scrape.NewScraper(resolver, fetcher, extractor), logger), nil
}

// buildPrompter returns the configured provider, or nil when its API key is
// not set.
func buildPrompter(ctx context.Context, cli *CLI) (howto.Prompter, error) {
	switch cli.AIProvider {
	case "gemini":
		if cli.GeminiAPIKey == "" {
			return nil, nil
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewPrompter(client), nil
	default:
		if cli.OpenAIAPIKey == "" {
			return nil, nil
		}
		return howtoopenai.NewPrompter(howtoopenai.NewClient(cli.OpenAIAPIKey, cli.OpenAIBaseURL)), nil
	}
}
