package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vidlinks"
	"github.com/fwojciec/vidlinks/enrich"
	"github.com/fwojciec/vidlinks/gemini"
	vlhttp "github.com/fwojciec/vidlinks/http"
	"github.com/fwojciec/vidlinks/lru"
	vlslog "github.com/fwojciec/vidlinks/slog"
	"github.com/fwojciec/vidlinks/youtube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// GeminiBaseURL overrides the Gemini API endpoint. Set before calling Run().
	GeminiBaseURL string

	// Fetcher is the HTTP fetcher shared by all services.
	Fetcher *vlhttp.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
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
		kong.Name("vidlinks"),
		kong.Description("Extract and title the links in a YouTube video description."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vidlinks --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Service = m.newService(cli, deps.Logger)
	defer m.Close()

	return kongCtx.Run(deps)
}

// newService wires the extraction service from the global flags.
func (m *Main) newService(cli *CLI, logger *slog.Logger) *enrich.Service {
	m.Fetcher = vlhttp.NewFetcher(vlhttp.WithTimeout(cli.Timeout))
	fetcher := vlslog.NewLoggingFetcher(m.Fetcher, logger)

	source := vlslog.NewLoggingMetadataSource(youtube.NewMetadataSource(fetcher), logger)

	titles := lru.NewTitleFetcher(
		vlslog.NewLoggingTitleFetcher(vlhttp.NewTitleFetcher(fetcher), logger),
		cli.CacheSize,
	)

	var geminiOpts []gemini.Option
	if m.GeminiBaseURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(m.GeminiBaseURL))
	}
	fallback := lru.NewShortener(
		vlslog.NewLoggingShortener(gemini.NewShortener(geminiOpts...), logger),
		cli.CacheSize,
	)

	pipeline := &enrich.Pipeline{
		TitleFetcher: titles,
		Shortener:    &vidlinks.TitleShortener{Fallback: fallback},
		Concurrency:  cli.Concurrency,
		Logger:       logger,
	}
	if cli.Rate > 0 {
		pipeline.RateLimiter = enrich.NewDomainLimiter(cli.Rate, cli.Burst)
	}

	svc := &enrich.Service{
		Source:            source,
		Pipeline:          pipeline,
		DefaultCredential: cli.APIKey,
		Logger:            logger,
	}
	if cli.Retry {
		svc.RetryDelays = enrich.DefaultRetryDelays()
	}
	return svc
}

// newLogger returns a text logger on w, or a discarding logger unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
