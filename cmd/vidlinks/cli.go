package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/vidlinks"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service vidlinks.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey      string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key used to shorten long titles"`
	Concurrency int           `short:"c" default:"10" help:"Links enriched in parallel"`
	Timeout     time.Duration `default:"5s" help:"Per-request fetch timeout"`
	CacheSize   int           `default:"100" help:"Entries kept in each title cache"`
	Rate        float64       `default:"5" help:"Requests per second per host (0 disables)"`
	Burst       int           `default:"5" help:"Request burst per host"`
	Retry       bool          `default:"true" negatable:"" help:"Retry the video page fetch with backoff"`
	Verbose     bool          `short:"v" help:"Log to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract links from a video description"`
	Serve   ServeCmd   `cmd:"" help:"Serve the extraction API over HTTP"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Video URL"`
	JSON bool   `help:"Print the result as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `default:":5000" env:"VIDLINKS_ADDR" help:"Listen address"`
	CORSOrigins []string `name:"cors-origin" env:"VIDLINKS_CORS_ORIGINS" help:"Allowed cross-origin request origins (* for any)"`
}
