package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vidlinks"
)

// Ensure LoggingFetcher implements vidlinks.Fetcher.
var _ vidlinks.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   vidlinks.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next vidlinks.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingTitleFetcher implements vidlinks.TitleFetcher.
var _ vidlinks.TitleFetcher = (*LoggingTitleFetcher)(nil)

// LoggingTitleFetcher wraps a TitleFetcher with debug logging.
type LoggingTitleFetcher struct {
	next   vidlinks.TitleFetcher
	logger *slog.Logger
}

// NewLoggingTitleFetcher creates a new LoggingTitleFetcher.
func NewLoggingTitleFetcher(next vidlinks.TitleFetcher, logger *slog.Logger) *LoggingTitleFetcher {
	return &LoggingTitleFetcher{next: next, logger: logger}
}

// FetchTitle delegates to the wrapped fetcher and logs the resolved title.
func (f *LoggingTitleFetcher) FetchTitle(ctx context.Context, url string) (title string) {
	defer func(begin time.Time) {
		f.logger.Info("fetch title",
			"url", url,
			"title", title,
			"found", title != "",
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.FetchTitle(ctx, url)
}
