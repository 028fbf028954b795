package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vidlinks"
)

// Ensure LoggingShortener implements vidlinks.Shortener.
var _ vidlinks.Shortener = (*LoggingShortener)(nil)

// LoggingShortener wraps a Shortener with logging.
// The credential is never logged.
type LoggingShortener struct {
	next   vidlinks.Shortener
	logger *slog.Logger
}

// NewLoggingShortener creates a new LoggingShortener.
func NewLoggingShortener(next vidlinks.Shortener, logger *slog.Logger) *LoggingShortener {
	return &LoggingShortener{next: next, logger: logger}
}

// Shorten delegates to the wrapped shortener and logs the operation.
func (s *LoggingShortener) Shorten(ctx context.Context, text, credential string) (short string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("shorten",
			"text", text,
			"short", short,
			"configured", credential != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Shorten(ctx, text, credential)
}
