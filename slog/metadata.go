package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vidlinks"
)

// Ensure LoggingMetadataSource implements vidlinks.MetadataSource.
var _ vidlinks.MetadataSource = (*LoggingMetadataSource)(nil)

// LoggingMetadataSource wraps a MetadataSource with debug logging.
type LoggingMetadataSource struct {
	next   vidlinks.MetadataSource
	logger *slog.Logger
}

// NewLoggingMetadataSource creates a new LoggingMetadataSource.
func NewLoggingMetadataSource(next vidlinks.MetadataSource, logger *slog.Logger) *LoggingMetadataSource {
	return &LoggingMetadataSource{next: next, logger: logger}
}

// FetchMetadata delegates to the wrapped source and logs the operation.
func (s *LoggingMetadataSource) FetchMetadata(ctx context.Context, sourceURL string) (md *vidlinks.Metadata, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if md != nil {
			attrs = append(attrs, "title", md.Title, "description_bytes", len(md.Description))
		}
		s.logger.Info("fetch metadata", attrs...)
	}(time.Now())
	return s.next.FetchMetadata(ctx, sourceURL)
}
