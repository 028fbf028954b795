package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/vidlinks"
	"github.com/google/uuid"
)

// Ensure Service implements vidlinks.ExtractionService at compile time.
var _ vidlinks.ExtractionService = (*Service)(nil)

// Service reads a source page's description, extracts its links, and
// enriches them.
type Service struct {
	Source   vidlinks.MetadataSource
	Pipeline *Pipeline

	// DefaultCredential is used when a request carries no credential.
	DefaultCredential string

	// RetryDelays controls retries of the metadata fetch. Nil means a
	// single attempt.
	RetryDelays []time.Duration

	// Progress, if set, receives enrichment progress for every request.
	Progress ProgressFunc

	Logger *slog.Logger
}

// Extract implements vidlinks.ExtractionService.
func (s *Service) Extract(ctx context.Context, req *vidlinks.Request) (*vidlinks.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger := s.logger().With("request_id", uuid.NewString(), "source_url", req.SourceURL)
	begin := time.Now()

	fetch := func(ctx context.Context) (*vidlinks.Metadata, error) {
		return s.Source.FetchMetadata(ctx, req.SourceURL)
	}
	logRetry := func(format string, args ...any) {
		logger.Warn("metadata fetch failed", "detail", fmt.Sprintf(format, args...))
	}
	md, err := Retry(ctx, fetch, logRetry, s.RetryDelays)
	if err != nil {
		logger.Error("metadata fetch failed", "err", err)
		return nil, vidlinks.Errorf(vidlinks.EUPSTREAM, "%s", err.Error())
	}

	credential := req.Credential
	if credential == "" {
		credential = s.DefaultCredential
	}

	links := vidlinks.ExtractLinks(md.Description)
	enriched := s.Pipeline.Enrich(ctx, links, credential, s.Progress)

	degraded := 0
	for _, l := range enriched {
		if l.Status == vidlinks.LinkDegraded {
			degraded++
		}
	}
	logger.Info("extract",
		"title", md.Title,
		"links", len(enriched),
		"degraded", degraded,
		"duration", time.Since(begin),
	)

	return &vidlinks.Result{
		Title:       md.Title,
		Description: md.Description,
		Links:       enriched,
	}, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
