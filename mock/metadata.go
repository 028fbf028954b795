package mock

import (
	"context"

	"github.com/fwojciec/vidlinks"
)

var _ vidlinks.MetadataSource = (*MetadataSource)(nil)

// MetadataSource is a mock implementation of vidlinks.MetadataSource.
type MetadataSource struct {
	FetchMetadataFn func(ctx context.Context, sourceURL string) (*vidlinks.Metadata, error)
}

func (s *MetadataSource) FetchMetadata(ctx context.Context, sourceURL string) (*vidlinks.Metadata, error) {
	return s.FetchMetadataFn(ctx, sourceURL)
}

var _ vidlinks.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of vidlinks.ExtractionService.
type ExtractionService struct {
	ExtractFn func(ctx context.Context, req *vidlinks.Request) (*vidlinks.Result, error)
}

func (s *ExtractionService) Extract(ctx context.Context, req *vidlinks.Request) (*vidlinks.Result, error) {
	return s.ExtractFn(ctx, req)
}
