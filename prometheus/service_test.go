package prometheus_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/vidlinks"
	"github.com/fwojciec/vidlinks/mock"
	vlprom "github.com/fwojciec/vidlinks/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionService_Extract(t *testing.T) {
	t.Parallel()

	t.Run("counts successful requests and links by status", func(t *testing.T) {
		t.Parallel()

		next := &mock.ExtractionService{
			ExtractFn: func(context.Context, *vidlinks.Request) (*vidlinks.Result, error) {
				return &vidlinks.Result{Links: []vidlinks.Link{
					{URL: "https://a.example.com", Status: vidlinks.LinkOK},
					{URL: "https://b.example.com", Status: vidlinks.LinkDegraded},
					{URL: "https://c.example.com", Status: vidlinks.LinkOK},
				}}, nil
			},
		}
		reg := prometheus.NewRegistry()
		svc, err := vlprom.NewExtractionService(next, reg)
		require.NoError(t, err)

		result, err := svc.Extract(context.Background(), &vidlinks.Request{SourceURL: "https://www.youtube.com/watch?v=abc"})

		require.NoError(t, err)
		assert.Len(t, result.Links, 3)

		expected := `
# HELP vidlinks_extract_requests_total Extraction requests by outcome.
# TYPE vidlinks_extract_requests_total counter
vidlinks_extract_requests_total{outcome="ok"} 1
# HELP vidlinks_links_total Enriched links by status.
# TYPE vidlinks_links_total counter
vidlinks_links_total{status="degraded"} 1
vidlinks_links_total{status="ok"} 2
`
		err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
			"vidlinks_extract_requests_total", "vidlinks_links_total")
		assert.NoError(t, err)
		assert.Equal(t, 1, testutil.CollectAndCount(reg, "vidlinks_extract_duration_seconds"))
	})

	t.Run("records error code as outcome", func(t *testing.T) {
		t.Parallel()

		next := &mock.ExtractionService{
			ExtractFn: func(context.Context, *vidlinks.Request) (*vidlinks.Result, error) {
				return nil, vidlinks.Errorf(vidlinks.EUPSTREAM, "HTTP 429")
			},
		}
		reg := prometheus.NewRegistry()
		svc, err := vlprom.NewExtractionService(next, reg)
		require.NoError(t, err)

		_, err = svc.Extract(context.Background(), &vidlinks.Request{SourceURL: "https://www.youtube.com/watch?v=abc"})
		require.Error(t, err)

		_, err = svc.Extract(context.Background(), &vidlinks.Request{SourceURL: "https://www.youtube.com/watch?v=abc"})
		require.Error(t, err)

		expected := `
# HELP vidlinks_extract_requests_total Extraction requests by outcome.
# TYPE vidlinks_extract_requests_total counter
vidlinks_extract_requests_total{outcome="upstream"} 2
`
		err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "vidlinks_extract_requests_total")
		assert.NoError(t, err)
		assert.Equal(t, 0, testutil.CollectAndCount(reg, "vidlinks_links_total"))
	})

	t.Run("labels plain errors as internal", func(t *testing.T) {
		t.Parallel()

		next := &mock.ExtractionService{
			ExtractFn: func(context.Context, *vidlinks.Request) (*vidlinks.Result, error) {
				return nil, errors.New("boom")
			},
		}
		reg := prometheus.NewRegistry()
		svc, err := vlprom.NewExtractionService(next, reg)
		require.NoError(t, err)

		_, err = svc.Extract(context.Background(), &vidlinks.Request{SourceURL: "https://www.youtube.com/watch?v=abc"})

		require.EqualError(t, err, "boom")

		expected := `
# HELP vidlinks_extract_requests_total Extraction requests by outcome.
# TYPE vidlinks_extract_requests_total counter
vidlinks_extract_requests_total{outcome="internal"} 1
`
		err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "vidlinks_extract_requests_total")
		assert.NoError(t, err)
	})

	t.Run("fails on duplicate registration", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		_, err := vlprom.NewExtractionService(&mock.ExtractionService{}, reg)
		require.NoError(t, err)

		_, err = vlprom.NewExtractionService(&mock.ExtractionService{}, reg)

		require.Error(t, err)
	})
}
