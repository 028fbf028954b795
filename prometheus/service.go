// Package prometheus records extraction metrics with the Prometheus client.
package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/vidlinks"
	promclient "github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "vidlinks"

// Ensure ExtractionService implements vidlinks.ExtractionService at compile time.
var _ vidlinks.ExtractionService = (*ExtractionService)(nil)

// ExtractionService wraps a vidlinks.ExtractionService and records request
// counts by outcome, request latency, and enriched links by status.
type ExtractionService struct {
	next     vidlinks.ExtractionService
	requests *promclient.CounterVec
	duration promclient.Histogram
	links    *promclient.CounterVec
}

// NewExtractionService registers the extraction metrics with reg and
// returns a decorator around next.
func NewExtractionService(next vidlinks.ExtractionService, reg promclient.Registerer) (*ExtractionService, error) {
	s := &ExtractionService{
		next: next,
		requests: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: Namespace,
			Name:      "extract_requests_total",
			Help:      "Extraction requests by outcome.",
		}, []string{"outcome"}),
		duration: promclient.NewHistogram(promclient.HistogramOpts{
			Namespace: Namespace,
			Name:      "extract_duration_seconds",
			Help:      "Latency of extraction requests.",
			Buckets:   promclient.DefBuckets,
		}),
		links: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: Namespace,
			Name:      "links_total",
			Help:      "Enriched links by status.",
		}, []string{"status"}),
	}

	for _, c := range []promclient.Collector{s.requests, s.duration, s.links} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register extraction metrics: %w", err)
		}
	}
	return s, nil
}

// Extract delegates to the wrapped service and records the outcome.
func (s *ExtractionService) Extract(ctx context.Context, req *vidlinks.Request) (*vidlinks.Result, error) {
	begin := time.Now()
	result, err := s.next.Extract(ctx, req)
	s.duration.Observe(time.Since(begin).Seconds())

	if err != nil {
		s.requests.WithLabelValues(vidlinks.ErrorCode(err)).Inc()
		return nil, err
	}
	s.requests.WithLabelValues("ok").Inc()

	for _, l := range result.Links {
		status := l.Status
		if status == "" {
			status = vidlinks.LinkOK
		}
		s.links.WithLabelValues(string(status)).Inc()
	}
	return result, nil
}
