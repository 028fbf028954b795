// Package enrich resolves page titles and short display labels for links
// extracted from video descriptions.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/vidlinks"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of links enriched in parallel.
const DefaultConcurrency = 10

// Pipeline enriches links concurrently.
type Pipeline struct {
	TitleFetcher vidlinks.TitleFetcher
	Shortener    *vidlinks.TitleShortener
	RateLimiter  vidlinks.DomainLimiter
	Concurrency  int
	Logger       *slog.Logger
}

// ProgressEvent reports progress during enrichment.
type ProgressEvent struct {
	Completed int
	Total     int
	Link      vidlinks.Link
	Error     error
}

// ProgressFunc is a callback for reporting enrichment progress.
type ProgressFunc func(event ProgressEvent)

// linkResult holds the outcome of enriching a single link.
type linkResult struct {
	position int
	link     vidlinks.Link
	err      error
}

// Enrich resolves the title and short title of every link.
//
// The returned slice has the same length and order as links. A link whose
// enrichment fails is degraded to its label; the batch always completes.
// The progress callback, if provided, receives one event per link.
func (p *Pipeline) Enrich(ctx context.Context, links []vidlinks.Link, credential string, progress ProgressFunc) []vidlinks.Link {
	if len(links) == 0 {
		return []vidlinks.Link{}
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan linkResult, len(links))

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, link := range links {
			g.Go(func() error {
				resultCh <- p.enrichLink(ctx, i, link, credential)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]vidlinks.Link, len(links))
	completed := 0
	total := len(links)
	for result := range resultCh {
		results[result.position] = result.link

		if result.err != nil {
			p.logger().Warn("link degraded",
				"url", result.link.URL,
				"label", result.link.Label,
				"err", result.err,
			)
		}
		completed++
		if progress != nil {
			progress(ProgressEvent{
				Completed: completed,
				Total:     total,
				Link:      result.link,
				Error:     result.err,
			})
		}
	}

	return results
}

// enrichLink resolves a single link. Panics in collaborators are recovered
// and reported as a degraded link.
func (p *Pipeline) enrichLink(ctx context.Context, position int, link vidlinks.Link, credential string) (result linkResult) {
	result.position = position
	defer func() {
		if r := recover(); r != nil {
			result.link = link.Degrade()
			result.err = fmt.Errorf("enrich %s: panic: %v", link.URL, r)
		}
	}()

	if p.RateLimiter != nil {
		if u, err := url.Parse(link.URL); err == nil {
			if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
				result.link = link.Degrade()
				result.err = fmt.Errorf("rate limit %s: %w", u.Host, err)
				return result
			}
		}
	}

	title := p.TitleFetcher.FetchTitle(ctx, link.URL)
	fullTitle := title
	if fullTitle == "" {
		fullTitle = link.Label
	}

	link.ResolvedTitle = title
	link.ShortTitle = p.Shortener.Shorten(ctx, fullTitle, credential)
	link.Status = vidlinks.LinkOK
	result.link = link
	return result
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
