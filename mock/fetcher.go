package mock

import (
	"context"

	"github.com/fwojciec/vidlinks"
)

var _ vidlinks.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of vidlinks.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ vidlinks.TitleFetcher = (*TitleFetcher)(nil)

// TitleFetcher is a mock implementation of vidlinks.TitleFetcher.
type TitleFetcher struct {
	FetchTitleFn func(ctx context.Context, url string) string
}

func (f *TitleFetcher) FetchTitle(ctx context.Context, url string) string {
	return f.FetchTitleFn(ctx, url)
}

var _ vidlinks.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of vidlinks.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
