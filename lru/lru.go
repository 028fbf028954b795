// Package lru provides caching decorators for vidlinks services backed by
// a fixed-size least-recently-used cache.
package lru

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/vidlinks"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is the default number of entries per cache.
const DefaultSize = 100

// Ensure TitleFetcher implements vidlinks.TitleFetcher at compile time.
var _ vidlinks.TitleFetcher = (*TitleFetcher)(nil)

// TitleFetcher memoizes resolved titles by URL.
// Empty titles are not cached so unreachable pages are retried later.
type TitleFetcher struct {
	next  vidlinks.TitleFetcher
	cache *lru.Cache[string, string]
	group singleflight.Group
}

// NewTitleFetcher wraps next with a cache holding up to size titles.
// A non-positive size selects DefaultSize.
func NewTitleFetcher(next vidlinks.TitleFetcher, size int) *TitleFetcher {
	return &TitleFetcher{
		next:  next,
		cache: newCache(size),
	}
}

// FetchTitle returns the cached title for url or delegates to the wrapped
// fetcher. Concurrent lookups of the same URL share one fetch.
func (f *TitleFetcher) FetchTitle(ctx context.Context, url string) string {
	if title, ok := f.cache.Get(url); ok {
		return title
	}

	v, _, _ := f.group.Do(url, func() (any, error) {
		title := f.next.FetchTitle(ctx, url)
		if title != "" {
			f.cache.Add(url, title)
		}
		return title, nil
	})
	return v.(string)
}

// Len returns the number of cached titles.
func (f *TitleFetcher) Len() int {
	return f.cache.Len()
}

// Ensure Shortener implements vidlinks.Shortener at compile time.
var _ vidlinks.Shortener = (*Shortener)(nil)

// Shortener memoizes successful shortening results by text and credential.
// Failures and empty answers are not cached.
type Shortener struct {
	next  vidlinks.Shortener
	cache *lru.Cache[string, string]
}

// NewShortener wraps next with a cache holding up to size results.
// A non-positive size selects DefaultSize.
func NewShortener(next vidlinks.Shortener, size int) *Shortener {
	return &Shortener{
		next:  next,
		cache: newCache(size),
	}
}

// Shorten returns the cached result for text and credential or delegates
// to the wrapped shortener.
func (s *Shortener) Shorten(ctx context.Context, text, credential string) (string, error) {
	key := shortenerKey(text, credential)
	if short, ok := s.cache.Get(key); ok {
		return short, nil
	}

	short, err := s.next.Shorten(ctx, text, credential)
	if err != nil {
		return "", err
	}
	if short != "" {
		s.cache.Add(key, short)
	}
	return short, nil
}

// Len returns the number of cached results.
func (s *Shortener) Len() int {
	return s.cache.Len()
}

// shortenerKey builds a cache key from text and a hash of the credential.
// Credentials themselves are never stored.
func shortenerKey(text, credential string) string {
	return strconv.FormatUint(xxhash.Sum64String(credential), 16) + "\x00" + text
}

func newCache(size int) *lru.Cache[string, string] {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, string](size)
	return cache
}
