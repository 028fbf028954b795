package http

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vidlinks"
)

// Ensure TitleFetcher implements vidlinks.TitleFetcher at compile time.
var _ vidlinks.TitleFetcher = (*TitleFetcher)(nil)

// TitleFetcher resolves page titles by fetching the page and reading its
// <title> element.
type TitleFetcher struct {
	fetcher vidlinks.Fetcher
}

// NewTitleFetcher creates a new TitleFetcher using the given Fetcher.
func NewTitleFetcher(fetcher vidlinks.Fetcher) *TitleFetcher {
	return &TitleFetcher{fetcher: fetcher}
}

// FetchTitle returns the page title at url, or "" if it cannot be fetched.
func (f *TitleFetcher) FetchTitle(ctx context.Context, url string) string {
	html, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		return ""
	}
	return ParseTitle(html)
}

// ParseTitle returns the trimmed text of the first <title> element in html.
// Entities are decoded and inner whitespace, including newlines, is kept.
func ParseTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
