package vidlinks

import "context"

// Fetcher retrieves page bodies from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the body decoded as UTF-8.
	// Non-200 responses are reported as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// TitleFetcher resolves the human-readable title of a destination page.
type TitleFetcher interface {
	// FetchTitle returns the trimmed content of the page's <title> tag.
	// All failures degrade to an empty string; no error is ever reported.
	FetchTitle(ctx context.Context, url string) string
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed.
	Wait(ctx context.Context, domain string) error
}
