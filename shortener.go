package vidlinks

import "context"

// Shortener is an external, unreliable title shortening collaborator,
// typically backed by a language model. It is only consulted when the
// deterministic rules in TitleShortener cannot produce a short enough title.
type Shortener interface {
	// Shorten returns a shorter rendition of text. An empty result with a nil
	// error means the shortener is not configured for the credential.
	// The result length is not guaranteed.
	Shorten(ctx context.Context, text, credential string) (string, error)
}
