package mock

import (
	"context"

	"github.com/fwojciec/vidlinks"
)

var _ vidlinks.Shortener = (*Shortener)(nil)

// Shortener is a mock implementation of vidlinks.Shortener.
type Shortener struct {
	ShortenFn func(ctx context.Context, text, credential string) (string, error)
}

func (s *Shortener) Shorten(ctx context.Context, text, credential string) (string, error) {
	return s.ShortenFn(ctx, text, credential)
}
