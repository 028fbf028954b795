// Package gemini implements vidlinks.Shortener using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/vidlinks"
	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/genai"
)

// DefaultModel is the model used to shorten titles.
const DefaultModel = "gemini-2.5-flash"

// maxClients bounds the number of per-key clients kept alive.
const maxClients = 16

// Ensure Shortener implements vidlinks.Shortener at compile time.
var _ vidlinks.Shortener = (*Shortener)(nil)

// Shortener shortens product titles with a Gemini model. The API key is
// supplied per call, so one Shortener serves callers with different keys.
type Shortener struct {
	model   string
	baseURL string
	clients *lru.Cache[string, *genai.Client]
}

// Option configures a Shortener.
type Option func(*Shortener)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(s *Shortener) {
		s.model = model
	}
}

// WithBaseURL overrides the Gemini API endpoint.
func WithBaseURL(url string) Option {
	return func(s *Shortener) {
		s.baseURL = url
	}
}

// NewShortener creates a new Shortener.
func NewShortener(opts ...Option) *Shortener {
	s := &Shortener{model: DefaultModel}
	for _, opt := range opts {
		opt(s)
	}
	// lru.New only fails for a non-positive size.
	s.clients, _ = lru.New[string, *genai.Client](maxClients)
	return s
}

// Shorten asks the model for a catchy title of at most 25 characters.
// Returns an empty string and no error when apiKey is empty.
func (s *Shortener) Shorten(ctx context.Context, text, apiKey string) (string, error) {
	if apiKey == "" {
		return "", nil
	}
	if text == "" {
		return "", vidlinks.Errorf(vidlinks.EINVALID, "text required")
	}

	client, err := s.client(ctx, apiKey)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", vidlinks.Errorf(vidlinks.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

func (s *Shortener) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	if c, ok := s.clients.Get(apiKey); ok {
		return c, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	s.clients.Add(apiKey, c)
	return c, nil
}

// BuildConfig returns the GenerateContentConfig for shortening calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// BuildPrompt builds the prompt asking for a shortened title.
func BuildPrompt(text string) string {
	return fmt.Sprintf("Shorten the following product title to maximum %d characters. "+
		"It must make sense and be catchy. Original: '%s'. Return ONLY the shortened title.",
		vidlinks.MaxShortTitleLength, text)
}
