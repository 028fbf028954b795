package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/vidlinks"
	vlhttp "github.com/fwojciec/vidlinks/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends browser headers", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		got := <-headers
		assert.Equal(t, vlhttp.DefaultUserAgent, got.Get("User-Agent"))
		assert.Equal(t, "en-US,en;q=0.9", got.Get("Accept-Language"))
	})

	t.Run("respects custom user agent option", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agents <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher(vlhttp.WithUserAgent("test-agent/1.0"))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/1.0", <-agents)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher(vlhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("<title>Not Found</title>"))
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("limits body size", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher(vlhttp.WithMaxBodySize(4))

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "0123", html)
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-2")
			// "Žluťoučký" in ISO-8859-2.
			_, _ = w.Write([]byte{0xAE, 'l', 'u', 0xBB, 'o', 'u', 0xE8, 'k', 0xFD})
		}))
		defer server.Close()

		fetcher := vlhttp.NewFetcher()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "Žluťoučký", html)
	})
}

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	utf8Body := []byte("Jelení jerky")

	t.Run("treats missing charset as UTF-8", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Jelení jerky", vlhttp.DecodeBody(utf8Body, "text/html"))
		assert.Equal(t, "Jelení jerky", vlhttp.DecodeBody(utf8Body, ""))
	})

	t.Run("treats latin-1 declaration as UTF-8", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Jelení jerky", vlhttp.DecodeBody(utf8Body, "text/html; charset=ISO-8859-1"))
		assert.Equal(t, "Jelení jerky", vlhttp.DecodeBody(utf8Body, "text/html; charset=windows-1252"))
	})

	t.Run("falls back to UTF-8 for unknown charset", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Jelení jerky", vlhttp.DecodeBody(utf8Body, "text/html; charset=x-made-up"))
	})

	t.Run("replaces invalid UTF-8 sequences", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a�b", vlhttp.DecodeBody([]byte{'a', 0xFF, 'b'}, "text/html"))
	})
}

// Compile-time verification that Fetcher implements vidlinks.Fetcher
var _ vidlinks.Fetcher = (*vlhttp.Fetcher)(nil)
