package vidlinks_test

import (
	"testing"

	"github.com/fwojciec/vidlinks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for empty description", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, vidlinks.ExtractLinks(""))
	})

	t.Run("returns nothing when description has no URLs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, vidlinks.ExtractLinks("Just a video about cooking.\nNo links here."))
	})

	t.Run("uses text on the same line as label", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Pink Burn Drink: https://gymbeam.com/pink-burn")

		require.Len(t, links, 1)
		assert.Equal(t, "Pink Burn Drink", links[0].Label)
		assert.Equal(t, "https://gymbeam.com/pink-burn", links[0].URL)
	})

	t.Run("strips separators and arrows around same line label", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("  ➜ nope | Protein → https://shop.example.com/p?id=1 ←  ")

		require.Len(t, links, 1)
		// U+279C is outside the arrow block and stays.
		assert.Equal(t, "➜ nope | Protein", links[0].Label)
	})

	t.Run("strips trailing arrow block characters", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Jerky ↓↓ https://example.com/jerky")

		require.Len(t, links, 1)
		assert.Equal(t, "Jerky", links[0].Label)
	})

	t.Run("falls back to previous line when same line has no alphanumerics", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("My favourite creatine\n👉 -> https://example.com/creatine")

		require.Len(t, links, 1)
		assert.Equal(t, "My favourite creatine", links[0].Label)
	})

	t.Run("trims previous line label", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("   Shaker bottle   \r\nhttps://example.com/shaker")

		require.Len(t, links, 1)
		assert.Equal(t, "Shaker bottle", links[0].Label)
	})

	t.Run("ignores previous line that contains a URL", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Shop: https://example.com/shop\nhttps://example.com/other")

		require.Len(t, links, 2)
		assert.Equal(t, "Shop", links[0].Label)
		assert.Equal(t, vidlinks.PlaceholderLabel, links[1].Label)
	})

	t.Run("ignores empty previous line", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Title\n\nhttps://example.com/a")

		require.Len(t, links, 1)
		assert.Equal(t, "Link", links[0].Label)
	})

	t.Run("uses placeholder on first line without text", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("https://example.com/a")

		require.Len(t, links, 1)
		assert.Equal(t, "Link", links[0].Label)
	})

	t.Run("same line text wins over previous line", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Previous line\nSame line https://example.com/a")

		require.Len(t, links, 1)
		assert.Equal(t, "Same line", links[0].Label)
	})

	t.Run("labels each URL on a line against the original line", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Shop https://a.example.com and https://b.example.com")

		require.Len(t, links, 2)
		assert.Equal(t, "https://a.example.com", links[0].URL)
		assert.Equal(t, "Shop  and https://b.example.com", links[0].Label)
		assert.Equal(t, "https://b.example.com", links[1].URL)
		assert.Equal(t, "Shop https://a.example.com and", links[1].Label)
	})

	t.Run("preserves order of appearance including duplicates", func(t *testing.T) {
		t.Parallel()

		description := "Intro text\n" +
			"First: https://one.example.com/x\n" +
			"Second: https://two.example.com/y https://three.example.com/z\n" +
			"Again: https://one.example.com/x\n"

		links := vidlinks.ExtractLinks(description)

		urls := make([]string, 0, len(links))
		for _, l := range links {
			urls = append(urls, l.URL)
			assert.NotEmpty(t, l.URL)
			assert.NotEmpty(t, l.Label)
		}
		assert.Equal(t, []string{
			"https://one.example.com/x",
			"https://two.example.com/y",
			"https://three.example.com/z",
			"https://one.example.com/x",
		}, urls)
	})

	t.Run("matches www prefix with path query and fragment", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("Code: http://www.example.co.uk/path/to?a=1&b=2#frag end")

		require.Len(t, links, 1)
		assert.Equal(t, "http://www.example.co.uk/path/to?a=1&b=2#frag", links[0].URL)
		assert.Equal(t, "Code:  end", links[0].Label)
	})

	t.Run("does not match scheme-less or non-http URLs", func(t *testing.T) {
		t.Parallel()

		links := vidlinks.ExtractLinks("www.example.com\nftp://example.com/file\nhttp://localhost")

		assert.Empty(t, links)
	})
}
