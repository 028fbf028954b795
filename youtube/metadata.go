// Package youtube implements vidlinks.MetadataSource for YouTube watch pages.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vidlinks"
)

// UnknownTitle is reported when a watch page carries no title.
const UnknownTitle = "Unknown Video"

// titleSuffix is appended by YouTube to every watch page title.
const titleSuffix = " - YouTube"

// playerResponseMarker precedes the player response JSON in watch page HTML.
const playerResponseMarker = "ytInitialPlayerResponse = "

// Ensure MetadataSource implements vidlinks.MetadataSource at compile time.
var _ vidlinks.MetadataSource = (*MetadataSource)(nil)

// MetadataSource reads video titles and descriptions from watch pages.
type MetadataSource struct {
	fetcher vidlinks.Fetcher
}

// NewMetadataSource creates a new MetadataSource using the given Fetcher.
func NewMetadataSource(fetcher vidlinks.Fetcher) *MetadataSource {
	return &MetadataSource{fetcher: fetcher}
}

// FetchMetadata fetches the watch page at sourceURL and extracts its title
// and full description.
func (s *MetadataSource) FetchMetadata(ctx context.Context, sourceURL string) (*vidlinks.Metadata, error) {
	html, err := s.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	return ParseMetadata(html), nil
}

// playerResponse is the subset of ytInitialPlayerResponse we read.
type playerResponse struct {
	VideoDetails struct {
		Title            string `json:"title"`
		ShortDescription string `json:"shortDescription"`
	} `json:"videoDetails"`
}

// ParseMetadata extracts the title and description from watch page HTML.
//
// The description comes from the player response embedded in the page,
// which holds the full text with line breaks. The meta description, which
// YouTube truncates and flattens, is used only when the player response is
// missing.
func ParseMetadata(html string) *vidlinks.Metadata {
	md := &vidlinks.Metadata{}
	player, hasPlayer := parsePlayerResponse(html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		md.Title = strings.TrimSpace(doc.Find("title").First().Text())
		md.Description = doc.Find(`meta[name="description"]`).AttrOr("content", "")
	}
	md.Title = strings.TrimSuffix(md.Title, titleSuffix)

	if hasPlayer {
		if md.Title == "" {
			md.Title = player.VideoDetails.Title
		}
		if player.VideoDetails.ShortDescription != "" {
			md.Description = player.VideoDetails.ShortDescription
		}
	}
	if md.Title == "" {
		md.Title = UnknownTitle
	}

	return md
}

// parsePlayerResponse decodes the JSON object following playerResponseMarker.
// The decoder stops at the end of the object and ignores the script after it.
func parsePlayerResponse(html string) (playerResponse, bool) {
	var resp playerResponse
	idx := strings.Index(html, playerResponseMarker)
	if idx < 0 {
		return resp, false
	}
	dec := json.NewDecoder(strings.NewReader(html[idx+len(playerResponseMarker):]))
	if err := dec.Decode(&resp); err != nil {
		return resp, false
	}
	return resp, true
}
