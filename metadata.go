package vidlinks

import "context"

// Metadata is the title and free-text description of a source page.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MetadataSource retrieves the title and description of a video page.
type MetadataSource interface {
	// FetchMetadata fetches the page at sourceURL and extracts its metadata.
	FetchMetadata(ctx context.Context, sourceURL string) (*Metadata, error)
}

// Request asks for the links of a single source page.
type Request struct {
	// SourceURL is the video page to read the description from.
	SourceURL string `json:"url"`

	// Credential is passed through to the Shortener. Optional.
	Credential string `json:"api_key,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *Request) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "No URL provided")
	}
	return nil
}

// Result is the enriched outcome for a source page.
type Result struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Links       []Link `json:"links"`
}

// ExtractionService produces enriched links for source pages.
type ExtractionService interface {
	// Extract fetches the source page metadata, extracts the links from its
	// description and enriches them. Only metadata failures are reported as
	// errors; individual links degrade instead.
	Extract(ctx context.Context, req *Request) (*Result, error)
}
