package vidlinks

// LinkStatus reports how a link's enrichment went.
type LinkStatus string

// LinkStatus constants.
const (
	// LinkOK means the link went through title resolution and shortening.
	// The resolved title may still be empty if the destination was unreachable.
	LinkOK LinkStatus = "ok"

	// LinkDegraded means enrichment failed unexpectedly and the link fell
	// back to its extracted label.
	LinkDegraded LinkStatus = "degraded"
)

// Link is a URL found in a description together with its display texts.
type Link struct {
	// Label is the text that accompanied the URL in the description.
	// Never empty; defaults to PlaceholderLabel.
	Label string `json:"label"`

	// URL is the absolute http(s) URL as it appeared in the text.
	URL string `json:"url"`

	// ResolvedTitle is the destination page's <title>, if it could be fetched.
	ResolvedTitle string `json:"resolved_title"`

	// ShortTitle is the display label derived by TitleShortener.
	ShortTitle string `json:"short_title"`

	Status LinkStatus `json:"status,omitempty"`
}

// Degrade returns a copy of the link that falls back to its label for both
// the resolved and the short title.
func (l Link) Degrade() Link {
	l.ResolvedTitle = l.Label
	l.ShortTitle = TruncateLabel(l.Label, MaxShortTitleLength)
	l.Status = LinkDegraded
	return l
}
