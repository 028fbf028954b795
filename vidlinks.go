// Package vidlinks turns a video page's description into a list of labeled,
// titled links. It extracts URLs together with the text that describes them,
// resolves each destination's page title, and derives a short display label
// suitable for buttons and link cards.
//
// This package contains domain types, interfaces, and the pure extraction
// and shortening algorithms. Implementations of the interfaces live in
// subdirectories named after their primary dependency (e.g., http/, gemini/,
// lru/, slog/).
package vidlinks
