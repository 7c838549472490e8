package pagesift

// PageMetadata describes the page a result was extracted from. It is
// attached to every result envelope.
type PageMetadata struct {
	// Title is the page title, empty when none could be determined.
	Title string `json:"title"`

	// URL is the canonical page URL when the markup declares one.
	URL string `json:"url,omitempty"`

	// Timestamp is the extraction time in RFC 3339 UTC.
	Timestamp string `json:"timestamp"`

	// ContentHash is the xxHash of the raw input as a hex string. Callers
	// can compare hashes across calls to detect unchanged input without
	// diffing trees.
	ContentHash string `json:"contentHash,omitempty"`
}
