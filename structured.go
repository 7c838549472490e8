package pagesift

// ParsedElement is one node of the structured content tree. The tree is
// pruned for summarization: a node survives only if it carries text, has
// surviving children, or its tag is inherently meaningful (links, media,
// form controls, tables).
type ParsedElement struct {
	Tag      string           `json:"tag"`
	Selector string           `json:"selector"`
	Text     string           `json:"text,omitempty"`
	ID       string           `json:"id,omitempty"`
	Class    string           `json:"class,omitempty"`
	Href     string           `json:"href,omitempty"`
	Src      string           `json:"src,omitempty"`
	Alt      string           `json:"alt,omitempty"`
	Title    string           `json:"title,omitempty"`
	Children []*ParsedElement `json:"children"`
}

// ParseOptions configures structured content parsing. Options are merged
// with defaults per call and never mutated afterwards.
//
// Unlike the DOM map, the structured tree recurses over all direct children
// at every level: width is unbounded and only MaxDepth limits output size.
// Pathologically wide trees therefore produce proportionally wide output.
type ParseOptions struct {
	// MaxDepth bounds how far below the root element traversal descends.
	MaxDepth int `json:"maxDepth"`

	// IncludeLinks controls extraction of href/src/alt attributes.
	IncludeLinks bool `json:"includeLinks"`

	// MaxTextLength bounds the text captured per node.
	MaxTextLength int `json:"maxTextLength"`
}

// DefaultParseOptions returns the default structured parsing options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		MaxDepth:      5,
		IncludeLinks:  true,
		MaxTextLength: 1000,
	}
}

// StructuredResult is the envelope returned by structured parsing. On
// failure Error is set and Content holds an empty body placeholder so that
// callers never need a separate error channel.
type StructuredResult struct {
	Metadata PageMetadata   `json:"metadata"`
	Content  *ParsedElement `json:"content"`
	Error    string         `json:"error,omitempty"`
}
