package pagesift

// DOMMapFormat identifies the DOM map payload shape for downstream
// consumers.
const DOMMapFormat = "dom-map"

// DOMMapNode is one node of the DOM map: a richer tree than the structured
// content, retaining the attributes an automation layer needs to interact
// with the page (input types, roles, accessible names).
type DOMMapNode struct {
	Tag         string        `json:"tag"`
	Selector    string        `json:"selector"`
	ID          string        `json:"id,omitempty"`
	Class       string        `json:"class,omitempty"`
	Text        string        `json:"text,omitempty"`
	Type        string        `json:"type,omitempty"`
	Href        string        `json:"href,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Value       string        `json:"value,omitempty"`
	Name        string        `json:"name,omitempty"`
	Role        string        `json:"role,omitempty"`
	AriaLabel   string        `json:"ariaLabel,omitempty"`
	Children    []*DOMMapNode `json:"children"`
}

// DOMMapOptions configures DOM map parsing. Options are merged with
// defaults per call and never mutated afterwards.
type DOMMapOptions struct {
	// MaxDepth bounds how far below the root element traversal descends.
	MaxDepth int `json:"maxDepth"`

	// MaxChildren caps the number of children retained per node, keeping
	// the map compact on wide trees.
	MaxChildren int `json:"maxChildren"`

	// MaxTextLength bounds the text captured per node.
	MaxTextLength int `json:"maxTextLength"`

	// IncludeInteractiveOnly prunes the map to nodes that are themselves
	// interactive (interactive tag, or id/class present) or that contain a
	// surviving interactive descendant. Retained children are ordered by
	// importance rather than document order.
	IncludeInteractiveOnly bool `json:"includeInteractiveOnly"`
}

// DefaultDOMMapOptions returns the default DOM map options.
func DefaultDOMMapOptions() DOMMapOptions {
	return DOMMapOptions{
		MaxDepth:      10,
		MaxChildren:   20,
		MaxTextLength: 100,
	}
}

// DOMMapResult is the envelope returned by DOM map parsing. Format is
// always DOMMapFormat. On failure Error is set and DOMMap holds an empty
// body placeholder.
type DOMMapResult struct {
	URL       string      `json:"url,omitempty"`
	Title     string      `json:"title,omitempty"`
	Timestamp string      `json:"timestamp"`
	Selector  string      `json:"selector,omitempty"`
	DOMMap    *DOMMapNode `json:"domMap"`
	Format    string      `json:"format"`
	Error     string      `json:"error,omitempty"`
}
