package pagesift

// Interactable element types.
const (
	TypeButton   = "button"
	TypeInput    = "input"
	TypeSelect   = "select"
	TypeLink     = "link"
	TypeTextarea = "textarea"
)

// InteractableElement describes one clickable or fillable control found
// within a scope. Selector re-locates the element on a live page.
type InteractableElement struct {
	Selector    string `json:"selector"`
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	Enabled     bool   `json:"enabled"`
	Visible     bool   `json:"visible"`
	InputType   string `json:"inputType,omitempty"`
	Value       string `json:"value,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// InteractableOptions configures interactable extraction. Options are
// merged with defaults per call and never mutated afterwards.
type InteractableOptions struct {
	// IncludeHidden keeps elements that fail the visibility heuristics.
	IncludeHidden bool `json:"includeHidden"`

	// MaxElements caps the number of matches processed; excess matches are
	// discarded and the result is flagged as truncated.
	MaxElements int `json:"maxElements"`
}

// DefaultInteractableOptions returns the default extraction options.
func DefaultInteractableOptions() InteractableOptions {
	return InteractableOptions{
		IncludeHidden: false,
		MaxElements:   100,
	}
}

// InteractableMetadata describes one extraction run. Truncated is an
// observability signal, not an error: it reports that matches beyond
// MaxElements were discarded.
type InteractableMetadata struct {
	Timestamp   string  `json:"timestamp"`
	Count       int     `json:"count"`
	Scope       string  `json:"scope"`
	ExecutionMS float64 `json:"executionMs"`
	SizeBytes   int     `json:"sizeBytes"`
	Truncated   bool    `json:"truncated,omitempty"`
}

// InteractablesResult is the envelope returned by interactable extraction.
// On failure Error is set and Elements is empty.
type InteractablesResult struct {
	Elements []InteractableElement `json:"elements"`
	Metadata InteractableMetadata  `json:"metadata"`
	Error    string                `json:"error,omitempty"`
}
