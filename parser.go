package pagesift

// Parser turns raw HTML markup into structured representations. Every
// method is one synchronous pass over an ephemeral parsed document: nothing
// is cached or shared across calls, so implementations are safe for
// concurrent use provided their underlying HTML parser is reentrant.
//
// Methods never return an error or panic past their boundary. Failures are
// reported inside the result envelope with its Error field populated and
// best-effort empty placeholders elsewhere.
type Parser interface {
	// ParseStructured builds a pruned, content-focused tree for
	// summarization. A nil opts uses DefaultParseOptions.
	ParseStructured(html string, opts *ParseOptions) *StructuredResult

	// ParseDOMMap builds a tree retaining interaction-relevant attributes.
	// A nil opts uses DefaultDOMMapOptions.
	ParseDOMMap(html string, opts *DOMMapOptions) *DOMMapResult

	// ParseInteractables inventories clickable/fillable controls within the
	// subtree matched by scope (an empty scope means "body"). A nil opts
	// uses DefaultInteractableOptions.
	ParseInteractables(html string, scope string, opts *InteractableOptions) *InteractablesResult

	// Metadata extracts page metadata. It never fails: invalid input yields
	// empty-title metadata with a fresh timestamp.
	Metadata(html string) PageMetadata
}
