// Package goquery implements the pagesift parsing engine on top of
// PuerkitoBio/goquery. Every entry point is one synchronous pass: validate,
// parse an ephemeral document, traverse, return an envelope. Failures never
// escape an entry point; they are converted into the envelope's error field
// with best-effort placeholders elsewhere.
package goquery

import (
	"github.com/pagesift/pagesift"
)

// Ensure Parser implements pagesift.Parser at compile time.
var _ pagesift.Parser = (*Parser)(nil)

// Parser implements pagesift.Parser. The zero value is not usable; create
// one with NewParser. Parser holds no per-call state and is safe for
// concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseStructured builds a pruned, content-focused tree for summarization.
func (p *Parser) ParseStructured(raw string, opts *pagesift.ParseOptions) (result *pagesift.StructuredResult) {
	defer func() {
		if r := recover(); r != nil {
			result = structuredFailure(pagesift.Errorf(pagesift.EINTERNAL, "structured parsing failed: %v", r))
		}
	}()

	o := normalizeParseOptions(opts)

	if err := validateInput(raw); err != nil {
		return structuredFailure(err)
	}
	doc, err := newDocument(raw)
	if err != nil {
		return structuredFailure(err)
	}

	content, ok := parseElement(rootSelection(doc), 0, o, structuredHooks(structuredManager(o)))
	if !ok {
		content = emptyParsedBody()
	}

	return &pagesift.StructuredResult{
		Metadata: pageMetadata(doc, raw),
		Content:  content,
	}
}

// ParseDOMMap builds a tree retaining interaction-relevant attributes.
func (p *Parser) ParseDOMMap(raw string, opts *pagesift.DOMMapOptions) (result *pagesift.DOMMapResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domMapFailure(pagesift.Errorf(pagesift.EINTERNAL, "DOM map parsing failed: %v", r))
		}
	}()

	o := normalizeDOMMapOptions(opts)

	if err := validateInput(raw); err != nil {
		return domMapFailure(err)
	}
	doc, err := newDocument(raw)
	if err != nil {
		return domMapFailure(err)
	}

	node, ok := parseElement(rootSelection(doc), 0, o, domMapHooks())
	if !ok {
		node = emptyMapBody()
	}

	md := pageMetadata(doc, raw)
	return &pagesift.DOMMapResult{
		URL:       md.URL,
		Title:     md.Title,
		Timestamp: md.Timestamp,
		Selector:  node.Selector,
		DOMMap:    node,
		Format:    pagesift.DOMMapFormat,
	}
}

// Metadata extracts page metadata. It never fails: invalid or unparseable
// input yields empty-title metadata with a fresh timestamp.
func (p *Parser) Metadata(raw string) (md pagesift.PageMetadata) {
	defer func() {
		if r := recover(); r != nil {
			md = pagesift.PageMetadata{Timestamp: timestamp()}
		}
	}()

	if err := validateInput(raw); err != nil {
		return pagesift.PageMetadata{Timestamp: timestamp()}
	}
	doc, err := newDocument(raw)
	if err != nil {
		return pagesift.PageMetadata{Timestamp: timestamp()}
	}
	return pageMetadata(doc, raw)
}

func structuredFailure(err error) *pagesift.StructuredResult {
	return &pagesift.StructuredResult{
		Metadata: pagesift.PageMetadata{Timestamp: timestamp()},
		Content:  emptyParsedBody(),
		Error:    pagesift.ErrorMessage(err),
	}
}

func domMapFailure(err error) *pagesift.DOMMapResult {
	node := emptyMapBody()
	return &pagesift.DOMMapResult{
		Timestamp: timestamp(),
		Selector:  node.Selector,
		DOMMap:    node,
		Format:    pagesift.DOMMapFormat,
		Error:     pagesift.ErrorMessage(err),
	}
}

func emptyParsedBody() *pagesift.ParsedElement {
	return &pagesift.ParsedElement{
		Tag:      "body",
		Selector: "body",
		Children: []*pagesift.ParsedElement{},
	}
}

func emptyMapBody() *pagesift.DOMMapNode {
	return &pagesift.DOMMapNode{
		Tag:      "body",
		Selector: "body",
		Children: []*pagesift.DOMMapNode{},
	}
}

func normalizeParseOptions(opts *pagesift.ParseOptions) pagesift.ParseOptions {
	if opts == nil {
		return pagesift.DefaultParseOptions()
	}
	o := *opts
	defaults := pagesift.DefaultParseOptions()
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaults.MaxDepth
	}
	if o.MaxTextLength <= 0 {
		o.MaxTextLength = defaults.MaxTextLength
	}
	return o
}

func normalizeDOMMapOptions(opts *pagesift.DOMMapOptions) pagesift.DOMMapOptions {
	if opts == nil {
		return pagesift.DefaultDOMMapOptions()
	}
	o := *opts
	defaults := pagesift.DefaultDOMMapOptions()
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaults.MaxDepth
	}
	if o.MaxChildren <= 0 {
		o.MaxChildren = defaults.MaxChildren
	}
	if o.MaxTextLength <= 0 {
		o.MaxTextLength = defaults.MaxTextLength
	}
	return o
}

func normalizeInteractableOptions(opts *pagesift.InteractableOptions) pagesift.InteractableOptions {
	if opts == nil {
		return pagesift.DefaultInteractableOptions()
	}
	o := *opts
	if o.MaxElements <= 0 {
		o.MaxElements = pagesift.DefaultInteractableOptions().MaxElements
	}
	return o
}
