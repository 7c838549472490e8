package mock

import (
	"github.com/pagesift/pagesift"
)

var _ pagesift.Parser = (*Parser)(nil)

// Parser is a mock implementation of pagesift.Parser.
type Parser struct {
	ParseStructuredFn    func(html string, opts *pagesift.ParseOptions) *pagesift.StructuredResult
	ParseDOMMapFn        func(html string, opts *pagesift.DOMMapOptions) *pagesift.DOMMapResult
	ParseInteractablesFn func(html string, scope string, opts *pagesift.InteractableOptions) *pagesift.InteractablesResult
	MetadataFn           func(html string) pagesift.PageMetadata
}

func (p *Parser) ParseStructured(html string, opts *pagesift.ParseOptions) *pagesift.StructuredResult {
	return p.ParseStructuredFn(html, opts)
}

func (p *Parser) ParseDOMMap(html string, opts *pagesift.DOMMapOptions) *pagesift.DOMMapResult {
	return p.ParseDOMMapFn(html, opts)
}

func (p *Parser) ParseInteractables(html string, scope string, opts *pagesift.InteractableOptions) *pagesift.InteractablesResult {
	return p.ParseInteractablesFn(html, scope, opts)
}

func (p *Parser) Metadata(html string) pagesift.PageMetadata {
	return p.MetadataFn(html)
}
