package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// structuredHooks instantiates the traversal kernel for structured content
// parsing. The manager is assembled per call so the link extractor is only
// present when IncludeLinks is set.
//
// Children are recursed without a width cap: content fidelity wins over
// compactness here, and only MaxDepth bounds the output.
func structuredHooks(manager *Manager) hooks[*pagesift.ParsedElement, pagesift.ParseOptions] {
	var h hooks[*pagesift.ParsedElement, pagesift.ParseOptions]

	h.preValidate = func(sel *goquery.Selection, depth int, opts pagesift.ParseOptions) bool {
		return depth <= opts.MaxDepth && !isExcludedTag(nodeTag(sel))
	}

	h.createBase = func(sel *goquery.Selection) *pagesift.ParsedElement {
		return &pagesift.ParsedElement{
			Tag:      nodeTag(sel),
			Selector: uniqueSelector(sel),
			Children: []*pagesift.ParsedElement{},
		}
	}

	h.extractAttributes = func(sel *goquery.Selection, node *pagesift.ParsedElement, _ pagesift.ParseOptions) {
		attrs := manager.Extract(sel)
		node.ID = attrs["id"]
		node.Class = attrs["class"]
		node.Title = attrs["title"]
		node.Href = attrs["href"]
		node.Src = attrs["src"]
		node.Alt = attrs["alt"]
	}

	h.extractText = func(sel *goquery.Selection, node *pagesift.ParsedElement, opts pagesift.ParseOptions) {
		node.Text = extractText(sel, opts.MaxTextLength)
	}

	h.processChildren = func(sel *goquery.Selection, depth int, node *pagesift.ParsedElement, opts pagesift.ParseOptions) {
		for _, child := range childSelections(sel) {
			if parsed, ok := parseElement(child, depth+1, opts, h); ok {
				node.Children = append(node.Children, parsed)
			}
		}
	}

	h.postValidate = func(node *pagesift.ParsedElement, _ pagesift.ParseOptions) bool {
		return node.Text != "" || len(node.Children) > 0 || isMeaningfulTag(node.Tag)
	}

	return h
}

// structuredManager assembles the attribute extractors for a structured
// parse.
func structuredManager(opts pagesift.ParseOptions) *Manager {
	if opts.IncludeLinks {
		return NewManager(BasicExtractor{}, LinkExtractor{})
	}
	return NewManager(BasicExtractor{})
}
