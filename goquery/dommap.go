package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pagesift/pagesift"
)

// domMapHooks instantiates the traversal kernel for DOM map parsing.
// Compared to the structured pipeline it additionally denies boilerplate
// classes, extracts interactive attributes, caps children at MaxChildren,
// and (in interactive-only mode) filters and reorders children by
// importance before capping.
func domMapHooks() hooks[*pagesift.DOMMapNode, pagesift.DOMMapOptions] {
	manager := NewManager(BasicExtractor{}, InteractiveExtractor{})

	var h hooks[*pagesift.DOMMapNode, pagesift.DOMMapOptions]

	h.preValidate = func(sel *goquery.Selection, depth int, opts pagesift.DOMMapOptions) bool {
		return depth <= opts.MaxDepth && !isExcludedTag(nodeTag(sel)) && !hasExcludedClass(sel)
	}

	h.createBase = func(sel *goquery.Selection) *pagesift.DOMMapNode {
		return &pagesift.DOMMapNode{
			Tag:      nodeTag(sel),
			Selector: uniqueSelector(sel),
			Children: []*pagesift.DOMMapNode{},
		}
	}

	h.extractAttributes = func(sel *goquery.Selection, node *pagesift.DOMMapNode, _ pagesift.DOMMapOptions) {
		attrs := manager.Extract(sel)
		node.ID = attrs["id"]
		node.Class = attrs["class"]
		node.Type = attrs["type"]
		node.Placeholder = attrs["placeholder"]
		node.Value = attrs["value"]
		node.Name = attrs["name"]
		node.Role = attrs["role"]
		node.AriaLabel = attrs["ariaLabel"]

		// A class that can't round-trip through a selector is useless for
		// re-location; drop it.
		if node.Class != "" && !validClassAttr(node.Class) {
			node.Class = ""
		}

		if href, ok := sel.Attr("href"); ok && href != "" {
			node.Href = href
		}
	}

	h.extractText = func(sel *goquery.Selection, node *pagesift.DOMMapNode, opts pagesift.DOMMapOptions) {
		node.Text = extractText(sel, opts.MaxTextLength)
	}

	h.processChildren = func(sel *goquery.Selection, depth int, node *pagesift.DOMMapNode, opts pagesift.DOMMapOptions) {
		children := childSelections(sel)
		if opts.IncludeInteractiveOnly {
			var important []*goquery.Selection
			for _, child := range children {
				if isImportant(child) {
					important = append(important, child)
				}
			}
			sortByImportance(important)
			children = important
		}
		if len(children) > opts.MaxChildren {
			children = children[:opts.MaxChildren]
		}
		for _, child := range children {
			if parsed, ok := parseElement(child, depth+1, opts, h); ok {
				node.Children = append(node.Children, parsed)
			}
		}
	}

	h.postValidate = func(node *pagesift.DOMMapNode, opts pagesift.DOMMapOptions) bool {
		if !opts.IncludeInteractiveOnly {
			return true
		}
		return isInteractiveTag(node.Tag) || node.ID != "" || node.Class != "" || len(node.Children) > 0
	}

	return h
}

// validClassAttr reports whether every class name in the attribute parses
// as a CSS class selector.
func validClassAttr(class string) bool {
	names := strings.Fields(class)
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if _, err := cascadia.Parse("." + name); err != nil {
			return false
		}
	}
	return true
}
