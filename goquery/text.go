package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
	"golang.org/x/net/html"
)

const (
	// directTextMin is the minimum length for an element's own text nodes
	// to stand in for the whole subtree.
	directTextMin = 2

	// smallSubtreeChars and smallSubtreeChildren bound when a container's
	// full subtree text is still worth surfacing. Larger subtrees flood the
	// output with boilerplate repeated on every ancestor.
	smallSubtreeChars    = 100
	smallSubtreeChildren = 3
)

// extractText picks the text to attach to a node. Leaves get their full
// (truncated) text. Containers prefer their direct text when it says
// something; otherwise the subtree text is used only for small, leaf-like
// containers.
func extractText(sel *goquery.Selection, maxLen int) string {
	full := pagesift.CompactText(sel.Text())
	if full == "" {
		return ""
	}

	childCount := sel.Children().Length()
	if childCount == 0 {
		return pagesift.Truncate(full, maxLen)
	}

	direct := pagesift.CompactText(directText(sel))
	if len(direct) > directTextMin {
		return pagesift.Truncate(direct, maxLen)
	}

	if len(full) <= smallSubtreeChars && childCount <= smallSubtreeChildren {
		return pagesift.Truncate(full, maxLen)
	}

	return ""
}

// directText concatenates the text nodes that are direct children of the
// selection's first node, excluding descendant element text.
func directText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	for c := sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
