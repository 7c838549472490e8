package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cssIdentifier matches ids safe to use in a #id selector without escaping.
var cssIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// uniqueSelector synthesizes a stable CSS selector for the selection's
// first node so downstream automation can re-locate the element on a live
// page. An id-bearing ancestor short-circuits the path; otherwise segments
// are tag names qualified with :nth-of-type whenever same-tag siblings
// exist. Segments are joined with the child combinator up to body.
func uniqueSelector(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	return uniqueSelectorForNode(sel.Nodes[0])
}

func uniqueSelectorForNode(node *html.Node) string {
	tag := strings.ToLower(node.Data)
	if tag == "body" || tag == "html" {
		return tag
	}

	var segments []string
	for n := node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		tag := strings.ToLower(n.Data)
		if tag == "body" || tag == "html" {
			break
		}

		if id := attrValue(n, "id"); id != "" && cssIdentifier.MatchString(id) {
			segments = append([]string{"#" + id}, segments...)
			return strings.Join(segments, " > ")
		}

		segments = append([]string{segmentFor(n, tag)}, segments...)
	}

	return strings.Join(segments, " > ")
}

// segmentFor qualifies a tag with :nth-of-type only when the element has
// same-tag siblings, keeping selectors short on simple markup.
func segmentFor(n *html.Node, tag string) string {
	nth := 1
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type == html.ElementNode && strings.EqualFold(sib.Data, n.Data) {
			nth++
		}
	}
	following := 0
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode && strings.EqualFold(sib.Data, n.Data) {
			following++
		}
	}
	if nth > 1 || following > 0 {
		return fmt.Sprintf("%s:nth-of-type(%d)", tag, nth)
	}
	return tag
}

// attrValue returns the value of an attribute on a node.
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
