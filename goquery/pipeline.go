package goquery

import "github.com/PuerkitoBio/goquery"

// hooks parameterizes the traversal kernel over a result type R and an
// options type O. Both concrete pipelines (structured content and DOM map)
// are instances of this one kernel; the hooks differ, the drive order does
// not.
type hooks[R any, O any] struct {
	// preValidate gates traversal before any work happens (tag deny-list,
	// depth bound, class deny-list).
	preValidate func(sel *goquery.Selection, depth int, opts O) bool

	// createBase builds the result node with its tag and selector.
	createBase func(sel *goquery.Selection) R

	// extractAttributes populates the node's attribute fields.
	extractAttributes func(sel *goquery.Selection, node R, opts O)

	// extractText populates the node's text.
	extractText func(sel *goquery.Selection, node R, opts O)

	// processChildren recurses into children and attaches the survivors.
	processChildren func(sel *goquery.Selection, depth int, node R, opts O)

	// postValidate decides whether the populated node survives pruning.
	postValidate func(node R, opts O) bool
}

// parseElement drives the hooks in their fixed order and returns the
// populated node, or ok=false when pre- or post-validation rejects the
// element.
func parseElement[R any, O any](sel *goquery.Selection, depth int, opts O, p hooks[R, O]) (R, bool) {
	var zero R
	if !p.preValidate(sel, depth, opts) {
		return zero, false
	}
	node := p.createBase(sel)
	p.extractAttributes(sel, node, opts)
	p.extractText(sel, node, opts)
	p.processChildren(sel, depth, node, opts)
	if !p.postValidate(node, opts) {
		return zero, false
	}
	return node, true
}

// childSelections returns one selection per direct child element, in
// document order.
func childSelections(sel *goquery.Selection) []*goquery.Selection {
	var children []*goquery.Selection
	sel.Children().Each(func(_ int, child *goquery.Selection) {
		children = append(children, child)
	})
	return children
}
