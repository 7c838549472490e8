package goquery

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// interactableQuery is the fixed selector union for candidate controls:
// buttons (kept even when disabled so the inventory can report
// enabled=false), visible-type enabled inputs, enabled selects and
// textareas, anchors with a real destination, ARIA buttons that aren't
// disabled, and anything wired to a click handler or data-action.
const interactableQuery = `button, ` +
	`input:not([type="hidden"]):not([disabled]), ` +
	`select:not([disabled]), ` +
	`textarea:not([disabled]), ` +
	`a[href]:not([href=""]):not([href="#"]), ` +
	`[role="button"]:not([aria-disabled="true"]), ` +
	`[onclick], ` +
	`[data-action]`

// defaultScope is used when the caller passes an empty scope selector.
const defaultScope = "body"

// ParseInteractables inventories clickable/fillable controls within the
// subtree matched by scope. Unlike the tree builders this is a single flat
// query, not a pipeline traversal: the document is queried once with the
// fixed selector union and each match is classified independently.
func (p *Parser) ParseInteractables(raw string, scope string, opts *pagesift.InteractableOptions) (result *pagesift.InteractablesResult) {
	start := time.Now()

	if scope == "" {
		scope = defaultScope
	}

	defer func() {
		if r := recover(); r != nil {
			result = interactablesFailure(scope, start, pagesift.Errorf(pagesift.EINTERNAL, "interactable extraction failed: %v", r))
		}
	}()

	o := normalizeInteractableOptions(opts)

	if err := validateInput(raw); err != nil {
		return interactablesFailure(scope, start, err)
	}
	doc, err := newDocument(raw)
	if err != nil {
		return interactablesFailure(scope, start, err)
	}

	scopeSel := doc.Find(scope).First()
	if scopeSel.Length() == 0 {
		return interactablesFailure(scope, start, pagesift.Errorf(pagesift.ENOTFOUND, "Scope element not found: %s", scope))
	}

	matches := childMatches(scopeSel)
	truncated := len(matches) > o.MaxElements
	if truncated {
		matches = matches[:o.MaxElements]
	}

	elements := make([]pagesift.InteractableElement, 0, len(matches))
	for _, match := range matches {
		el := buildInteractable(match)
		if !el.Visible && !o.IncludeHidden {
			continue
		}
		elements = append(elements, el)
	}

	serialized, _ := json.Marshal(elements)

	return &pagesift.InteractablesResult{
		Elements: elements,
		Metadata: pagesift.InteractableMetadata{
			Timestamp:   timestamp(),
			Count:       len(elements),
			Scope:       scope,
			ExecutionMS: elapsedMS(start),
			SizeBytes:   len(serialized),
			Truncated:   truncated,
		},
	}
}

// childMatches runs the fixed query under the scope element.
func childMatches(scope *goquery.Selection) []*goquery.Selection {
	var matches []*goquery.Selection
	scope.Find(interactableQuery).Each(func(_ int, sel *goquery.Selection) {
		matches = append(matches, sel)
	})
	return matches
}

// buildInteractable classifies one matched control.
func buildInteractable(sel *goquery.Selection) pagesift.InteractableElement {
	tag := nodeTag(sel)
	role, _ := sel.Attr("role")

	el := pagesift.InteractableElement{
		Selector: uniqueSelector(sel),
		Type:     interactableType(tag, role),
		Text:     interactableText(sel),
		Enabled:  isEnabled(sel),
		Visible:  isVisible(sel),
	}

	if tag == "input" {
		inputType, _ := sel.Attr("type")
		if inputType == "" {
			inputType = "text"
		}
		el.InputType = inputType
		el.Value, _ = sel.Attr("value")
		el.Placeholder, _ = sel.Attr("placeholder")
	}

	return el
}

// interactableText picks the first non-empty label for a control, probing
// text content first and accessibility attributes last.
func interactableText(sel *goquery.Selection) string {
	candidates := []string{
		sel.Text(),
		attrOrEmpty(sel, "value"),
		attrOrEmpty(sel, "title"),
		attrOrEmpty(sel, "alt"),
		attrOrEmpty(sel, "aria-label"),
		attrOrEmpty(sel, "placeholder"),
	}
	for _, c := range candidates {
		if c = pagesift.CompactText(strings.TrimSpace(c)); c != "" {
			return c
		}
	}
	return ""
}

// isEnabled reports whether the control accepts interaction: no disabled
// attribute and not aria-disabled.
func isEnabled(sel *goquery.Selection) bool {
	if hasAttr(sel, "disabled") {
		return false
	}
	if v, _ := sel.Attr("aria-disabled"); v == "true" {
		return false
	}
	return true
}

func attrOrEmpty(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return v
}

// elapsedMS returns wall-clock milliseconds since start, rounded to two
// decimals.
func elapsedMS(start time.Time) float64 {
	ms := float64(time.Since(start)) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}

func interactablesFailure(scope string, start time.Time, err error) *pagesift.InteractablesResult {
	return &pagesift.InteractablesResult{
		Elements: []pagesift.InteractableElement{},
		Metadata: pagesift.InteractableMetadata{
			Timestamp:   timestamp(),
			Scope:       scope,
			ExecutionMS: elapsedMS(start),
		},
		Error: pagesift.ErrorMessage(err),
	}
}
