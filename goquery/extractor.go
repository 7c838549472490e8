package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// AttributeExtractor pulls a bounded subset of attributes from an element.
// Extractors are pure and composable: pipelines assemble different ordered
// combinations of them via Manager.
type AttributeExtractor interface {
	// CanExtract reports whether this extractor applies to the element.
	CanExtract(sel *goquery.Selection) bool

	// Extract returns the partial attribute set this extractor owns.
	// Absent attributes are omitted from the map.
	Extract(sel *goquery.Selection) map[string]string
}

// Manager composes an ordered list of extractors and merges their partial
// results, later extractors overwriting earlier keys.
type Manager struct {
	extractors []AttributeExtractor
}

// NewManager creates a Manager running the given extractors in order.
func NewManager(extractors ...AttributeExtractor) *Manager {
	return &Manager{extractors: extractors}
}

// Extract runs every applicable extractor and merges the results.
func (m *Manager) Extract(sel *goquery.Selection) map[string]string {
	merged := make(map[string]string)
	for _, e := range m.extractors {
		if !e.CanExtract(sel) {
			continue
		}
		for k, v := range e.Extract(sel) {
			merged[k] = v
		}
	}
	return merged
}

// BasicExtractor pulls identity attributes present on any element.
type BasicExtractor struct{}

// CanExtract always applies.
func (BasicExtractor) CanExtract(*goquery.Selection) bool { return true }

// Extract returns id, class and title. A class that is blank after
// trimming is dropped.
func (BasicExtractor) Extract(sel *goquery.Selection) map[string]string {
	attrs := make(map[string]string)
	if id, ok := sel.Attr("id"); ok && id != "" {
		attrs["id"] = id
	}
	if class, ok := sel.Attr("class"); ok && strings.TrimSpace(class) != "" {
		attrs["class"] = class
	}
	if title, ok := sel.Attr("title"); ok && title != "" {
		attrs["title"] = title
	}
	return attrs
}

// LinkExtractor pulls reference attributes (href/src/alt). Pipelines gate
// it behind their IncludeLinks option.
type LinkExtractor struct{}

// CanExtract applies to elements carrying any reference attribute.
func (LinkExtractor) CanExtract(sel *goquery.Selection) bool {
	return hasAttr(sel, "href") || hasAttr(sel, "src") || hasAttr(sel, "alt")
}

// Extract returns href, src and alt when present.
func (LinkExtractor) Extract(sel *goquery.Selection) map[string]string {
	attrs := make(map[string]string)
	for _, name := range []string{"href", "src", "alt"} {
		if v, ok := sel.Attr(name); ok && v != "" {
			attrs[name] = v
		}
	}
	return attrs
}

// InteractiveExtractor pulls the attributes an automation layer needs to
// drive a control: input type, placeholder, current value, name, role and
// accessible label.
type InteractiveExtractor struct{}

// CanExtract applies to the fixed interactive tag set.
func (InteractiveExtractor) CanExtract(sel *goquery.Selection) bool {
	return isInteractiveTag(nodeTag(sel))
}

// Extract returns the interactive attribute subset. The value reflects the
// control's state as parsed: the value attribute for inputs, the text
// content for textareas, the selected option for selects. A live DOM would
// report the value property instead; without one this is the closest
// static equivalent.
func (InteractiveExtractor) Extract(sel *goquery.Selection) map[string]string {
	attrs := make(map[string]string)
	if v, ok := sel.Attr("type"); ok && v != "" {
		attrs["type"] = v
	}
	if v, ok := sel.Attr("placeholder"); ok && v != "" {
		attrs["placeholder"] = v
	}
	if v, ok := sel.Attr("name"); ok && v != "" {
		attrs["name"] = v
	}
	if v, ok := sel.Attr("role"); ok && v != "" {
		attrs["role"] = v
	}
	if v, ok := sel.Attr("aria-label"); ok && v != "" {
		attrs["ariaLabel"] = v
	}
	if v := controlValue(sel); v != "" {
		attrs["value"] = v
	}
	return attrs
}

// controlValue approximates the live value property of a form control.
func controlValue(sel *goquery.Selection) string {
	switch nodeTag(sel) {
	case "input":
		v, _ := sel.Attr("value")
		return v
	case "textarea":
		return sel.Text()
	case "select":
		opt := sel.Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = sel.Find("option").First()
		}
		if opt.Length() == 0 {
			return ""
		}
		if v, ok := opt.Attr("value"); ok {
			return v
		}
		return pagesift.CompactText(opt.Text())
	}
	return ""
}
