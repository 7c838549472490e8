package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// excludedTags are never traversed. They carry no content or affordances
// worth surfacing to an assistant layer.
var excludedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"meta":     true,
	"link":     true,
	"head":     true,
}

// excludedClassFragments mark boilerplate subtrees to skip in DOM map
// traversal. Matching is case-insensitive substring matching, so short
// fragments cast a wide net (e.g. "ad" also catches "header"-like names).
// That is how the heuristic behaves on real pages; keep it.
var excludedClassFragments = []string{
	"ad",
	"banner",
	"popup",
	"sidebar",
	"advertisement",
	"tracking",
}

// interactiveTags are the elements a user can act on directly.
var interactiveTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"form":     true,
	"iframe":   true,
}

// meaningfulTags keep an otherwise empty structured node alive: the tag
// itself carries meaning even without text or children.
var meaningfulTags = map[string]bool{
	"a":      true,
	"button": true,
	"input":  true,
	"img":    true,
	"video":  true,
	"audio":  true,
	"iframe": true,
	"form":   true,
	"table":  true,
}

func isExcludedTag(tag string) bool {
	return excludedTags[strings.ToLower(tag)]
}

func isInteractiveTag(tag string) bool {
	return interactiveTags[strings.ToLower(tag)]
}

func isMeaningfulTag(tag string) bool {
	return meaningfulTags[strings.ToLower(tag)]
}

func hasExcludedClass(sel *goquery.Selection) bool {
	class, ok := sel.Attr("class")
	if !ok || class == "" {
		return false
	}
	class = strings.ToLower(class)
	for _, fragment := range excludedClassFragments {
		if strings.Contains(class, fragment) {
			return true
		}
	}
	return false
}

// isImportant reports whether an element is worth keeping in an
// interactive-only DOM map: an interactive tag, or anything addressable
// (id, class) or wired to a handler (onclick).
func isImportant(sel *goquery.Selection) bool {
	if isInteractiveTag(nodeTag(sel)) {
		return true
	}
	for _, attr := range []string{"id", "class", "onclick"} {
		if v, ok := sel.Attr(attr); ok && v != "" {
			return true
		}
	}
	return false
}

// sortByImportance orders elements for the interactive-only DOM map:
// id-bearing elements first, then interactive tags, otherwise stable.
func sortByImportance(sels []*goquery.Selection) {
	sort.SliceStable(sels, func(i, j int) bool {
		iID := hasAttr(sels[i], "id")
		jID := hasAttr(sels[j], "id")
		if iID != jID {
			return iID
		}
		iTag := isInteractiveTag(nodeTag(sels[i]))
		jTag := isInteractiveTag(nodeTag(sels[j]))
		if iTag != jTag {
			return iTag
		}
		return false
	})
}

// hiddenClassFragments mark elements conventionally hidden via CSS
// frameworks (Tailwind, Bootstrap, screen-reader-only utilities).
var hiddenClassFragments = []string{"hidden", "invisible", "sr-only"}

// hiddenStyleFragments are inline-style substrings that hide an element.
// Both spaced and unspaced forms are probed; "opacity:0" intentionally also
// matches partial opacities, matching the original heuristic.
var hiddenStyleFragments = []string{
	"display:none", "display: none",
	"visibility:hidden", "visibility: hidden",
	"opacity:0", "opacity: 0",
}

// isVisible infers visibility from attributes, inline style text and class
// names. Without a layout engine this is an approximation: anything not
// recognizably hidden defaults to visible.
func isVisible(sel *goquery.Selection) bool {
	if hasAttr(sel, "hidden") {
		return false
	}
	if v, _ := sel.Attr("aria-hidden"); v == "true" {
		return false
	}
	if style, ok := sel.Attr("style"); ok {
		style = strings.ToLower(style)
		for _, fragment := range hiddenStyleFragments {
			if strings.Contains(style, fragment) {
				return false
			}
		}
	}
	if class, ok := sel.Attr("class"); ok {
		class = strings.ToLower(class)
		for _, fragment := range hiddenClassFragments {
			if strings.Contains(class, fragment) {
				return false
			}
		}
	}
	return true
}

// interactableType maps an element's tag and role to an interactable type.
// Anything clickable that isn't a recognized control reports as a button.
func interactableType(tag, role string) string {
	switch strings.ToLower(tag) {
	case "input":
		return pagesift.TypeInput
	case "select":
		return pagesift.TypeSelect
	case "textarea":
		return pagesift.TypeTextarea
	case "a":
		return pagesift.TypeLink
	case "button":
		return pagesift.TypeButton
	}
	if strings.EqualFold(role, "button") {
		return pagesift.TypeButton
	}
	return pagesift.TypeButton
}

func hasAttr(sel *goquery.Selection, name string) bool {
	_, ok := sel.Attr(name)
	return ok
}

// nodeTag returns the lowercase tag name of the selection's first node.
func nodeTag(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	return strings.ToLower(sel.Nodes[0].Data)
}
