package pagesift

import (
	"fmt"
	"strings"
)

// FormatOutline renders a structured content tree as markdown-like text
// for display or LLM context. Headings map to markdown headings, links and
// images to markdown inline syntax, list items to bullets; everything else
// contributes its text line.
func FormatOutline(el *ParsedElement) string {
	if el == nil {
		return ""
	}

	var lines []string
	appendOutline(el, &lines)
	return strings.Join(lines, "\n")
}

func appendOutline(el *ParsedElement, lines *[]string) {
	if line := outlineLine(el); line != "" {
		*lines = append(*lines, line)
	}
	for _, child := range el.Children {
		appendOutline(child, lines)
	}
}

func outlineLine(el *ParsedElement) string {
	switch el.Tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if el.Text == "" {
			return ""
		}
		level := int(el.Tag[1] - '0')
		return strings.Repeat("#", level) + " " + el.Text
	case "a":
		if el.Href == "" {
			return el.Text
		}
		text := el.Text
		if text == "" {
			text = el.Href
		}
		return fmt.Sprintf("[%s](%s)", text, el.Href)
	case "img":
		if el.Src == "" {
			return ""
		}
		return fmt.Sprintf("![%s](%s)", el.Alt, el.Src)
	case "li":
		if el.Text == "" {
			return ""
		}
		return "- " + el.Text
	default:
		return el.Text
	}
}
