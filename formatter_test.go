package pagesift_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestFormatOutline(t *testing.T) {
	t.Parallel()

	t.Run("nil tree", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagesift.FormatOutline(nil))
	})

	t.Run("renders headings links and list items", func(t *testing.T) {
		t.Parallel()

		tree := &pagesift.ParsedElement{
			Tag:      "div",
			Selector: "div",
			Children: []*pagesift.ParsedElement{
				{Tag: "h1", Selector: "h1", Text: "Getting Started"},
				{Tag: "p", Selector: "p", Text: "Install the tool first."},
				{Tag: "a", Selector: "a", Text: "docs", Href: "/docs"},
				{Tag: "li", Selector: "li", Text: "step one"},
			},
		}

		got := pagesift.FormatOutline(tree)

		assert.Equal(t, "# Getting Started\nInstall the tool first.\n[docs](/docs)\n- step one", got)
	})

	t.Run("images render with alt text", func(t *testing.T) {
		t.Parallel()

		tree := &pagesift.ParsedElement{
			Tag:      "img",
			Selector: "img",
			Src:      "/logo.png",
			Alt:      "logo",
		}

		assert.Equal(t, "![logo](/logo.png)", pagesift.FormatOutline(tree))
	})

	t.Run("containers without text contribute nothing", func(t *testing.T) {
		t.Parallel()

		tree := &pagesift.ParsedElement{
			Tag:      "div",
			Selector: "div",
			Children: []*pagesift.ParsedElement{
				{Tag: "span", Selector: "span", Text: "only line"},
			},
		}

		assert.Equal(t, "only line", pagesift.FormatOutline(tree))
	})
}
