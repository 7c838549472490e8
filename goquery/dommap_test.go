package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxChildrenOf returns the widest children slice in a DOM map tree.
func maxChildrenOf(node *pagesift.DOMMapNode) int {
	widest := len(node.Children)
	for _, child := range node.Children {
		if w := maxChildrenOf(child); w > widest {
			widest = w
		}
	}
	return widest
}

func TestParseDOMMap(t *testing.T) {
	t.Parallel()

	p := goquery.NewParser()

	t.Run("interactive only keeps just the button", func(t *testing.T) {
		t.Parallel()

		opts := pagesift.DefaultDOMMapOptions()
		opts.IncludeInteractiveOnly = true
		result := p.ParseDOMMap(`<div><p>text</p><button id="go">Go</button></div>`, &opts)

		require.Empty(t, result.Error)
		require.NotNil(t, result.DOMMap)
		require.Len(t, result.DOMMap.Children, 1)

		button := result.DOMMap.Children[0]
		assert.Equal(t, "button", button.Tag)
		assert.Equal(t, "#go", button.Selector)
		assert.Equal(t, "go", button.ID)
		assert.Equal(t, "Go", button.Text)
	})

	t.Run("id-bearing children sort first in interactive only mode", func(t *testing.T) {
		t.Parallel()

		opts := pagesift.DefaultDOMMapOptions()
		opts.IncludeInteractiveOnly = true
		html := `<div><button>plain</button><input id="email" value="x"><a class="nav" href="/a">a</a></div>`
		result := p.ParseDOMMap(html, &opts)

		require.Empty(t, result.Error)
		require.Len(t, result.DOMMap.Children, 3)
		assert.Equal(t, "input", result.DOMMap.Children[0].Tag)
		assert.Equal(t, "button", result.DOMMap.Children[1].Tag)
		assert.Equal(t, "a", result.DOMMap.Children[2].Tag)
	})

	t.Run("caps children at max children", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<ul>")
		for i := 0; i < 25; i++ {
			fmt.Fprintf(&b, "<li>item %d</li>", i)
		}
		b.WriteString("</ul>")

		result := p.ParseDOMMap(b.String(), nil)

		require.Empty(t, result.Error)
		assert.Equal(t, "ul", result.DOMMap.Tag)
		assert.LessOrEqual(t, maxChildrenOf(result.DOMMap), 20)
		assert.Len(t, result.DOMMap.Children, 20)
	})

	t.Run("skips boilerplate classes", func(t *testing.T) {
		t.Parallel()

		html := `<div><div class="sidebar"><button>X</button></div><p>hello</p></div>`
		result := p.ParseDOMMap(html, nil)

		require.Empty(t, result.Error)
		require.Len(t, result.DOMMap.Children, 1)
		assert.Equal(t, "p", result.DOMMap.Children[0].Tag)
	})

	t.Run("extracts interactive attributes", func(t *testing.T) {
		t.Parallel()

		html := `<input type="email" name="email" placeholder="you@example.com" value="a@b.c" aria-label="Email">`
		result := p.ParseDOMMap(html, nil)

		require.Empty(t, result.Error)
		node := result.DOMMap
		assert.Equal(t, "input", node.Tag)
		assert.Equal(t, "email", node.Type)
		assert.Equal(t, "email", node.Name)
		assert.Equal(t, "you@example.com", node.Placeholder)
		assert.Equal(t, "a@b.c", node.Value)
		assert.Equal(t, "Email", node.AriaLabel)
	})

	t.Run("drops invalid class attributes", func(t *testing.T) {
		t.Parallel()

		result := p.ParseDOMMap(`<div class="123"><p>x</p></div>`, nil)

		require.Empty(t, result.Error)
		assert.Empty(t, result.DOMMap.Class)

		result = p.ParseDOMMap(`<div class="btn primary"><p>x</p></div>`, nil)

		require.Empty(t, result.Error)
		assert.Equal(t, "btn primary", result.DOMMap.Class)
	})

	t.Run("reads href manually", func(t *testing.T) {
		t.Parallel()

		result := p.ParseDOMMap(`<a href="/docs" role="link">Docs</a>`, nil)

		require.Empty(t, result.Error)
		assert.Equal(t, "/docs", result.DOMMap.Href)
		assert.Equal(t, "link", result.DOMMap.Role)
	})

	t.Run("result envelope carries format and selector", func(t *testing.T) {
		t.Parallel()

		result := p.ParseDOMMap(`<div id="root"><p>x</p></div>`, nil)

		require.Empty(t, result.Error)
		assert.Equal(t, pagesift.DOMMapFormat, result.Format)
		assert.Equal(t, "#root", result.Selector)
		assert.NotEmpty(t, result.Timestamp)
	})
}
