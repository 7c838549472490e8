package goquery_test

import (
	"strings"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectTags gathers every tag in a structured tree, depth first.
func collectTags(el *pagesift.ParsedElement, tags *[]string) {
	*tags = append(*tags, el.Tag)
	for _, child := range el.Children {
		collectTags(child, tags)
	}
}

func TestParseStructured(t *testing.T) {
	t.Parallel()

	p := goquery.NewParser()

	t.Run("prunes script subtrees", func(t *testing.T) {
		t.Parallel()

		result := p.ParseStructured(`<div><h1>Hi</h1><script>x()</script></div>`, nil)

		require.Empty(t, result.Error)
		require.NotNil(t, result.Content)
		assert.Equal(t, "div", result.Content.Tag)
		require.Len(t, result.Content.Children, 1)

		h1 := result.Content.Children[0]
		assert.Equal(t, "h1", h1.Tag)
		assert.Equal(t, "Hi", h1.Text)
		assert.Equal(t, "div > h1", h1.Selector)

		var tags []string
		collectTags(result.Content, &tags)
		assert.NotContains(t, tags, "script")
	})

	t.Run("excluded tags never appear", func(t *testing.T) {
		t.Parallel()

		html := `<div>
	<style>.x{color:red}</style>
	<noscript>enable js</noscript>
	<p>content</p>
</div>`
		result := p.ParseStructured(html, nil)

		require.Empty(t, result.Error)
		var tags []string
		collectTags(result.Content, &tags)
		for _, tag := range []string{"script", "style", "noscript", "meta", "link", "head"} {
			assert.NotContains(t, tags, tag)
		}
	})

	t.Run("respects max depth", func(t *testing.T) {
		t.Parallel()

		html := `<div><section><article><p>deep text</p></article></section></div>`
		result := p.ParseStructured(html, &pagesift.ParseOptions{MaxDepth: 2, MaxTextLength: 1000})

		require.Empty(t, result.Error)
		require.Len(t, result.Content.Children, 1)
		section := result.Content.Children[0]
		require.Len(t, section.Children, 1)
		article := section.Children[0]
		assert.Empty(t, article.Children)
	})

	t.Run("truncates text to exact length", func(t *testing.T) {
		t.Parallel()

		html := "<p>" + strings.Repeat("word ", 100) + "</p>"
		result := p.ParseStructured(html, &pagesift.ParseOptions{MaxDepth: 5, MaxTextLength: 40})

		require.Empty(t, result.Error)
		assert.Len(t, result.Content.Text, 40)
		assert.True(t, strings.HasSuffix(result.Content.Text, "..."))
	})

	t.Run("extracts link attributes by default", func(t *testing.T) {
		t.Parallel()

		result := p.ParseStructured(`<a href="/docs" title="Docs">Documentation</a>`, nil)

		require.Empty(t, result.Error)
		assert.Equal(t, "a", result.Content.Tag)
		assert.Equal(t, "/docs", result.Content.Href)
		assert.Equal(t, "Docs", result.Content.Title)
		assert.Equal(t, "Documentation", result.Content.Text)
	})

	t.Run("omits link attributes when disabled", func(t *testing.T) {
		t.Parallel()

		opts := pagesift.DefaultParseOptions()
		opts.IncludeLinks = false
		result := p.ParseStructured(`<a href="/docs">Documentation</a>`, &opts)

		require.Empty(t, result.Error)
		assert.Empty(t, result.Content.Href)
		assert.Equal(t, "Documentation", result.Content.Text)
	})

	t.Run("meaningful tags survive without text", func(t *testing.T) {
		t.Parallel()

		result := p.ParseStructured(`<div><img src="/logo.png" alt="logo"><span></span></div>`, nil)

		require.Empty(t, result.Error)
		require.Len(t, result.Content.Children, 1)
		img := result.Content.Children[0]
		assert.Equal(t, "img", img.Tag)
		assert.Equal(t, "/logo.png", img.Src)
		assert.Equal(t, "logo", img.Alt)
	})

	t.Run("keeps body as root for multi-rooted input", func(t *testing.T) {
		t.Parallel()

		result := p.ParseStructured(`<p>one</p><p>two</p>`, nil)

		require.Empty(t, result.Error)
		assert.Equal(t, "body", result.Content.Tag)
		require.Len(t, result.Content.Children, 2)
		assert.Equal(t, "p:nth-of-type(1)", result.Content.Children[0].Selector)
		assert.Equal(t, "p:nth-of-type(2)", result.Content.Children[1].Selector)
	})

	t.Run("id shortcut in selectors", func(t *testing.T) {
		t.Parallel()

		result := p.ParseStructured(`<div id="main"><p>text</p></div>`, nil)

		require.Empty(t, result.Error)
		assert.Equal(t, "#main", result.Content.Selector)
		require.Len(t, result.Content.Children, 1)
		assert.Equal(t, "#main > p", result.Content.Children[0].Selector)
	})
}
