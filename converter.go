package pagesift

// Converter converts HTML to Markdown. The downstream messaging layer
// forwards the result as markdown-like text.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
