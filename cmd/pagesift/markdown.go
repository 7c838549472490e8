package main

import (
	"fmt"

	"github.com/pagesift/pagesift"
)

// Run executes the markdown command: main content extraction followed by
// Markdown conversion.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	extracted, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	if extracted.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", extracted.Title)
	}
	fmt.Fprintln(deps.Stdout, md)

	return nil
}
