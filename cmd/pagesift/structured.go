package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagesift/pagesift"
	"golang.org/x/sync/errgroup"
)

// Run executes the structured command. Multiple inputs are parsed
// concurrently; output order matches argument order.
func (c *StructuredCmd) Run(deps *Dependencies) error {
	opts := pagesift.DefaultParseOptions()
	opts.MaxDepth = c.MaxDepth
	opts.MaxTextLength = c.MaxText
	opts.IncludeLinks = !c.NoLinks

	results := make([]*pagesift.StructuredResult, len(c.Inputs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, input := range c.Inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := readInput(deps, input)
			if err != nil {
				return err
			}
			results[i] = deps.Parser.ParseStructured(html, &opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	for i, result := range results {
		if len(c.Inputs) > 1 {
			fmt.Fprintf(deps.Stdout, "== %s ==\n", c.Inputs[i])
		}
		if c.Format == "text" {
			if result.Metadata.Title != "" {
				fmt.Fprintf(deps.Stdout, "%s\n\n", result.Metadata.Title)
			}
			if result.Error != "" {
				fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
			}
			fmt.Fprintln(deps.Stdout, pagesift.FormatOutline(result.Content))
			continue
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
	}

	return nil
}
