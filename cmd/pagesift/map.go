package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagesift/pagesift"
)

// Run executes the map command.
func (c *MapCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	opts := pagesift.DefaultDOMMapOptions()
	opts.MaxDepth = c.MaxDepth
	opts.MaxChildren = c.MaxChildren
	opts.MaxTextLength = c.MaxText
	opts.IncludeInteractiveOnly = c.InteractiveOnly

	result := deps.Parser.ParseDOMMap(html, &opts)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
