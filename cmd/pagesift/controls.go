package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagesift/pagesift"
)

// Run executes the controls command.
func (c *ControlsCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	opts := pagesift.DefaultInteractableOptions()
	opts.IncludeHidden = c.IncludeHidden
	opts.MaxElements = c.MaxElements

	result := deps.Parser.ParseInteractables(html, c.Scope, &opts)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
