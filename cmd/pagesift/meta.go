package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	md := deps.Parser.Metadata(html)

	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
