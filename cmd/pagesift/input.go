package main

import (
	"fmt"
	"io"
	"os"
)

// readInput resolves one input argument to raw HTML: "-" reads stdin, an
// http(s) URL is fetched from a live page, anything else is a file path.
func readInput(deps *Dependencies, input string) (string, error) {
	switch {
	case input == "-":
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil

	case isURL(input):
		html, err := deps.Fetcher.Fetch(deps.Ctx, input)
		if err != nil {
			return "", fmt.Errorf("failed to fetch %q: %w", input, err)
		}
		return html, nil

	default:
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read %q: %w", input, err)
		}
		return string(data), nil
	}
}
