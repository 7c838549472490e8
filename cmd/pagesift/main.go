package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pagesift/pagesift/goquery"
	"github.com/pagesift/pagesift/htmltomarkdown"
	"github.com/pagesift/pagesift/rod"
	pslog "github.com/pagesift/pagesift/slog"
	"github.com/pagesift/pagesift/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Browser fetcher, wired only when an input is a URL.
	Fetcher *rod.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire core services into dependencies
	deps.Parser = goquery.NewParser()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Parser = pslog.NewLoggingParser(deps.Parser, logger)
	}
	deps.Extractor = trafilatura.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	// Launch a browser only when an input needs live fetching
	if needsFetcher(cli) {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Fetcher = fetcher
		deps.Fetcher = fetcher
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

// needsFetcher reports whether any input argument is an http(s) URL.
func needsFetcher(cli *CLI) bool {
	inputs := append([]string{}, cli.Structured.Inputs...)
	inputs = append(inputs,
		cli.Map.Input,
		cli.Controls.Input,
		cli.Meta.Input,
		cli.Markdown.Input,
	)
	for _, input := range inputs {
		if isURL(input) {
			return true
		}
	}
	return false
}

// isURL reports whether the input should be fetched from a live page.
func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
