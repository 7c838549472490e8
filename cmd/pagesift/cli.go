package main

import (
	"context"
	"io"

	"github.com/pagesift/pagesift"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Parser    pagesift.Parser
	Extractor pagesift.Extractor
	Converter pagesift.Converter
	Fetcher   pagesift.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each parse operation to stderr"`

	Structured StructuredCmd `cmd:"" help:"Parse HTML into a structured content tree"`
	Map        MapCmd        `cmd:"" help:"Parse HTML into a DOM map for automation"`
	Controls   ControlsCmd   `cmd:"" help:"Inventory interactable elements"`
	Meta       MetaCmd       `cmd:"" help:"Extract page metadata"`
	Markdown   MarkdownCmd   `cmd:"" help:"Extract main content and convert to Markdown"`
}

// StructuredCmd is the "structured" subcommand.
type StructuredCmd struct {
	Inputs      []string `arg:"" help:"HTML inputs: file paths, '-' for stdin, or http(s) URLs"`
	MaxDepth    int      `default:"5" help:"Maximum traversal depth"`
	MaxText     int      `default:"1000" help:"Maximum text length per node"`
	NoLinks     bool     `help:"Skip href/src/alt attribute extraction"`
	Format      string   `default:"json" enum:"json,text" help:"Output format"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent parse limit for multiple inputs"`
}

// MapCmd is the "map" subcommand.
type MapCmd struct {
	Input           string `arg:"" help:"HTML input: file path, '-' for stdin, or an http(s) URL"`
	MaxDepth        int    `default:"10" help:"Maximum traversal depth"`
	MaxChildren     int    `default:"20" help:"Maximum children retained per node"`
	MaxText         int    `default:"100" help:"Maximum text length per node"`
	InteractiveOnly bool   `help:"Prune to interactive elements and their containers"`
}

// ControlsCmd is the "controls" subcommand.
type ControlsCmd struct {
	Input         string `arg:"" help:"HTML input: file path, '-' for stdin, or an http(s) URL"`
	Scope         string `short:"s" help:"CSS selector bounding the search (default body)"`
	IncludeHidden bool   `help:"Keep elements that fail the visibility heuristics"`
	MaxElements   int    `default:"100" help:"Maximum elements reported"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	Input string `arg:"" help:"HTML input: file path, '-' for stdin, or an http(s) URL"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	Input string `arg:"" help:"HTML input: file path, '-' for stdin, or an http(s) URL"`
}
