// Package slog provides logging decorators for pagesift services.
package slog

import (
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingParser implements pagesift.Parser.
var _ pagesift.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with operation logging. Because Parser
// methods report failures inside the result envelope rather than as
// returned errors, the decorator logs the envelope's error message.
type LoggingParser struct {
	next   pagesift.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next pagesift.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseStructured delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseStructured(html string, opts *pagesift.ParseOptions) *pagesift.StructuredResult {
	begin := time.Now()
	result := p.next.ParseStructured(html, opts)
	p.logger.Info("parse structured",
		"bytes", len(html),
		"duration", time.Since(begin),
		"err", result.Error,
	)
	return result
}

// ParseDOMMap delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseDOMMap(html string, opts *pagesift.DOMMapOptions) *pagesift.DOMMapResult {
	begin := time.Now()
	result := p.next.ParseDOMMap(html, opts)
	p.logger.Info("parse dom map",
		"bytes", len(html),
		"duration", time.Since(begin),
		"err", result.Error,
	)
	return result
}

// ParseInteractables delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseInteractables(html string, scope string, opts *pagesift.InteractableOptions) *pagesift.InteractablesResult {
	begin := time.Now()
	result := p.next.ParseInteractables(html, scope, opts)
	p.logger.Info("parse interactables",
		"bytes", len(html),
		"scope", scope,
		"count", len(result.Elements),
		"duration", time.Since(begin),
		"err", result.Error,
	)
	return result
}

// Metadata delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Metadata(html string) pagesift.PageMetadata {
	begin := time.Now()
	md := p.next.Metadata(html)
	p.logger.Info("extract metadata",
		"bytes", len(html),
		"title", md.Title,
		"duration", time.Since(begin),
	)
	return md
}
