// Package slog provides logging decorators for helpdex interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/helpdex"
)

// Ensure LoggingParsers implements helpdex.ParserRegistry.
var _ helpdex.ParserRegistry = (*LoggingParsers)(nil)

// LoggingParsers wraps a ParserRegistry with debug logging for parser
// selection.
type LoggingParsers struct {
	next   helpdex.ParserRegistry
	logger *slog.Logger
}

// NewLoggingParsers creates a new LoggingParsers.
func NewLoggingParsers(next helpdex.ParserRegistry, logger *slog.Logger) *LoggingParsers {
	return &LoggingParsers{next: next, logger: logger}
}

// Register delegates to the wrapped registry.
func (p *LoggingParsers) Register(pattern string, parser helpdex.Parser) error {
	return p.next.Register(pattern, parser)
}

// ForFilename selects a parser, logs the decision, and returns it.
func (p *LoggingParsers) ForFilename(filename string) (helpdex.Parser, error) {
	begin := time.Now()
	parser, err := p.next.ForFilename(filename)
	name := "(none)"
	if parser != nil {
		name = parser.Name()
	}
	p.logger.Debug("parser selection",
		"filename", filename,
		"parser", name,
		"duration", time.Since(begin),
	)
	return parser, err
}
