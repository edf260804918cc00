package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/bloom"
	"github.com/fwojciec/helpdex/load"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *helpdex.Config
	Registry helpdex.ManualRegistry
	Store    helpdex.ManualStore
	Loader   *load.Loader

	// Topics answers "is this topic indexed anywhere?" with no false
	// negatives, letting lookups skip the search on a definite miss.
	Topics *bloom.TopicFilter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Lookup   LookupCmd   `cmd:"" help:"Look up a topic for a mode"`
	Topics   TopicsCmd   `cmd:"" help:"List all indexed topics"`
	Complete CompleteCmd `cmd:"" help:"Run a prefix-completion query"`
	Manuals  ManualsCmd  `cmd:"" help:"List registered manuals"`
	Export   ExportCmd   `cmd:"" help:"Export a manual as a tab-delimited index"`
	Load     LoadCmd     `cmd:"" help:"Rebuild manuals from the configured sources"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Mode  string `arg:"" help:"Context mode to search in"`
	Topic string `arg:"" help:"Exact topic to look up"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct {
	Mode string `short:"m" help:"Restrict to manuals for a mode"`
}

// CompleteCmd is the "complete" subcommand.
type CompleteCmd struct {
	Mode   string `arg:"" help:"Context mode to search in"`
	Prefix string `arg:"" optional:"" help:"Typed prefix"`
	Repeat int    `short:"r" help:"Repeat the same prefix N times to page through matches"`
	Page   int    `short:"p" help:"Matches shown per page"`
}

// ManualsCmd is the "manuals" subcommand.
type ManualsCmd struct {
	Mode string `short:"m" help:"Restrict to manuals for a mode"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Manual string `arg:"" help:"Manual name"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct{}
