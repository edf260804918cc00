package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/goquery"
	"github.com/fwojciec/helpdex/load"
	"github.com/fwojciec/helpdex/mem"
	helpslog "github.com/fwojciec/helpdex/slog"
	"github.com/fwojciec/helpdex/sqlite"
	"github.com/fwojciec/helpdex/tsv"
	"github.com/fwojciec/helpdex/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration and snapshot paths. Set before calling Run().
	ConfigPath string
	DBPath     string

	// SQLite database backing the snapshot store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Registry helpdex.ManualRegistry
	Store    helpdex.ManualStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("helpdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'helpdex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	cfg, err := yaml.LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set HELPDEX_CONFIG to use a different configuration path")
		return fmt.Errorf("failed to load configuration at %q: %w", m.ConfigPath, err)
	}
	deps.Config = cfg

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set HELPDEX_DB to use a different snapshot path")
		return fmt.Errorf("failed to open snapshot store at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Registry = mem.NewRegistry()
	m.Store = sqlite.NewManualStore(m.DB)
	deps.Registry = m.Registry
	deps.Store = m.Store

	parsers, err := buildParsers(cfg, logger)
	if err != nil {
		return err
	}

	deps.Loader = &load.Loader{
		Registry: m.Registry,
		Parsers:  parsers,
		Store:    m.Store,
		Logger:   logger,
	}

	// The load command always rebuilds; everything else prefers the
	// snapshot and falls back to a full build when it is stale.
	if cmd != "load" {
		ok, err := deps.Loader.Restore(ctx)
		if err != nil {
			logger.Warn("snapshot restore failed", "error", err)
			ok = false
		}
		if ok {
			deps.Topics = load.TopicFilter(m.Registry.Manuals())
		} else {
			res, err := deps.Loader.Load(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to build manuals: %w", err)
			}
			deps.Topics = res.Topics
		}
	}

	return kongCtx.Run(deps)
}

// buildParsers assembles the parser-selection table: configured rules
// first, then the default table (anchor for .html/.htm, tsv for anything
// else). First match wins.
func buildParsers(cfg *helpdex.Config, logger *slog.Logger) (helpdex.ParserRegistry, error) {
	anchor := &goquery.AnchorParser{Expand: cfg.ExpandLinks}
	index := &tsv.Parser{Expand: cfg.ExpandLinks}

	parsers := load.NewParsers()
	for _, rule := range cfg.Parsers {
		var p helpdex.Parser
		switch rule.Format {
		case "anchor", "html":
			p = anchor
		case "tsv":
			p = index
		default:
			return nil, helpdex.Errorf(helpdex.EINVALID, "unknown parser format %q", rule.Format)
		}
		if err := parsers.Register(rule.Pattern, p); err != nil {
			return nil, err
		}
	}
	if err := parsers.Register(`\.html?$`, anchor); err != nil {
		return nil, err
	}
	if err := parsers.Register(`.*`, index); err != nil {
		return nil, err
	}

	return helpslog.NewLoggingParsers(parsers, logger), nil
}

func defaultConfigPath() string {
	if path := os.Getenv("HELPDEX_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "helpdex.yaml")
}

func defaultDBPath() string {
	if path := os.Getenv("HELPDEX_DB"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "helpdex.db")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".helpdex")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
