// Package load builds manual registries from configured source documents.
// It reads each source, selects a parser by filename, and associates the
// resulting manual with its context modes. Failures are isolated per file:
// a source that cannot be read or parsed is reported and skipped, never
// aborting the rest of the run.
package load

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/bloom"
)

// Loader orchestrates the bulk load protocol.
type Loader struct {
	Registry helpdex.ManualRegistry
	Parsers  helpdex.ParserRegistry

	// Store, when set, receives a snapshot of the built manuals so later
	// runs can skip re-parsing unchanged sources.
	Store helpdex.ManualStore

	Logger *slog.Logger
}

// Result holds the outcome of a load operation.
type Result struct {
	Loaded int
	Merged int // existing manuals that only gained mode associations
	Failed int

	// Topics is a membership filter over every loaded topic. A negative
	// answer is definite, so lookups can skip searching entirely.
	Topics *bloom.TopicFilter
}

// Load discards the registry's state and rebuilds it from the
// configuration, processing source groups strictly in order. When a group
// names a source path that is already registered, the existing manual only
// gains the group's mode associations. The snapshot store, when present,
// receives the finished registry wholesale.
func (l *Loader) Load(ctx context.Context, cfg *helpdex.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l.Registry.Reset()
	res := &Result{}

	for _, group := range cfg.Sources {
		for _, file := range group.Files {
			if m, ok := l.Registry.ManualBySourcePath(file.Path); ok {
				m.AssociateModes(group.Modes...)
				res.Merged++
				continue
			}
			if err := l.loadFile(file, group.Modes); err != nil {
				l.logger().Error("manual load failed",
					"path", file.Path,
					"error", helpdex.ErrorMessage(err),
				)
				res.Failed++
				continue
			}
			res.Loaded++
		}
	}

	res.Topics = TopicFilter(l.Registry.Manuals())

	if l.Store != nil {
		if err := l.Store.SaveManuals(ctx, l.Registry.Manuals()); err != nil {
			return res, fmt.Errorf("save snapshot: %w", err)
		}
	}
	return res, nil
}

// loadFile reads, names, parses, and mode-associates one source document.
func (l *Loader) loadFile(file helpdex.SourceFile, modes []string) error {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return helpdex.Errorf(helpdex.EINVALID, "read %s: %v", file.Path, err)
	}
	info, err := os.Stat(file.Path)
	if err != nil {
		return helpdex.Errorf(helpdex.EINVALID, "stat %s: %v", file.Path, err)
	}

	base := manualBase(file.Path)
	parser, err := l.Parsers.ForFilename(filepath.Base(file.Path))
	if err != nil {
		return err
	}

	name := l.Registry.UniqueName(base)
	m := l.Registry.CreateManual(name, file.Path, info.ModTime())
	m.SourceHash = ContentHash(content)

	if err := parser.Parse(m, string(content), file.Prefix); err != nil {
		// No manual survives a failed parse.
		_ = l.Registry.DeleteManual(name)
		return err
	}

	m.AssociateModes(modes...)
	l.logger().Info("manual loaded",
		"manual", name,
		"path", file.Path,
		"parser", parser.Name(),
		"topics", m.Len(),
	)
	return nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// manualBase derives a manual name from a source path: the base filename
// without its extension.
func manualBase(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = base[:len(base)-len(ext)]
	}
	return base
}

// ContentHash fingerprints source content for snapshot invalidation.
func ContentHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// TopicFilter builds a membership filter over every topic in the given
// manuals. False positives are possible, false negatives are not.
func TopicFilter(manuals []*helpdex.Manual) *bloom.TopicFilter {
	n := 0
	for _, m := range manuals {
		n += m.Len()
	}
	f := bloom.NewTopicFilter(uint(n)+1, 0.01)
	for _, m := range manuals {
		for _, topic := range m.Topics() {
			f.Add(topic)
		}
	}
	return f
}
