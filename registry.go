package helpdex

import (
	"context"
	"time"
)

// ManualRegistry owns a collection of manuals keyed by unique name. It is an
// explicit, injectable store: callers hold a registry value rather than
// relying on process-wide state, so tests can build independent registries.
//
// Iteration order of Manuals and ManualsForMode is unspecified.
type ManualRegistry interface {
	// CreateManual registers an empty manual under the given name,
	// replacing any existing manual of that name.
	CreateManual(name, sourcePath string, lastModified time.Time) *Manual

	// Manual retrieves a manual by name.
	// Returns ENOTFOUND if no manual has that name.
	Manual(name string) (*Manual, error)

	// ManualBySourcePath retrieves the manual built from the given source
	// path, if any.
	ManualBySourcePath(path string) (*Manual, bool)

	// DeleteManual removes a manual by name.
	// Returns ENOTFOUND if no manual has that name.
	DeleteManual(name string) error

	// Manuals returns all registered manuals.
	Manuals() []*Manual

	// ManualsForMode returns the manuals applicable in the given mode:
	// those whose mode set contains the mode or the wildcard marker.
	ManualsForMode(mode string) []*Manual

	// UniqueName returns base if it is free, otherwise the first free
	// "base(2)", "base(3)", ... variant.
	UniqueName(base string) string

	// Reset discards all registered manuals. The registry is rebuilt
	// wholesale whenever the source configuration changes; there is no
	// incremental diffing.
	Reset()
}

// ManualStore persists built manuals between process runs so unchanged
// sources need not be re-parsed. Save replaces the stored set wholesale,
// mirroring the registry's rebuild-not-diff rule.
type ManualStore interface {
	// SaveManuals replaces the stored manual set.
	SaveManuals(ctx context.Context, manuals []*Manual) error

	// LoadManuals returns all stored manuals with their topics in
	// original insertion order.
	LoadManuals(ctx context.Context) ([]*Manual, error)

	// DeleteManuals removes all stored manuals.
	DeleteManuals(ctx context.Context) error
}
