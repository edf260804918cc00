// Package mem provides an in-memory implementation of the manual registry.
package mem

import (
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/helpdex"
)

// Ensure Registry implements helpdex.ManualRegistry at compile time.
var _ helpdex.ManualRegistry = (*Registry)(nil)

// Registry keeps manuals in a map keyed by name. The original tool mutated a
// process-wide table from a single thread; this implementation adds a
// single-writer lock so concurrent callers are safe too. Iteration order is
// map order and therefore unspecified.
type Registry struct {
	mu      sync.RWMutex
	manuals map[string]*helpdex.Manual
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{manuals: make(map[string]*helpdex.Manual)}
}

// CreateManual registers an empty manual under the given name, replacing any
// existing manual of that name together with its topic index.
func (r *Registry) CreateManual(name, sourcePath string, lastModified time.Time) *helpdex.Manual {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := helpdex.NewManual(name, sourcePath, lastModified)
	r.manuals[name] = m
	return m
}

// Manual retrieves a manual by name.
func (r *Registry) Manual(name string) (*helpdex.Manual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.manuals[name]
	if !ok {
		return nil, helpdex.Errorf(helpdex.ENOTFOUND, "manual %q not found", name)
	}
	return m, nil
}

// ManualBySourcePath retrieves the manual built from the given source path.
func (r *Registry) ManualBySourcePath(path string) (*helpdex.Manual, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.manuals {
		if m.SourcePath == path {
			return m, true
		}
	}
	return nil, false
}

// DeleteManual removes a manual by name.
func (r *Registry) DeleteManual(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.manuals[name]; !ok {
		return helpdex.Errorf(helpdex.ENOTFOUND, "manual %q not found", name)
	}
	delete(r.manuals, name)
	return nil
}

// Manuals returns all registered manuals in unspecified order.
func (r *Registry) Manuals() []*helpdex.Manual {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*helpdex.Manual, 0, len(r.manuals))
	for _, m := range r.manuals {
		out = append(out, m)
	}
	return out
}

// ManualsForMode returns the manuals whose mode set contains the mode or the
// wildcard marker.
func (r *Registry) ManualsForMode(mode string) []*helpdex.Manual {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*helpdex.Manual
	for _, m := range r.manuals {
		if m.AppliesTo(mode) {
			out = append(out, m)
		}
	}
	return out
}

// UniqueName returns base if no manual has that name yet, otherwise the
// first free "base(2)", "base(3)", ... variant.
func (r *Registry) UniqueName(base string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.manuals[base]; !ok {
		return base
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s(%d)", base, i)
		if _, ok := r.manuals[name]; !ok {
			return name
		}
	}
}

// Reset discards all registered manuals.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.manuals = make(map[string]*helpdex.Manual)
}
