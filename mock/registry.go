// Package mock provides hand-rolled mocks of the helpdex interfaces for
// testing.
package mock

import (
	"time"

	"github.com/fwojciec/helpdex"
)

var _ helpdex.ManualRegistry = (*ManualRegistry)(nil)

// ManualRegistry is a mock implementation of helpdex.ManualRegistry.
type ManualRegistry struct {
	CreateManualFn       func(name, sourcePath string, lastModified time.Time) *helpdex.Manual
	ManualFn             func(name string) (*helpdex.Manual, error)
	ManualBySourcePathFn func(path string) (*helpdex.Manual, bool)
	DeleteManualFn       func(name string) error
	ManualsFn            func() []*helpdex.Manual
	ManualsForModeFn     func(mode string) []*helpdex.Manual
	UniqueNameFn         func(base string) string
	ResetFn              func()
}

func (r *ManualRegistry) CreateManual(name, sourcePath string, lastModified time.Time) *helpdex.Manual {
	return r.CreateManualFn(name, sourcePath, lastModified)
}

func (r *ManualRegistry) Manual(name string) (*helpdex.Manual, error) {
	return r.ManualFn(name)
}

func (r *ManualRegistry) ManualBySourcePath(path string) (*helpdex.Manual, bool) {
	return r.ManualBySourcePathFn(path)
}

func (r *ManualRegistry) DeleteManual(name string) error {
	return r.DeleteManualFn(name)
}

func (r *ManualRegistry) Manuals() []*helpdex.Manual {
	return r.ManualsFn()
}

func (r *ManualRegistry) ManualsForMode(mode string) []*helpdex.Manual {
	return r.ManualsForModeFn(mode)
}

func (r *ManualRegistry) UniqueName(base string) string {
	return r.UniqueNameFn(base)
}

func (r *ManualRegistry) Reset() {
	r.ResetFn()
}
