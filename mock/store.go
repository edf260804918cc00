package mock

import (
	"context"

	"github.com/fwojciec/helpdex"
)

var _ helpdex.ManualStore = (*ManualStore)(nil)

// ManualStore is a mock implementation of helpdex.ManualStore.
type ManualStore struct {
	SaveManualsFn   func(ctx context.Context, manuals []*helpdex.Manual) error
	LoadManualsFn   func(ctx context.Context) ([]*helpdex.Manual, error)
	DeleteManualsFn func(ctx context.Context) error
}

func (s *ManualStore) SaveManuals(ctx context.Context, manuals []*helpdex.Manual) error {
	return s.SaveManualsFn(ctx, manuals)
}

func (s *ManualStore) LoadManuals(ctx context.Context) ([]*helpdex.Manual, error) {
	return s.LoadManualsFn(ctx)
}

func (s *ManualStore) DeleteManuals(ctx context.Context) error {
	return s.DeleteManualsFn(ctx)
}
