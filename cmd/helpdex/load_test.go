package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/helpdex"
	main "github.com/fwojciec/helpdex/cmd/helpdex"
	"github.com/fwojciec/helpdex/load"
	"github.com/fwojciec/helpdex/mem"
	"github.com/fwojciec/helpdex/mock"
	"github.com/fwojciec/helpdex/tsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("rebuilds manuals and reports counts", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "emacs.txt")
		require.NoError(t, os.WriteFile(source, []byte("Buffers\thttp://x/buffers\n"), 0644))

		parsers := load.NewParsers()
		require.NoError(t, parsers.Register(`.*`, &tsv.Parser{}))

		saved := false
		registry := mem.NewRegistry()
		loader := &load.Loader{
			Registry: registry,
			Parsers:  parsers,
			Store: &mock.ManualStore{
				SaveManualsFn: func(ctx context.Context, manuals []*helpdex.Manual) error {
					saved = true
					return nil
				},
			},
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: &helpdex.Config{
				Sources: []helpdex.SourceGroup{{
					Modes: []string{"go"},
					Files: []helpdex.SourceFile{{Path: source}},
				}},
			},
			Registry: registry,
			Loader:   loader,
		}

		cmd := &main.LoadCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Loaded 1 manuals (0 merged, 0 failed)")
		assert.True(t, saved)
		assert.Len(t, registry.Manuals(), 1)
	})
}
