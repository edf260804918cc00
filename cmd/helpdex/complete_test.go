package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	main "github.com/fwojciec/helpdex/cmd/helpdex"
	"github.com/fwojciec/helpdex/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRegistry(t *testing.T, topics ...string) *mem.Registry {
	t.Helper()

	reg := mem.NewRegistry()
	m := reg.CreateManual("manual", "manual.txt", time.Now())
	m.AssociateModes()
	for _, topic := range topics {
		m.AddTopic(topic, "http://x/"+topic)
	}
	return reg
}

func TestCompleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("unique match prints the tuple", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: completeRegistry(t, "alpha", "beta"),
		}

		cmd := &main.CompleteCmd{Mode: "go", Prefix: "al"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "alpha\tmanual\thttp://x/alpha\n", stdout.String())
	})

	t.Run("ambiguous match reports the extension and candidates", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: completeRegistry(t, "save-buffer", "save-file"),
		}

		cmd := &main.CompleteCmd{Mode: "go", Prefix: "sa"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, `Completes to "save-" (2 matches)`)
		assert.Contains(t, output, "save-buffer")
		assert.Contains(t, output, "save-file")
	})

	t.Run("no match prints a notice", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: completeRegistry(t, "alpha"),
		}

		cmd := &main.CompleteCmd{Mode: "go", Prefix: "zzz"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), `No topics match "zzz"`)
	})

	t.Run("repeat pages through the candidates", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: completeRegistry(t, "t1", "t2", "t3", "t4"),
		}

		cmd := &main.CompleteCmd{Mode: "go", Prefix: "t", Repeat: 1, Page: 2}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "t3")
		assert.Contains(t, output, "t4")
		assert.NotContains(t, output, "t1\t")
	})
}
