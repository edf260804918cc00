package mem_test

import (
	"testing"
	"time"

	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateManual(t *testing.T) {
	t.Parallel()

	t.Run("creates and retrieves a manual", func(t *testing.T) {
		t.Parallel()

		reg := mem.NewRegistry()
		created := reg.CreateManual("emacs", "emacs.html", time.Now())

		got, err := reg.Manual("emacs")
		require.NoError(t, err)
		assert.Same(t, created, got)
	})

	t.Run("replaces an existing manual and its topic index", func(t *testing.T) {
		t.Parallel()

		reg := mem.NewRegistry()
		old := reg.CreateManual("emacs", "emacs.html", time.Now())
		old.AddTopic("Buffers", "http://x/buffers")

		fresh := reg.CreateManual("emacs", "emacs.html", time.Now())

		got, err := reg.Manual("emacs")
		require.NoError(t, err)
		assert.Same(t, fresh, got)
		assert.Zero(t, got.Len())
	})
}

func TestRegistry_Manual_NotFound(t *testing.T) {
	t.Parallel()

	reg := mem.NewRegistry()

	_, err := reg.Manual("missing")
	assert.Equal(t, helpdex.ENOTFOUND, helpdex.ErrorCode(err))
}

func TestRegistry_ManualBySourcePath(t *testing.T) {
	t.Parallel()

	reg := mem.NewRegistry()
	created := reg.CreateManual("emacs", "/docs/emacs.html", time.Now())

	got, ok := reg.ManualBySourcePath("/docs/emacs.html")
	require.True(t, ok)
	assert.Same(t, created, got)

	_, ok = reg.ManualBySourcePath("/docs/other.html")
	assert.False(t, ok)
}

func TestRegistry_DeleteManual(t *testing.T) {
	t.Parallel()

	t.Run("removes the manual", func(t *testing.T) {
		t.Parallel()

		reg := mem.NewRegistry()
		reg.CreateManual("emacs", "emacs.html", time.Now())

		require.NoError(t, reg.DeleteManual("emacs"))

		_, err := reg.Manual("emacs")
		assert.Equal(t, helpdex.ENOTFOUND, helpdex.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for an unknown name", func(t *testing.T) {
		t.Parallel()

		reg := mem.NewRegistry()

		err := reg.DeleteManual("missing")
		assert.Equal(t, helpdex.ENOTFOUND, helpdex.ErrorCode(err))
	})
}

func TestRegistry_ManualsForMode(t *testing.T) {
	t.Parallel()

	reg := mem.NewRegistry()

	goManual := reg.CreateManual("go", "go.html", time.Now())
	goManual.AssociateModes("go")

	anyManual := reg.CreateManual("any", "any.html", time.Now())
	anyManual.AssociateModes()

	lispManual := reg.CreateManual("lisp", "lisp.html", time.Now())
	lispManual.AssociateModes("lisp")

	got := reg.ManualsForMode("go")

	// Set membership only: iteration order is unspecified.
	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"go", "any"}, names)
}

func TestRegistry_UniqueName(t *testing.T) {
	t.Parallel()

	reg := mem.NewRegistry()

	assert.Equal(t, "emacs", reg.UniqueName("emacs"))

	reg.CreateManual("emacs", "a/emacs.html", time.Now())
	assert.Equal(t, "emacs(2)", reg.UniqueName("emacs"))

	reg.CreateManual("emacs(2)", "b/emacs.html", time.Now())
	assert.Equal(t, "emacs(3)", reg.UniqueName("emacs"))
}

func TestRegistry_Reset(t *testing.T) {
	t.Parallel()

	reg := mem.NewRegistry()
	reg.CreateManual("emacs", "emacs.html", time.Now())

	reg.Reset()

	assert.Empty(t, reg.Manuals())
}
