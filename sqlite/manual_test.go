package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestManualStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	t.Run("round-trips manuals with topics and modes", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewManualStore(newDB(t))
		ctx := context.Background()

		modTime := time.Date(2026, 8, 1, 12, 30, 0, 123456789, time.UTC)
		m := helpdex.NewManual("emacs", "/docs/emacs.html", modTime)
		m.SourceHash = "deadbeefdeadbeef"
		m.AddTopic("Buffers", "http://x/buffers")
		m.AddTopic("Buffers", "http://x/buffers-2")
		m.AddTopic("Abbrevs", "http://x/abbrevs")
		m.AssociateModes("go", "lisp")

		require.NoError(t, store.SaveManuals(ctx, []*helpdex.Manual{m}))

		loaded, err := store.LoadManuals(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)

		got := loaded[0]
		assert.Equal(t, "emacs", got.Name)
		assert.Equal(t, "/docs/emacs.html", got.SourcePath)
		assert.Equal(t, "deadbeefdeadbeef", got.SourceHash)
		assert.True(t, got.LastModified.Equal(modTime))
		assert.Equal(t, []string{"go", "lisp"}, got.Modes())

		// Insertion order survives the round trip.
		assert.Equal(t, []string{"Buffers", "Abbrevs"}, got.Topics())
		assert.Equal(t, []string{"http://x/buffers", "http://x/buffers-2"}, got.Links("Buffers"))
	})

	t.Run("round-trips the wildcard marker", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewManualStore(newDB(t))
		ctx := context.Background()

		m := helpdex.NewManual("any", "any.txt", time.Now())
		m.AssociateModes()

		require.NoError(t, store.SaveManuals(ctx, []*helpdex.Manual{m}))

		loaded, err := store.LoadManuals(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.True(t, loaded[0].AppliesTo("anything"))
	})

	t.Run("save replaces the previous snapshot wholesale", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewManualStore(newDB(t))
		ctx := context.Background()

		old := helpdex.NewManual("old", "old.txt", time.Now())
		old.AddTopic("Old", "http://x/old")
		require.NoError(t, store.SaveManuals(ctx, []*helpdex.Manual{old}))

		fresh := helpdex.NewManual("fresh", "fresh.txt", time.Now())
		fresh.AddTopic("Fresh", "http://x/fresh")
		require.NoError(t, store.SaveManuals(ctx, []*helpdex.Manual{fresh}))

		loaded, err := store.LoadManuals(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "fresh", loaded[0].Name)
	})

	t.Run("rejects an invalid manual", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewManualStore(newDB(t))

		m := helpdex.NewManual("", "x.txt", time.Now())
		err := store.SaveManuals(context.Background(), []*helpdex.Manual{m})
		assert.Equal(t, helpdex.EINVALID, helpdex.ErrorCode(err))
	})

	t.Run("empty store loads nothing", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewManualStore(newDB(t))

		loaded, err := store.LoadManuals(context.Background())
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestManualStore_DeleteManuals(t *testing.T) {
	t.Parallel()

	store := sqlite.NewManualStore(newDB(t))
	ctx := context.Background()

	m := helpdex.NewManual("emacs", "emacs.txt", time.Now())
	m.AddTopic("Buffers", "http://x/buffers")
	require.NoError(t, store.SaveManuals(ctx, []*helpdex.Manual{m}))

	require.NoError(t, store.DeleteManuals(ctx))

	loaded, err := store.LoadManuals(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
