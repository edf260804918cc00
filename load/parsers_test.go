package load_test

import (
	"testing"

	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/load"
	"github.com/fwojciec/helpdex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsers_ForFilename(t *testing.T) {
	t.Parallel()

	anchor := &mock.Parser{NameFn: func() string { return "anchor" }}
	fallback := &mock.Parser{NameFn: func() string { return "tsv" }}

	t.Run("first matching rule wins", func(t *testing.T) {
		t.Parallel()

		p := load.NewParsers()
		require.NoError(t, p.Register(`\.html?$`, anchor))
		require.NoError(t, p.Register(`.*`, fallback))

		got, err := p.ForFilename("manual.html")
		require.NoError(t, err)
		assert.Equal(t, "anchor", got.Name())

		got, err = p.ForFilename("manual.htm")
		require.NoError(t, err)
		assert.Equal(t, "anchor", got.Name())

		got, err = p.ForFilename("manual.txt")
		require.NoError(t, err)
		assert.Equal(t, "tsv", got.Name())
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		p := load.NewParsers()
		require.NoError(t, p.Register(`\.html?$`, anchor))

		got, err := p.ForFilename("MANUAL.HTML")
		require.NoError(t, err)
		assert.Equal(t, "anchor", got.Name())
	})

	t.Run("returns ENOTFOUND when no pattern matches", func(t *testing.T) {
		t.Parallel()

		p := load.NewParsers()
		require.NoError(t, p.Register(`\.html?$`, anchor))

		_, err := p.ForFilename("manual.txt")
		assert.Equal(t, helpdex.ENOTFOUND, helpdex.ErrorCode(err))
	})

	t.Run("rejects an invalid pattern", func(t *testing.T) {
		t.Parallel()

		p := load.NewParsers()

		err := p.Register(`[`, anchor)
		assert.Equal(t, helpdex.EINVALID, helpdex.ErrorCode(err))
	})
}
