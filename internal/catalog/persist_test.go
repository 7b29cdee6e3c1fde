package catalog

import (
	"testing"

	"github.com/lepinkainen/bookshelf/internal/codec"
	"github.com/lepinkainen/bookshelf/internal/errors"
	"github.com/lepinkainen/bookshelf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("library.json")

	c := New()
	c.Add(fiction("Dune", "Herbert", 1965, "sci-fi"))
	c.Add(fiction("Emma", "Austen", 1815, "romance"))
	require.NoError(t, c.Save(path))

	loaded := New()
	loaded.Add(fiction("Discarded", "x", 1, "g"))
	require.NoError(t, loaded.Load(path, codec.DecodeOptions{}))

	assert.Equal(t, c.All(), loaded.All())
}

func TestFailedLoadLeavesCatalogUntouched(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("corrupt.json", `[
  {"type": "FictionBook", "title": "Dune", "author": "Herbert", "year": 1965, "genre": "sci-fi", "style": "epic"},
  {"type": "Pamphlet", "title": "Common Sense"}
]`)

	c := New()
	c.Add(fiction("Keep me", "x", 2000, "g"))
	before := c.All()

	err := c.Load(env.Path("corrupt.json"), codec.DecodeOptions{})
	assert.True(t, errors.IsCorruptCatalogError(err))
	assert.Equal(t, before, c.All())

	err = c.Load(env.Path("missing.json"), codec.DecodeOptions{})
	assert.True(t, errors.IsFileUnavailableError(err))
	assert.Equal(t, before, c.All())
}

func TestLoadSkipMode(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("mixed.json", `[
  {"type": "FictionBook", "title": "Dune", "author": "Herbert", "year": 1965, "genre": "sci-fi", "style": "epic"},
  {"type": "Pamphlet", "title": "Common Sense"}
]`)

	c := New()
	require.NoError(t, c.Load(env.Path("mixed.json"), codec.DecodeOptions{Mode: codec.Skip}))
	assert.Equal(t, []string{"Dune"}, titles(c.All()))
}
