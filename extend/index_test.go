package extend

import (
	"errors"
	"testing"

	"github.com/npillmayer/scss/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexKeepsRegistrationOrder(t *testing.T) {
	idx := NewIndex()
	require.NoError(t, idx.Add(".b", selector.MustParse(".x")))
	require.NoError(t, idx.Add(".a", selector.MustParse(".y")))
	require.NoError(t, idx.Add(".b", selector.MustParse(".z")))

	assert.Equal(t, []string{".b", ".a"}, idx.Keys())
	assert.Equal(t, 2, idx.Len())
	lists, ok := idx.Lookup(".b")
	require.True(t, ok)
	require.Len(t, lists, 2)
	assert.Equal(t, ".x", lists[0].Text())
	assert.Equal(t, ".z", lists[1].Text())
	assert.Equal(t, "Index{.b <- .x | .z; .a <- .y}", idx.String())

	_, ok = idx.Lookup(".c")
	assert.False(t, ok)
}

func TestIndexLookupDoesNotLeak(t *testing.T) {
	idx := NewIndex()
	require.NoError(t, idx.Add(".b", selector.MustParse(".x")))
	lists, _ := idx.Lookup(".b")
	_ = append(lists, selector.MustParse(".evil"))
	keys := idx.Keys()
	keys[0] = ".changed"
	again, _ := idx.Lookup(".b")
	assert.Len(t, again, 1)
	assert.Equal(t, []string{".b"}, idx.Keys())
}

func TestIndexFrozen(t *testing.T) {
	root := sheet(rule(".error", extends(".btn")), rule(".btn"))
	idx, err := BuildIndex(root)
	require.NoError(t, err)
	assert.True(t, idx.Frozen())
	err = idx.Add(".q", selector.MustParse(".r"))
	assert.True(t, errors.Is(err, ErrIndexFrozen))
	assert.Equal(t, 1, idx.Len())
}

func TestBuildIndexRegistersOwningSelectors(t *testing.T) {
	root := sheet(
		rule(".error, .alert", extends(".btn"), extends(".msg, .note")),
		rule(".btn"),
	)
	idx, err := BuildIndex(root)
	require.NoError(t, err)
	assert.Equal(t, []string{".btn", ".msg, .note"}, idx.Keys())
	lists, _ := idx.Lookup(".msg, .note")
	require.Len(t, lists, 1)
	assert.Equal(t, ".error, .alert", lists[0].Text())
	assert.Zero(t, countExtends(root))
}
