package colmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslab-cc/collex/pkg/collist"
)

func newTestMap() *HashMap[uint64, string] {
	eq := ElemEq[uint64, string]()
	return New(4, IdentityHash(), func() collist.Set[Elem[uint64, string]] {
		return collist.NewCoarse(eq)
	})
}

func TestInsertThenHas(t *testing.T) {
	m := newTestMap()
	require.True(t, m.Insert(1, "one"))
	assert.True(t, m.Has(1))
	assert.False(t, m.Has(2))
	assert.Equal(t, uint64(1), m.Size())
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	m := newTestMap()
	require.True(t, m.Insert(1, "one"))
	require.False(t, m.Insert(1, "uno"))
	v, ok := m.GetOrZero(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestGetInsertsDefaultOnMiss(t *testing.T) {
	m := newTestMap()
	assert.Equal(t, "", m.Get(5))
	assert.True(t, m.Has(5))
	assert.Equal(t, uint64(1), m.Size())
}

func TestGetOrZeroDoesNotInsert(t *testing.T) {
	m := newTestMap()
	v, ok := m.GetOrZero(5)
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.False(t, m.Has(5))
}

func TestRemove(t *testing.T) {
	m := newTestMap()
	m.Insert(1, "one")
	assert.True(t, m.Remove(1))
	assert.False(t, m.Has(1))
	assert.False(t, m.Remove(1))
}
