package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafton-go/grafton/core"
)

func TestAddVertex_FreshHandlesAndSize(t *testing.T) {
	g := core.NewUnweighted[string]()
	assert.Equal(t, 0, g.Size())

	a := g.AddVertex("a")
	b := g.AddVertex("b")
	assert.NotEqual(t, a, b, "handles must be fresh per add")
	assert.Equal(t, 2, g.Size())

	// size grows by exactly one per add, duplicates included
	g.AddVertex("a")
	assert.Equal(t, 3, g.Size())
}

func TestGetVertex_FirstMatchInInsertionOrder(t *testing.T) {
	g := core.NewUnweighted[int]()
	first := g.AddVertex(7)
	g.AddVertex(8)
	second := g.AddVertex(7) // duplicate payload, distinct handle
	require.NotEqual(t, first, second)

	id, ok := g.GetVertex(7)
	require.True(t, ok)
	assert.Equal(t, first, id, "lookup resolves duplicates to the first match")

	_, ok = g.GetVertex(42)
	assert.False(t, ok)
}

func TestValue_TotalLookup(t *testing.T) {
	g := core.NewUnweighted[string]()
	id := g.AddVertex("payload")

	v, ok := g.Value(id)
	require.True(t, ok)
	assert.Equal(t, "payload", v)

	_, ok = g.Value(core.NoVertex)
	assert.False(t, ok)
	_, ok = g.Value(core.VertexID(99))
	assert.False(t, ok)
}

func TestAddVertices_EquivalentToRepeatedAdd(t *testing.T) {
	g := core.NewUnweighted[int]()
	ids := g.AddVertices(10, 20, 30)
	require.Len(t, ids, 3)
	assert.Equal(t, 3, g.Size())

	for i, id := range ids {
		v, ok := g.Value(id)
		require.True(t, ok)
		assert.Equal(t, (i+1)*10, v)
	}
}

func TestCollectUnweighted_IterationOrder(t *testing.T) {
	values := []rune{'a', 'b', 'c', 'd'}
	g := core.CollectUnweighted(slices.Values(values))
	require.Equal(t, len(values), g.Size())

	for i, r := range values {
		id, ok := g.GetVertex(r)
		require.True(t, ok)
		assert.Equal(t, core.VertexID(i), id)
	}
}

func TestCollectWeighted_IterationOrder(t *testing.T) {
	g := core.CollectWeighted[string, int64](slices.Values([]string{"x", "y"}))
	require.Equal(t, 2, g.Size())

	id, ok := g.GetVertex("y")
	require.True(t, ok)
	v, ok := g.Value(id)
	require.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestWithCapacity_DoesNotAffectSize(t *testing.T) {
	g := core.NewUnweighted[int](core.WithCapacity(128))
	assert.Equal(t, 0, g.Size())

	// negative capacity is clamped, construction never fails
	h := core.NewUnweighted[int](core.WithCapacity(-5))
	assert.Equal(t, 0, h.Size())
}
