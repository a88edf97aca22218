package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafton-go/grafton/core"
)

func TestWeighted_AddEdgeAndEdgeWeight(t *testing.T) {
	g := core.NewWeighted[string, int64]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	require.NoError(t, g.AddEdge(a, b, 9))
	w, ok := g.EdgeWeight(a, b)
	require.True(t, ok)
	assert.Equal(t, int64(9), w)

	_, ok = g.EdgeWeight(b, a)
	assert.False(t, ok, "edge relation is ordered")
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))
}

func TestWeighted_AddEdgeUpdatesWeight(t *testing.T) {
	g := core.NewWeighted[int, float64]()
	u := g.AddVertex(1)
	v := g.AddVertex(2)

	require.NoError(t, g.AddEdge(u, v, 1.5))
	require.NoError(t, g.AddEdge(u, v, 2.5))

	assert.Equal(t, 1, g.NumEdges(), "re-adding a pair must not store a parallel edge")
	w, ok := g.EdgeWeight(u, v)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
}

func TestWeighted_AddEdgeRejectsForeignHandles(t *testing.T) {
	g := core.NewWeighted[int, int]()
	u := g.AddVertex(1)

	assert.ErrorIs(t, g.AddEdge(u, core.VertexID(5), 1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(core.NoVertex, u, 1), core.ErrVertexNotFound)
}

func TestWeighted_ConnectionsAndNeighbors(t *testing.T) {
	g := core.NewWeighted[string, int]()
	ids := g.AddVertices("a", "b", "c")
	require.NoError(t, g.AddEdge(ids[0], ids[2], 3))
	require.NoError(t, g.AddEdge(ids[0], ids[1], 7))

	conns := g.Connections(ids[0])
	require.Len(t, conns, 2)
	assert.Equal(t, core.Connection[int]{To: ids[2], Weight: 3}, conns[0])
	assert.Equal(t, core.Connection[int]{To: ids[1], Weight: 7}, conns[1])

	assert.Equal(t, []core.VertexID{ids[2], ids[1]}, g.Neighbors(ids[0]))
	assert.Nil(t, g.Neighbors(core.VertexID(9)))
	assert.Nil(t, g.Connections(core.NoVertex))
}

func TestWeighted_RemoveEdge(t *testing.T) {
	g := core.NewWeighted[int, int]()
	ids := g.AddVertices(1, 2)
	require.NoError(t, g.AddEdge(ids[0], ids[1], 4))

	assert.True(t, g.RemoveEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.RemoveEdge(ids[0], ids[1]))
}

// TestWeighted_ConstructEdgesFrom builds the weighted relation from a
// pairwise cost function: ok=false means no edge.
func TestWeighted_ConstructEdgesFrom(t *testing.T) {
	g := core.NewWeighted[rune, float64]()
	for r := 'a'; r <= 'f'; r++ {
		g.AddVertex(r)
	}
	g.ConstructEdgesFrom(func(u, v rune) (float64, bool) {
		switch [2]rune{u, v} {
		case [2]rune{'a', 'b'}:
			return 9.0, true
		case [2]rune{'a', 'd'}:
			return 8.0, true
		case [2]rune{'b', 'c'}:
			return 1.0, true
		default:
			return 0, false
		}
	})

	a, _ := g.GetVertex('a')
	b, _ := g.GetVertex('b')
	c, _ := g.GetVertex('c')

	w, ok := g.EdgeWeight(a, b)
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	assert.True(t, g.HasEdge(b, c))
	assert.False(t, g.HasEdge(a, c))
	assert.Equal(t, 3, g.NumEdges())
}

// TestWeighted_Unweighted verifies the weight-dropping conversion:
// zero-weight edges are treated as impassable and disappear.
func TestWeighted_Unweighted(t *testing.T) {
	g := core.NewWeighted[rune, float64]()
	for r := 'a'; r <= 'f'; r++ {
		g.AddVertex(r)
	}
	g.ConstructEdgesFrom(func(u, v rune) (float64, bool) {
		switch [2]rune{u, v} {
		case [2]rune{'a', 'b'}:
			return 9.0, true
		case [2]rune{'a', 'd'}:
			return 8.0, true
		case [2]rune{'b', 'c'}:
			return 0.0, true // stored, but impassable
		case [2]rune{'b', 'e'}:
			return 3.0, true
		default:
			return 0, false
		}
	})

	u := g.Unweighted()
	require.Equal(t, g.Size(), u.Size())

	a, _ := u.GetVertex('a')
	b, _ := u.GetVertex('b')
	c, _ := u.GetVertex('c')
	d, _ := u.GetVertex('d')

	assert.True(t, u.HasEdge(a, d))
	assert.True(t, u.HasEdge(a, b))
	assert.False(t, u.HasEdge(b, c), "zero-weight edge must be dropped")
	assert.Equal(t, 3, u.NumEdges())
}
