// Connectivity queries: weak components and connectedness over the
// core.Adjacency capability.
package dfs

import (
	"sort"

	"github.com/grafton-go/grafton/core"
)

// Components returns the weakly-connected components of g: edge
// direction is ignored, so u and v share a component whenever any
// chain of edges joins them in either orientation. Each component
// lists its members in ascending VertexID order, and components are
// ordered by their smallest member. Returns nil for a nil or empty
// graph.
// Complexity: O(V + E) time, O(V + E) memory for the undirected view.
func Components(g core.Adjacency) [][]core.VertexID {
	if g == nil {
		return nil
	}
	n := g.Size()
	if n == 0 {
		return nil
	}

	// Materialize an undirected view once; the capability only exposes
	// out-edges.
	undirected := make([][]core.VertexID, n)
	for u := 0; u < n; u++ {
		uid := core.VertexID(u)
		for _, v := range g.Neighbors(uid) {
			undirected[u] = append(undirected[u], v)
			if v != uid {
				undirected[v] = append(undirected[v], uid)
			}
		}
	}

	seen := make([]bool, n)
	stack := make([]core.VertexID, 0, n)
	var comps [][]core.VertexID
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		var comp []core.VertexID
		seen[s] = true
		stack = append(stack[:0], core.VertexID(s))
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, top)
			for _, nbr := range undirected[top] {
				if !seen[nbr] {
					seen[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether g is connected when edge direction is
// ignored. The empty graph is vacuously connected.
// Complexity: O(V + E).
func IsConnected(g core.Adjacency) bool {
	if g == nil || g.Size() == 0 {
		return true
	}

	return len(Components(g)) == 1
}
