// Unweighted edge operations: direct insertion, totality-preserving
// queries, and predicate-driven bulk construction.

package core

// AddEdge inserts the ordered pair (from, to) into the edge relation.
// Insertion is idempotent: adding a pair twice has the same effect as
// adding it once. Returns ErrVertexNotFound when either endpoint is
// outside the arena, so the relation only ever references live
// vertices.
// Complexity: O(deg(from)).
func (g *Unweighted[V]) AddEdge(from, to VertexID) error {
	if !g.valid(from) || !g.valid(to) {
		return ErrVertexNotFound
	}
	if g.HasEdge(from, to) {
		return nil
	}
	g.edges[from] = append(g.edges[from], to)

	return nil
}

// HasEdge reports whether the ordered pair (u, v) is present. Total:
// false for self-pairs never added and for ids outside the arena.
// Complexity: O(deg(u)).
func (g *Unweighted[V]) HasEdge(u, v VertexID) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	for _, to := range g.edges[u] {
		if to == v {
			return true
		}
	}

	return false
}

// Neighbors returns the out-neighbors of u in edge-insertion order, or
// nil when u is outside the arena. The slice is a view into the
// adjacency row; callers must not mutate it.
// Complexity: O(1).
func (g *Unweighted[V]) Neighbors(u VertexID) []VertexID {
	if !g.valid(u) {
		return nil
	}

	return g.edges[u]
}

// RemoveEdge deletes the ordered pair (from, to), preserving the order
// of the remaining out-edges, and reports whether an edge was removed.
// Complexity: O(deg(from)).
func (g *Unweighted[V]) RemoveEdge(from, to VertexID) bool {
	if !g.valid(from) || !g.valid(to) {
		return false
	}
	row := g.edges[from]
	for i, t := range row {
		if t == to {
			g.edges[from] = append(row[:i], row[i+1:]...)
			return true
		}
	}

	return false
}

// ConstructEdgesFrom evaluates condition over every ordered pair (u, v)
// of currently stored vertices and inserts edge (u, v) for each pair
// that satisfies it. Self-pairs are not skipped implicitly; the
// predicate is responsible (u != v && ...). Existing edges are kept —
// the call augments the relation — and vertices are never mutated.
//
// The resulting relation is directed unless condition is symmetric.
// Complexity: O(V²) predicate evaluations; a deliberate tradeoff for
// arbitrary caller-supplied relations. Prefer AddEdge for large V.
func (g *Unweighted[V]) ConstructEdgesFrom(condition func(u, v V) bool) {
	n := len(g.vertices)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if condition(g.vertices[u], g.vertices[v]) {
				// endpoints are in range by construction
				_ = g.AddEdge(VertexID(u), VertexID(v))
			}
		}
	}
}
