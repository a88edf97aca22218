// Weighted edge operations, mirroring the unweighted surface with a
// numeric weight per edge, plus the weight-dropping conversion back to
// an Unweighted view.

package core

// AddEdge inserts the ordered pair (from, to) carrying weight w.
// Idempotent on the pair: re-adding an existing edge updates its weight
// instead of storing a parallel edge. Returns ErrVertexNotFound when
// either endpoint is outside the arena.
// Complexity: O(deg(from)).
func (g *Weighted[V, W]) AddEdge(from, to VertexID, w W) error {
	if !g.valid(from) || !g.valid(to) {
		return ErrVertexNotFound
	}
	row := g.edges[from]
	for i := range row {
		if row[i].To == to {
			row[i].Weight = w
			return nil
		}
	}
	g.edges[from] = append(row, Connection[W]{To: to, Weight: w})

	return nil
}

// HasEdge reports whether the ordered pair (u, v) is present. Total:
// false for ids outside the arena. Complexity: O(deg(u)).
func (g *Weighted[V, W]) HasEdge(u, v VertexID) bool {
	_, ok := g.EdgeWeight(u, v)
	return ok
}

// EdgeWeight returns the weight of edge (u, v), or ok=false when the
// edge is absent or either id is outside the arena.
// Complexity: O(deg(u)).
func (g *Weighted[V, W]) EdgeWeight(u, v VertexID) (W, bool) {
	if g.valid(u) && g.valid(v) {
		for _, c := range g.edges[u] {
			if c.To == v {
				return c.Weight, true
			}
		}
	}
	var zero W

	return zero, false
}

// Connections returns the weighted out-edges of u in edge-insertion
// order, or nil when u is outside the arena. The slice is a view into
// the adjacency row; callers must not mutate it.
// Complexity: O(1).
func (g *Weighted[V, W]) Connections(u VertexID) []Connection[W] {
	if !g.valid(u) {
		return nil
	}

	return g.edges[u]
}

// Neighbors returns the out-neighbor ids of u in edge-insertion order,
// or nil when u is outside the arena. Unlike Connections this allocates
// a fresh slice, since the arena stores Connection values.
// Complexity: O(deg(u)).
func (g *Weighted[V, W]) Neighbors(u VertexID) []VertexID {
	if !g.valid(u) {
		return nil
	}
	row := g.edges[u]
	if len(row) == 0 {
		return nil
	}
	ids := make([]VertexID, len(row))
	for i, c := range row {
		ids[i] = c.To
	}

	return ids
}

// RemoveEdge deletes the ordered pair (from, to), preserving the order
// of the remaining out-edges, and reports whether an edge was removed.
// Complexity: O(deg(from)).
func (g *Weighted[V, W]) RemoveEdge(from, to VertexID) bool {
	if !g.valid(from) || !g.valid(to) {
		return false
	}
	row := g.edges[from]
	for i, c := range row {
		if c.To == to {
			g.edges[from] = append(row[:i], row[i+1:]...)
			return true
		}
	}

	return false
}

// ConstructEdgesFrom evaluates condition over every ordered pair (u, v)
// of currently stored vertices; when it returns ok=true the edge (u, v)
// is inserted with the returned weight. Self-pairs are not skipped
// implicitly; the predicate is responsible. Existing edges are kept,
// with re-matched pairs taking the newly returned weight.
// Complexity: O(V²) predicate evaluations, same tradeoff as on
// Unweighted.
func (g *Weighted[V, W]) ConstructEdgesFrom(condition func(u, v V) (W, bool)) {
	n := len(g.vertices)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if w, ok := condition(g.vertices[u], g.vertices[v]); ok {
				_ = g.AddEdge(VertexID(u), VertexID(v), w)
			}
		}
	}
}

// Unweighted returns a new unweighted graph over the same vertices,
// keeping one edge per stored pair whose weight is non-zero.
// Zero-weight edges are treated as impassable and dropped. Handles
// carry over unchanged because both graphs share the insertion order.
// Complexity: O(V + E).
func (g *Weighted[V, W]) Unweighted() *Unweighted[V] {
	out := NewUnweighted[V](WithCapacity(len(g.vertices)))
	out.vertices = append(out.vertices, g.vertices...)
	var zero W
	for _, row := range g.edges {
		targets := make([]VertexID, 0, len(row))
		for _, c := range row {
			if c.Weight != zero {
				targets = append(targets, c.To)
			}
		}
		out.edges = append(out.edges, targets)
	}

	return out
}
