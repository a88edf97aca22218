// Shared arena methods: vertex lifecycle and payload queries. These are
// promoted onto both graph variants through embedding.

package core

// AddVertex appends value to the arena and returns a fresh, previously
// unused handle. It always succeeds; duplicate payloads are permitted
// and receive distinct handles.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(value V) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, value)
	g.edges = append(g.edges, nil)

	return id
}

// AddVertices appends every value in order and returns their handles,
// equivalent to repeated AddVertex calls.
// Complexity: O(len(values)) amortized.
func (g *Graph[V, E]) AddVertices(values ...V) []VertexID {
	ids := make([]VertexID, len(values))
	for i, v := range values {
		ids[i] = g.AddVertex(v)
	}

	return ids
}

// GetVertex returns the handle of the first stored vertex equal to
// value, in insertion order, or ok=false if no such vertex exists.
// When duplicate payloads are present only the first match is
// reachable this way — a documented limitation of lookup-by-payload.
// Complexity: O(V).
func (g *Graph[V, E]) GetVertex(value V) (VertexID, bool) {
	for i, stored := range g.vertices {
		if stored == value {
			return VertexID(i), true
		}
	}

	return NoVertex, false
}

// Value returns the payload associated with id, or ok=false when id was
// never issued by this graph. Complexity: O(1).
func (g *Graph[V, E]) Value(id VertexID) (V, bool) {
	if !g.valid(id) {
		var zero V
		return zero, false
	}

	return g.vertices[id], true
}

// Size returns the number of vertices in the graph. The arena is
// append-only, so this equals the count of vertices ever added.
// Complexity: O(1).
func (g *Graph[V, E]) Size() int {
	return len(g.vertices)
}

// NumEdges returns the number of edges currently stored.
// Complexity: O(V).
func (g *Graph[V, E]) NumEdges() int {
	var n int
	for _, row := range g.edges {
		n += len(row)
	}

	return n
}

// valid reports whether id addresses a live arena slot.
func (g *Graph[V, E]) valid(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}
