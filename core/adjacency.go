package core

// Adjacency is the capability set algorithms depend on. Both graph
// variants implement it, so traversals and path searches are written
// once against this interface and future representations (directed
// with capacity, multigraphs, ...) plug in by implementing it — not by
// wrapping a concrete type.
//
// Implementations must keep every method total: ids outside the graph
// yield false or nil rather than failing, and Neighbors must return
// targets in a deterministic order for a fixed build sequence.
type Adjacency interface {
	// Size returns the number of vertices in the graph.
	Size() int

	// HasEdge reports whether the ordered pair (u, v) is present in the
	// edge relation. Defined for all pairs, including u == v and ids
	// absent from the graph (false, never a failure).
	HasEdge(u, v VertexID) bool

	// Neighbors returns the out-neighbors of u in a deterministic
	// order, or nil when u is absent. The returned slice may be a view
	// into graph internals and must not be mutated by the caller.
	Neighbors(u VertexID) []VertexID
}

// Both variants satisfy the capability.
var (
	_ Adjacency = (*Unweighted[int])(nil)
	_ Adjacency = (*Weighted[string, float64])(nil)
)
