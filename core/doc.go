// Package core provides the arena-backed graph primitives of grafton:
// a generic vertex store addressed by dense VertexID handles, the
// Unweighted and Weighted graph variants built on top of it, and the
// Adjacency capability that algorithm packages are written against.
//
// # What
//
//   - Graph[V, E]: the shared arena — a slice of vertex payloads plus
//     one out-connection row per vertex. Rarely used directly; it is
//     embedded by Unweighted and Weighted.
//   - VertexID: an opaque, stable, copyable handle, issued by AddVertex
//     and valid only for the graph instance that issued it.
//   - Unweighted[V]: edge relation is a set of ordered VertexID pairs.
//   - Weighted[V, W]: same relation with a numeric weight per edge.
//   - Adjacency: the minimal capability set (Size, HasEdge, Neighbors)
//     that both variants implement and all algorithms depend on.
//
// # Edge construction
//
// Edges are added one pair at a time with AddEdge, or derived in bulk
// with ConstructEdgesFrom, which evaluates a caller-supplied predicate
// over every ordered pair of currently stored vertices and inserts the
// satisfying pairs. The pair loop does not skip self-pairs; predicates
// encode that themselves (u != v && ...). The quadratic cost is a
// deliberate tradeoff for expressiveness — callers with large vertex
// counts should add edges directly.
//
// # Determinism
//
// VertexIDs are assigned in insertion order, Neighbors returns targets
// in edge-insertion order, and GetVertex resolves duplicate payloads to
// the first match in insertion order. All enumeration surfaces are
// reproducible for a fixed build sequence.
//
// # Errors
//
// Lookups report absence through an ok bool, never an error. The only
// sentinel is ErrVertexNotFound, returned by AddEdge when an endpoint
// id is out of range — this keeps the edge relation referencing live
// vertices only. Queries (HasEdge, Neighbors, Value) are total: an id
// from outside the arena yields false/nil, not a failure.
//
// # Concurrency
//
// A graph is a single logically owned mutable structure. The package
// performs no internal locking; callers that share an instance across
// goroutines must impose external synchronization around the whole
// graph.
package core
