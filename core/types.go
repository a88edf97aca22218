// Package core types: VertexID handles, the shared arena, graph
// variants, numeric weight bounds, sentinel errors, and construction
// options.
package core

import (
	"errors"
	"iter"
)

// ErrVertexNotFound indicates an edge operation referenced a VertexID
// outside the arena (never issued by this graph, or issued by another
// graph instance and out of range here).
var ErrVertexNotFound = errors.New("core: vertex not found")

// VertexID is an opaque, stable handle identifying one vertex within
// the graph instance that issued it. Handles are dense indices assigned
// in insertion order, so they are cheap to copy, compare, and use as
// slice keys. A VertexID is not portable across graph instances; using
// a handle from graph A against graph B is a precondition violation
// (range checks keep queries total, but the answer is meaningless).
type VertexID int

// NoVertex is the absent-handle sentinel, used by algorithm packages
// for "no predecessor" slots. It is never issued by AddVertex.
const NoVertex = VertexID(-1)

// Weight bounds the numeric types usable as edge weights.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Connection is one weighted out-edge: the target vertex and the cost
// of reaching it.
type Connection[W Weight] struct {
	// To is the target vertex of the edge.
	To VertexID

	// Weight is the cost or capacity of the edge.
	Weight W
}

// Graph is the shared arena underlying both graph variants: vertex
// payloads in insertion order, plus one out-connection row per vertex.
// Row u holds the connections leaving vertex u, in edge-insertion
// order. E is the per-edge payload: a bare VertexID for Unweighted, a
// Connection for Weighted.
//
// Graph is rarely used directly. Use Unweighted or Weighted, which
// embed it and supply the edge operations.
type Graph[V comparable, E any] struct {
	vertices []V
	edges    [][]E
}

// Unweighted is a graph whose edges carry no cost: path length is
// measured purely by edge count.
type Unweighted[V comparable] struct {
	Graph[V, VertexID]
}

// Weighted is a graph with a numeric weight per edge.
type Weighted[V comparable, W Weight] struct {
	Graph[V, Connection[W]]
}

// Option configures graph construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes the arena so that neither the vertex store nor
// the adjacency rows reallocate while the vertex count stays within n.
// Non-positive n is treated as zero.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewUnweighted creates an empty unweighted graph.
// Complexity: O(1), or O(n) allocation with WithCapacity(n).
func NewUnweighted[V comparable](opts ...Option) *Unweighted[V] {
	cfg := buildConfig(opts)
	g := &Unweighted[V]{}
	g.vertices = make([]V, 0, cfg.capacity)
	g.edges = make([][]VertexID, 0, cfg.capacity)

	return g
}

// NewWeighted creates an empty weighted graph.
// Complexity: O(1), or O(n) allocation with WithCapacity(n).
func NewWeighted[V comparable, W Weight](opts ...Option) *Weighted[V, W] {
	cfg := buildConfig(opts)
	g := &Weighted[V, W]{}
	g.vertices = make([]V, 0, cfg.capacity)
	g.edges = make([][]Connection[W], 0, cfg.capacity)

	return g
}

// CollectUnweighted creates an unweighted graph whose vertices are the
// values yielded by seq, in iteration order. Equivalent to repeated
// AddVertex calls on an empty graph.
func CollectUnweighted[V comparable](seq iter.Seq[V], opts ...Option) *Unweighted[V] {
	g := NewUnweighted[V](opts...)
	for v := range seq {
		g.AddVertex(v)
	}

	return g
}

// CollectWeighted creates a weighted graph whose vertices are the
// values yielded by seq, in iteration order.
func CollectWeighted[V comparable, W Weight](seq iter.Seq[V], opts ...Option) *Weighted[V, W] {
	g := NewWeighted[V, W](opts...)
	for v := range seq {
		g.AddVertex(v)
	}

	return g
}
