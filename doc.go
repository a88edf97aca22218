// Package grafton is a small, generic in-memory graph library: register
// arbitrary vertex payloads, derive edges from a pairwise predicate,
// query adjacency, and run unweighted shortest-path search.
//
// Vertices are stored in an arena and addressed through dense, opaque
// core.VertexID handles, so algorithms never touch payloads and payload
// types never need to be hashable or pointer-stable.
//
// Everything is organized under three subpackages:
//
//	core/ — the arena vertex store, the Unweighted and Weighted graph
//	        variants, predicate-driven edge construction, and the
//	        Adjacency capability that algorithms are written against
//	bfs/  — breadth-first traversal and unweighted shortest path
//	dfs/  — depth-first traversal, components and connectivity
//
// Quick example:
//
//	g := core.NewUnweighted[int]()
//	for i := 1; i <= 10; i++ {
//		g.AddVertex(i)
//	}
//	// edge (u, v) exists iff the condition holds
//	g.ConstructEdgesFrom(func(u, v int) bool { return u != v && (u+v)%10 == 0 })
//
// The library is single-threaded by design: a graph is one logically
// owned mutable structure, and callers needing shared access must wrap
// the whole instance in their own lock.
//
//	go get github.com/grafton-go/grafton
package grafton
