// Package bfs provides breadth-first search over any core.Adjacency,
// returning unweighted shortest-path distances, parent links, and visit
// order, plus a direct source-to-target shortest-path query.
//
// # What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing
//     distance (edge count) from start and returns a Result with:
//   - Order: visit sequence
//   - Depth: distance in edges from start (-1 when unreached)
//   - Parent: predecessor in the BFS tree (core.NoVertex for the
//     start vertex and unreached vertices)
//   - ShortestPath(g, src, dst, opts...) returns the vertex sequence of
//     a shortest path from src to dst inclusive of both endpoints, and
//     stops expanding as soon as dst is dequeued.
//   - Hooks at three stages (OnEnqueue, OnDequeue, OnVisit), neighbor
//     filtering, a MaxDepth limit, and context cancellation.
//
// # Determinism
//
// Neighbors are expanded in the order the capability reports them —
// edge-insertion order for both core variants — and each vertex is
// enqueued at most once, so the visit sequence and the returned path
// are reproducible for a fixed graph and fixed endpoints. Among several
// paths of equal minimal length, expansion order picks the winner; only
// minimality and path validity are guaranteed.
//
// # Complexity
//
//   - Time:   O(V + E) — each vertex and materialized edge seen once
//   - Memory: O(V) — queue, depth and parent slices, visited set
//
// # Errors
//
//   - ErrGraphNil               nil capability value
//   - ErrStartVertexNotFound    start id outside the graph
//   - ErrTargetVertexNotFound   target id outside the graph
//   - ErrOptionViolation        invalid option (negative MaxDepth)
//   - ErrNoPath                 target unreachable from source
//   - wrapped user errors from the OnVisit hook, and ctx.Err() on
//     cancellation
package bfs
