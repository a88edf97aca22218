// Package dfs implements iterative depth-first search over any
// core.Adjacency, plus connectivity queries built on it.
//
// # What
//
//   - DFS(g, start, opts...): preorder traversal from a single source,
//     returning visit order, depth, and parent links. Supports a visit
//     hook, MaxDepth, neighbor filtering, and context cancellation.
//   - Components(g): the weakly-connected components of the graph —
//     edge direction is ignored, so b→a and c→a form one component
//     with a.
//   - IsConnected(g): true iff the graph has at most one weak
//     component. The empty graph is vacuously connected.
//
// # Determinism
//
// The traversal is stack-based: neighbors of a vertex are explored in
// reverse of the order the capability reports them, which is fixed for
// a fixed build sequence. Components lists both the components and
// their members in ascending VertexID order.
//
// # Complexity
//
//   - DFS:        O(V + E) time, O(V) memory
//   - Components: O(V + E) time, O(V + E) memory (undirected view)
//
// # Errors
//
//   - ErrGraphNil            nil capability value passed to DFS
//   - ErrStartVertexNotFound start id outside the graph
//   - ErrOptionViolation     invalid option (negative MaxDepth)
//   - wrapped user errors from the OnVisit hook, and ctx.Err() on
//     cancellation
package dfs
