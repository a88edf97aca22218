// Iterative depth-first traversal over the core.Adjacency capability.
package dfs

import (
	"fmt"

	"github.com/grafton-go/grafton/core"
)

// stackItem carries the pending vertex together with the tree edge that
// discovered it, so Parent reflects the edge actually taken even when a
// vertex is pushed more than once.
type stackItem struct {
	id     core.VertexID
	parent core.VertexID
	depth  int
}

// DFS performs an iterative preorder depth-first search on g starting
// from start, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func DFS(g core.Adjacency, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Size()
	if start < 0 || int(start) >= n {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{
		Order:  make([]core.VertexID, 0, n),
		Depth:  make([]int, n),
		Parent: make([]core.VertexID, n),
	}
	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = core.NoVertex
	}

	stack := make([]stackItem, 0, n)
	stack = append(stack, stackItem{id: start, parent: core.NoVertex})

	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.id] {
			continue
		}
		visited[top.id] = true
		res.Depth[top.id] = top.depth
		res.Parent[top.id] = top.parent
		res.Order = append(res.Order, top.id)

		if err := o.OnVisit(top.id, top.depth); err != nil {
			return res, fmt.Errorf("dfs: OnVisit error at %d: %w", top.id, err)
		}

		nextDepth := top.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}
		for _, nbr := range g.Neighbors(top.id) {
			if !o.FilterNeighbor(top.id, nbr) {
				continue
			}
			if !visited[nbr] {
				stack = append(stack, stackItem{id: nbr, parent: top.id, depth: nextDepth})
			}
		}
	}

	return res, nil
}
