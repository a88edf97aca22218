// Breadth-first traversal and unweighted shortest path over the
// core.Adjacency capability.
package bfs

import (
	"fmt"

	"github.com/grafton-go/grafton/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Adjacency
	opts    Options
	target  core.VertexID // NoVertex when running a full traversal
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. The traversal covers every vertex
// reachable from start (subject to MaxDepth and FilterNeighbor).
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g core.Adjacency, start core.VertexID, opts ...Option) (*Result, error) {
	return search(g, start, core.NoVertex, opts)
}

// ShortestPath returns the vertex sequence of a shortest path from src
// to dst by edge count, inclusive of both endpoints, in traversal order
// from src to dst. When src == dst the path is the single-element
// sequence [src]. The search stops as soon as dst is dequeued, and
// unreachable targets yield ErrNoPath.
func ShortestPath(g core.Adjacency, src, dst core.VertexID, opts ...Option) ([]core.VertexID, error) {
	if g != nil && (dst < 0 || int(dst) >= g.Size()) {
		return nil, ErrTargetVertexNotFound
	}
	res, err := search(g, src, dst, opts)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// search validates input, prepares the walker, and runs the main loop.
// A target other than core.NoVertex makes the loop stop early once the
// target has been visited.
func search(g core.Adjacency, start, target core.VertexID, opts []Option) (*Result, error) {
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

	w := &walker{
		graph:   g,
		opts:    o,
		target:  target,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.VertexID, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = core.NoVertex
	}

	// Seed queue with the start vertex (no parent)
	w.enqueue(start, 0, core.NoVertex)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target reached, error, or
// cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.id == w.target {
			// shortest distance to the target is final once dequeued
			return nil
		}
		w.expand(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// expand applies filtering and MaxDepth to the neighbors of item and
// enqueues each unseen one.
func (w *walker) expand(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
