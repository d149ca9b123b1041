// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/feynman/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	diagram *core.Diagram
	member  map[core.VertexID]bool
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on d starting from start. Only vertices of
// d (origins included) are visited. Returns ErrDiagramNil,
// ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbours, a context
// error, or a wrapped OnVisit error.
func BFS(d *core.Diagram, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if d == nil {
		return nil, ErrDiagramNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	all := d.AllVertices()
	member := make(map[core.VertexID]bool, len(all))
	for _, v := range all {
		member[v] = true
	}
	if !member[start] {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := len(all)
	w := &walker{
		diagram: d,
		member:  member,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &BFSResult{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}
	w.enqueue(start, 0, core.NoVertex)
	return w.res, w.loop()
}

func (w *walker) enqueue(id core.VertexID, depth int, parent core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != core.NoVertex {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, depth)
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbours(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbours enqueues every unseen neighbour that passes the filter
// and the depth limit, in core.NeighboursOf order.
func (w *walker) enqueueNeighbours(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbours, err := w.diagram.NeighboursOf(item.id)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbours, item.id, err)
	}
	for _, nbr := range neighbours {
		if !w.member[nbr] || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbour(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}
	return nil
}

// Components partitions the vertices of d into connected components, in
// AllVertices order of their first member. A well-formed generated diagram
// has exactly one.
func Components(d *core.Diagram) ([][]core.VertexID, error) {
	if d == nil {
		return nil, ErrDiagramNil
	}
	seen := make(map[core.VertexID]bool)
	var out [][]core.VertexID
	for _, v := range d.AllVertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(d, v)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}
	return out, nil
}

// ParticlePath maps a vertex path (as returned by PathTo) to the particles
// joining consecutive vertices.
func ParticlePath(d *core.Diagram, path []core.VertexID) ([]core.ParticleID, error) {
	if d == nil {
		return nil, ErrDiagramNil
	}
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]core.ParticleID, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		pid, ok, err := d.ParticleOfNeighbour(path[i-1], path[i])
		if err != nil {
			return nil, fmt.Errorf("ParticlePath: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("ParticlePath: %d and %d not adjacent: %w", path[i-1], path[i], ErrNoPath)
		}
		out = append(out, pid)
	}
	return out, nil
}
