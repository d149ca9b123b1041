// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/feynman/core"
)

// successors returns the destinations of the particles leaving v, in role
// order, without duplicates. Particles with an unset destination are skipped.
func successors(d *core.Diagram, v core.VertexID) ([]core.VertexID, error) {
	vx, err := d.Vertex(v)
	if err != nil {
		return nil, err
	}
	var out []core.VertexID
	for _, pid := range vx.Outgoing() {
		p, err := d.Particle(pid)
		if err != nil {
			return nil, err
		}
		to, ok := p.To()
		if !ok || slices.Contains(out, to) {
			continue
		}
		out = append(out, to)
	}
	return out, nil
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	diagram *core.Diagram
	opts    DFSOptions
	res     *DFSResult
}

// DFS performs depth-first search along particle flow. With
// WithFullTraversal every vertex of d is covered and start is ignored.
func DFS(d *core.Diagram, start core.VertexID, opts ...Option) (*DFSResult, error) {
	if d == nil {
		return nil, ErrDiagramNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	vertices := d.AllVertices()
	if !dopts.FullTraversal && !slices.Contains(vertices, start) {
		return nil, fmt.Errorf("DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	res := &DFSResult{
		Order:   make([]core.VertexID, 0, len(vertices)),
		Depth:   make(map[core.VertexID]int, len(vertices)),
		Parent:  make(map[core.VertexID]core.VertexID, len(vertices)),
		Visited: make(map[core.VertexID]bool, len(vertices)),
	}
	w := &dfsWalker{diagram: d, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
		return res, nil
	}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	return res, nil
}

// traverse visits id at depth and recurses into unvisited successors.
func (w *dfsWalker) traverse(id core.VertexID, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	next, err := successors(w.diagram, id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: successors(%d): %w", id, err)
	}
	for _, nid := range next {
		if w.res.Visited[nid] || (w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth) {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)
	return nil
}
