// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/feynman/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	diagram *core.Diagram
	opts    topoOptions
	state   map[core.VertexID]int
	order   []core.VertexID
}

// TopologicalSort orders all vertices of d so that every particle's source
// comes before its destination. Roots are tried in AllVertices order, so
// incoming origins lead. Returns ErrCycleDetected on closed flow.
func TopologicalSort(d *core.Diagram, options ...TopoOption) ([]core.VertexID, error) {
	if d == nil {
		return nil, ErrDiagramNil
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}
	verts := d.AllVertices()
	t := &topoSorter{
		diagram: d,
		opts:    opts,
		state:   make(map[core.VertexID]int, len(verts)),
		order:   make([]core.VertexID, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

func (t *topoSorter) visit(id core.VertexID) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("TopologicalSort: back-arc into %d: %w", id, ErrCycleDetected)
	case Black:
		return nil
	}
	t.state[id] = Gray

	next, err := successors(t.diagram, id)
	if err != nil {
		return fmt.Errorf("TopologicalSort: %w", err)
	}
	for _, nid := range next {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)
	return nil
}
