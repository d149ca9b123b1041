// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/feynman/core"
)

// DetectCycles reports the closed flow loops of d found through back-arcs.
// Each cycle is closed ([v0, v1, ..., v0]) and rotated to start at its
// smallest vertex id; the list is sorted by signature. A nil diagram is
// treated as cycle-free.
func DetectCycles(d *core.Diagram) (bool, [][]core.VertexID, error) {
	if d == nil {
		return false, nil, nil
	}
	verts := d.AllVertices()
	c := &cycleFinder{
		diagram: d,
		state:   make(map[core.VertexID]int, len(verts)),
		path:    make([]core.VertexID, 0, len(verts)),
		seen:    make(map[string]struct{}),
	}
	for _, v := range verts {
		if c.state[v] == White {
			if err := c.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	sort.Slice(c.cycles, func(i, j int) bool {
		return Compare(c.cycles[i], c.cycles[j]) < 0
	})
	if len(c.cycles) == 0 {
		return false, nil, nil
	}
	return true, c.cycles, nil
}

type cycleFinder struct {
	diagram *core.Diagram
	state   map[core.VertexID]int
	path    []core.VertexID
	seen    map[string]struct{}
	cycles  [][]core.VertexID
}

func (c *cycleFinder) visit(id core.VertexID) error {
	c.state[id] = Gray
	c.path = append(c.path, id)

	next, err := successors(c.diagram, id)
	if err != nil {
		return err
	}
	for _, nbr := range next {
		switch c.state[nbr] {
		case White:
			if err = c.visit(nbr); err != nil {
				return err
			}
		case Gray:
			c.record(nbr)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black
	return nil
}

// record closes the path segment starting at start and keeps it if new.
func (c *cycleFinder) record(start core.VertexID) {
	idx := IndexOf(c.path, start)
	base := MinimalRotation(c.path[idx:])
	closed := append(base, base[0])
	sig := fmt.Sprint(closed)
	if _, ok := c.seen[sig]; ok {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, closed)
}
