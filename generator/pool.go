// SPDX-License-Identifier: MIT
// Package: feynman/generator
//
// pool.go: ordered set of particles with at least one unset end.
//
// The pool is kept in a B-tree ordered by particle id so that a seeded run
// always sees the same candidate order: uniform picks by index are then
// reproducible independent of insertion history.

package generator

import (
	"slices"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/feynman/core"
)

type pool struct {
	tree *btree.BTreeG[core.ParticleID]
}

func newPool() *pool {
	return &pool{
		tree: btree.NewBTreeGOptions(func(a, b core.ParticleID) bool { return a < b },
			btree.Options{NoLocks: true}),
	}
}

func (p *pool) add(id core.ParticleID) { p.tree.Set(id) }

func (p *pool) remove(id core.ParticleID) { p.tree.Delete(id) }

func (p *pool) len() int { return p.tree.Len() }

// takeAt removes and returns the i-th smallest id.
func (p *pool) takeAt(i int) (core.ParticleID, bool) { return p.tree.DeleteAt(i) }

// eligible returns pooled particles of kind whose requested end is unset,
// skipping ids in exclude, in ascending id order.
func (p *pool) eligible(s *core.Store, kind core.Kind, needFrom bool, exclude []core.ParticleID) []core.ParticleID {
	var out []core.ParticleID
	p.tree.Scan(func(id core.ParticleID) bool {
		if slices.Contains(exclude, id) {
			return true
		}
		q, err := s.Particle(id)
		if err != nil || q.Kind() != kind {
			return true
		}
		if (needFrom && !q.HasFrom()) || (!needFrom && !q.HasTo()) {
			out = append(out, id)
		}
		return true
	})
	return out
}

// ids returns the pooled ids in ascending order.
func (p *pool) ids() []core.ParticleID {
	out := make([]core.ParticleID, 0, p.tree.Len())
	p.tree.Scan(func(id core.ParticleID) bool {
		out = append(out, id)
		return true
	})
	return out
}
