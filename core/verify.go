// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// verify.go: post-hoc invariant check of a Diagram.

package core

import (
	"errors"
	"fmt"
)

// Verify re-checks the structural invariants of d and returns every violation
// joined into one error (nil when d is sound):
//
//   - every inner vertex joins exactly 1 boson and 2 fermions (ErrArity);
//   - every inner vertex conserves charge and obeys its fermion rule (ErrCharge);
//   - every particle has both ends set, and each end is a vertex of d (ErrUnlinkedParticle);
//   - externals are on-shell with the right direction, virtuals are not (ErrAlreadyOnShell);
//   - every vertex lists the particles that point at it, and vice versa (ErrRoleMismatch).
//
// Construction already enforces all of these; Verify exists for hand-built
// diagrams, tests and diagnostics.
func Verify(d *Diagram) error {
	if d == nil || d.store == nil {
		return fmt.Errorf("Verify: nil diagram: %w", ErrUnlinkedParticle)
	}
	s := d.store
	var errs []error

	members := make(map[VertexID]struct{}, len(d.incoming)+len(d.outgoing)+len(d.vertices))
	for _, vid := range d.AllVertices() {
		members[vid] = struct{}{}
	}

	for _, vid := range d.vertices {
		v := s.vertex(vid)
		if len(v.bosons) != 1 || len(v.fermions) != 2 {
			errs = append(errs, fmt.Errorf("vertex %d (%s): %d bosons, %d fermions: %w",
				vid, v.kind, len(v.bosons), len(v.fermions), ErrArity))
			continue
		}
		if err := s.checkComposition(v.kind, v.particles); err != nil {
			errs = append(errs, fmt.Errorf("vertex %d (%s): %w", vid, v.kind, err))
		}
		for _, pid := range v.incoming {
			if s.particle(pid).to != vid {
				errs = append(errs, fmt.Errorf("vertex %d lists particle %d as incoming: %w", vid, pid, ErrRoleMismatch))
			}
		}
		for _, pid := range v.outgoing {
			if s.particle(pid).from != vid {
				errs = append(errs, fmt.Errorf("vertex %d lists particle %d as outgoing: %w", vid, pid, ErrRoleMismatch))
			}
		}
	}

	checkEnds := func(p *Particle) {
		for _, end := range p.Vertices() {
			if end == NoVertex {
				errs = append(errs, fmt.Errorf("particle %d (%s): %w", p.id, p.kind, ErrUnlinkedParticle))
				return
			}
			if _, ok := members[end]; !ok {
				errs = append(errs, fmt.Errorf("particle %d (%s) touches foreign vertex %d: %w",
					p.id, p.kind, end, ErrUnlinkedParticle))
			}
		}
	}
	for _, pid := range d.inputs {
		p := s.particle(pid)
		checkEnds(p)
		if !p.onShell || !p.incoming {
			errs = append(errs, fmt.Errorf("input %d is not on-shell incoming: %w", pid, ErrAlreadyOnShell))
		}
	}
	for _, pid := range d.outputs {
		p := s.particle(pid)
		checkEnds(p)
		if !p.onShell || p.incoming {
			errs = append(errs, fmt.Errorf("output %d is not on-shell outgoing: %w", pid, ErrAlreadyOnShell))
		}
	}
	for _, pid := range d.virtuals {
		p := s.particle(pid)
		checkEnds(p)
		if p.onShell {
			errs = append(errs, fmt.Errorf("virtual %d is on-shell: %w", pid, ErrAlreadyOnShell))
		}
	}

	return errors.Join(errs...)
}
