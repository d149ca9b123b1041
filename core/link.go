// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// link.go: vertex construction and particle linking.
//
// Contract:
//   • ConstructVertex validates arity, composition, charge rule, charge
//     conservation, slot kinds and free ends BEFORE any mutation. A failed
//     call leaves the store exactly as it was.
//   • Particles are passed in role order: the variant's inputs first, then its
//     outputs (see VertexKind.Inputs/Outputs). Origin variants take exactly one
//     particle of any kind.
//   • LinkFrom/LinkTo assign one end of a particle to a vertex that already
//     lists the particle in the matching role. ConstructVertex calls them for
//     every slot; calling them again reports ErrDoubleLink.

package core

import (
	"fmt"
	"slices"
)

const (
	methodConstructVertex = "ConstructVertex"
	methodLinkFrom        = "LinkFrom"
	methodLinkTo          = "LinkTo"
)

// ConstructVertex creates a vertex of variant kind joining the given particles
// and links every particle to it according to the variant's role table.
//
// Errors (checked in this order, all before mutation):
//   - ErrFrozen, ErrUnknownKind, ErrParticleNotFound
//   - ErrArity: wrong particle count, or not exactly 1 boson + 2 fermions
//   - ErrDuplicateParticle: one particle fills two slots
//   - ErrCharge: fermion rule violated or charge not conserved
//   - ErrRoleMismatch: a slot holds a particle of another kind
//   - ErrDoubleLink / ErrAlreadyOnShell: a required end is already taken
//
// Complexity: O(1) (vertices join at most three particles).
func (s *Store) ConstructVertex(kind VertexKind, particles ...ParticleID) (VertexID, error) {
	if err := s.validateVertex(kind, particles); err != nil {
		return NoVertex, fmt.Errorf("%s(%s): %w", methodConstructVertex, kind, err)
	}

	spec := vertexSpecs[kind]
	id := VertexID(len(s.vertices))
	v := &Vertex{
		id:        id,
		kind:      kind,
		particles: append([]ParticleID(nil), particles...),
	}
	switch {
	case kind == IncomingVertex:
		v.outgoing = []ParticleID{particles[0]}
	case kind == OutgoingVertex:
		v.incoming = []ParticleID{particles[0]}
	default:
		nIn := len(spec.inputs)
		v.incoming = append([]ParticleID(nil), particles[:nIn]...)
		v.outgoing = append([]ParticleID(nil), particles[nIn:]...)
	}
	for _, pid := range particles {
		if s.particle(pid).IsFermion() {
			v.fermions = append(v.fermions, pid)
		} else {
			v.bosons = append(v.bosons, pid)
		}
	}
	s.vertices = append(s.vertices, v)

	// Validation guarantees these links succeed.
	for _, pid := range v.incoming {
		if err := s.LinkTo(pid, id); err != nil {
			return NoVertex, fmt.Errorf("%s(%s): %w", methodConstructVertex, kind, err)
		}
	}
	for _, pid := range v.outgoing {
		if err := s.LinkFrom(pid, id); err != nil {
			return NoVertex, fmt.Errorf("%s(%s): %w", methodConstructVertex, kind, err)
		}
	}
	return id, nil
}

// MustVertex is ConstructVertex for fixtures and tests; it panics on error.
func (s *Store) MustVertex(kind VertexKind, particles ...ParticleID) VertexID {
	id, err := s.ConstructVertex(kind, particles...)
	if err != nil {
		panic(err)
	}
	return id
}

// validateVertex runs every construction check without touching the store.
func (s *Store) validateVertex(kind VertexKind, particles []ParticleID) error {
	if s.frozen {
		return ErrFrozen
	}
	if !kind.Valid() {
		return ErrUnknownKind
	}
	for _, pid := range particles {
		if !s.hasParticle(pid) {
			return fmt.Errorf("particle %d: %w", pid, ErrParticleNotFound)
		}
	}
	if len(particles) != kind.Arity() {
		return fmt.Errorf("want %d particles, got %d: %w", kind.Arity(), len(particles), ErrArity)
	}
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			if particles[i] == particles[j] {
				return fmt.Errorf("particle %d: %w", particles[i], ErrDuplicateParticle)
			}
		}
	}

	if kind.IsOrigin() {
		p := s.particle(particles[0])
		if kind == IncomingVertex && p.HasFrom() {
			return fmt.Errorf("particle %d from-end: %w", p.id, ErrDoubleLink)
		}
		if kind == OutgoingVertex && p.HasTo() {
			return fmt.Errorf("particle %d to-end: %w", p.id, ErrDoubleLink)
		}
		if p.onShell {
			return fmt.Errorf("particle %d: %w", p.id, ErrAlreadyOnShell)
		}
		return nil
	}

	if err := s.checkComposition(kind, particles); err != nil {
		return err
	}

	spec := vertexSpecs[kind]
	nIn := len(spec.inputs)
	for i, pid := range particles {
		p := s.particle(pid)
		want := slotKind(spec, i)
		if p.kind != want {
			return fmt.Errorf("slot %d wants %s, particle %d is %s: %w", i, want, pid, p.kind, ErrRoleMismatch)
		}
		if i < nIn && p.HasTo() {
			return fmt.Errorf("particle %d to-end: %w", pid, ErrDoubleLink)
		}
		if i >= nIn && p.HasFrom() {
			return fmt.Errorf("particle %d from-end: %w", pid, ErrDoubleLink)
		}
	}
	return nil
}

// checkComposition enforces 1 boson + 2 fermions, the variant's fermion rule
// and charge conservation between input and output slots.
func (s *Store) checkComposition(kind VertexKind, particles []ParticleID) error {
	spec := vertexSpecs[kind]
	var fermions []Kind
	bosons := 0
	for _, pid := range particles {
		k := s.particle(pid).kind
		if k.IsFermion() {
			fermions = append(fermions, k)
		} else {
			bosons++
		}
	}
	if bosons != 1 || len(fermions) != 2 {
		return fmt.Errorf("%d bosons, %d fermions: %w", bosons, len(fermions), ErrArity)
	}

	switch spec.rule {
	case ruleAllElectrons:
		if fermions[0] != Electron || fermions[1] != Electron {
			return fmt.Errorf("fermions must be electrons: %w", ErrCharge)
		}
	case ruleAllPositrons:
		if fermions[0] != Positron || fermions[1] != Positron {
			return fmt.Errorf("fermions must be positrons: %w", ErrCharge)
		}
	case ruleOpposite:
		if fermions[0].Charge()+fermions[1].Charge() != 0 {
			return fmt.Errorf("fermions must have opposite charge: %w", ErrCharge)
		}
	}

	in, out := 0, 0
	for i, pid := range particles {
		if i < len(spec.inputs) {
			in += s.particle(pid).Charge()
		} else {
			out += s.particle(pid).Charge()
		}
	}
	if in != out {
		return fmt.Errorf("charge in %+d, out %+d: %w", in, out, ErrCharge)
	}
	return nil
}

// slotKind returns the declared kind of role slot i (inputs then outputs).
func slotKind(spec vertexSpec, i int) Kind {
	if i < len(spec.inputs) {
		return spec.inputs[i]
	}
	return spec.outputs[i-len(spec.inputs)]
}

// LinkFrom registers vertex as the origin of particle.
//
// The vertex must list the particle among its outgoing particles, and only
// ConstructVertex creates that state (linking at once). Calling LinkFrom
// afterwards therefore fails with ErrDoubleLink or ErrRoleMismatch; it exists
// to re-check a link, not to build one. On success
// every other particle at the vertex becomes a source neighbour, and an
// IncomingVertex marks the particle on-shell and incoming.
//
// Errors: ErrFrozen, ErrParticleNotFound, ErrVertexNotFound, ErrRoleMismatch,
// ErrDoubleLink, ErrAlreadyOnShell.
func (s *Store) LinkFrom(particle ParticleID, vertex VertexID) error {
	p, v, err := s.linkPair(methodLinkFrom, particle, vertex)
	if err != nil {
		return err
	}
	if p.HasFrom() {
		return fmt.Errorf("%s(%d, %d): from-end is %d: %w", methodLinkFrom, particle, vertex, p.from, ErrDoubleLink)
	}
	if !slices.Contains(v.outgoing, particle) {
		return fmt.Errorf("%s(%d, %d): not an outgoing particle: %w", methodLinkFrom, particle, vertex, ErrRoleMismatch)
	}
	if v.kind == IncomingVertex {
		if p.onShell {
			return fmt.Errorf("%s(%d, %d): %w", methodLinkFrom, particle, vertex, ErrAlreadyOnShell)
		}
		p.onShell, p.incoming = true, true
	}
	p.from = vertex
	p.sources = addNeighbours(p.sources, p.id, v.particles)
	return nil
}

// LinkTo registers vertex as the terminus of particle.
//
// The vertex must list the particle among its incoming particles; as with
// LinkFrom, only ConstructVertex creates that state, so an external call
// fails with ErrDoubleLink or ErrRoleMismatch. On success
// every other particle at the vertex becomes a destination neighbour, and an
// OutgoingVertex marks the particle on-shell and outgoing.
//
// Errors: ErrFrozen, ErrParticleNotFound, ErrVertexNotFound, ErrRoleMismatch,
// ErrDoubleLink, ErrAlreadyOnShell.
func (s *Store) LinkTo(particle ParticleID, vertex VertexID) error {
	p, v, err := s.linkPair(methodLinkTo, particle, vertex)
	if err != nil {
		return err
	}
	if p.HasTo() {
		return fmt.Errorf("%s(%d, %d): to-end is %d: %w", methodLinkTo, particle, vertex, p.to, ErrDoubleLink)
	}
	if !slices.Contains(v.incoming, particle) {
		return fmt.Errorf("%s(%d, %d): not an incoming particle: %w", methodLinkTo, particle, vertex, ErrRoleMismatch)
	}
	if v.kind == OutgoingVertex {
		if p.onShell {
			return fmt.Errorf("%s(%d, %d): %w", methodLinkTo, particle, vertex, ErrAlreadyOnShell)
		}
		p.onShell, p.incoming = true, false
	}
	p.to = vertex
	p.destinations = addNeighbours(p.destinations, p.id, v.particles)
	return nil
}

func (s *Store) linkPair(method string, particle ParticleID, vertex VertexID) (*Particle, *Vertex, error) {
	if s.frozen {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrFrozen)
	}
	if !s.hasParticle(particle) {
		return nil, nil, fmt.Errorf("%s(%d, %d): %w", method, particle, vertex, ErrParticleNotFound)
	}
	if !s.hasVertex(vertex) {
		return nil, nil, fmt.Errorf("%s(%d, %d): %w", method, particle, vertex, ErrVertexNotFound)
	}
	return s.particle(particle), s.vertex(vertex), nil
}

// addNeighbours appends every id in others except self, skipping duplicates.
func addNeighbours(dst []ParticleID, self ParticleID, others []ParticleID) []ParticleID {
	for _, q := range others {
		if q == self || slices.Contains(dst, q) {
			continue
		}
		dst = append(dst, q)
	}
	return dst
}
