// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// methods.go: allocation and lookup on the Store arena.

package core

import "fmt"

const (
	methodNewParticle = "NewParticle"
	methodParticle    = "Particle"
	methodVertex      = "Vertex"
)

// NewParticle allocates an unlinked particle of the given kind and returns its id.
// Ids are dense: the n-th particle of a store has id n-1.
//
// Errors: ErrFrozen, ErrUnknownKind.
// Complexity: O(1) amortized.
func (s *Store) NewParticle(kind Kind) (ParticleID, error) {
	if s.frozen {
		return 0, fmt.Errorf("%s: %w", methodNewParticle, ErrFrozen)
	}
	if !kind.Valid() {
		return 0, fmt.Errorf("%s: %s: %w", methodNewParticle, kind, ErrUnknownKind)
	}
	id := ParticleID(len(s.particles))
	s.particles = append(s.particles, &Particle{id: id, kind: kind, from: NoVertex, to: NoVertex})
	return id, nil
}

// MustParticle is NewParticle for fixtures and tests; it panics on error.
func (s *Store) MustParticle(kind Kind) ParticleID {
	id, err := s.NewParticle(kind)
	if err != nil {
		panic(err)
	}
	return id
}

// Particle returns a read-only view of particle id.
//
// Errors: ErrParticleNotFound.
// Complexity: O(1).
func (s *Store) Particle(id ParticleID) (*Particle, error) {
	if !s.hasParticle(id) {
		return nil, fmt.Errorf("%s(%d): %w", methodParticle, id, ErrParticleNotFound)
	}
	return s.particles[id], nil
}

// Vertex returns a read-only view of vertex id.
//
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (s *Store) Vertex(id VertexID) (*Vertex, error) {
	if !s.hasVertex(id) {
		return nil, fmt.Errorf("%s(%d): %w", methodVertex, id, ErrVertexNotFound)
	}
	return s.vertices[id], nil
}

func (s *Store) hasParticle(id ParticleID) bool { return id >= 0 && int(id) < len(s.particles) }

func (s *Store) hasVertex(id VertexID) bool { return id >= 0 && int(id) < len(s.vertices) }

// particle and vertex skip the bounds check; callers validated the id.
func (s *Store) particle(id ParticleID) *Particle { return s.particles[id] }

func (s *Store) vertex(id VertexID) *Vertex { return s.vertices[id] }
