// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// adjacent.go: vertex adjacency derived from shared particles.

package core

import (
	"fmt"
	"slices"
)

const (
	methodNeighboursOf        = "NeighboursOf"
	methodParticleOfNeighbour = "ParticleOfNeighbour"
)

// NeighboursOf returns every other vertex touched by a particle of vertex.
//
// Order: particles in role order, then [from, to] per particle; duplicates and
// the vertex itself are skipped, unset ends are ignored.
//
// Errors: ErrVertexNotFound.
// Complexity: O(k²) for k ≤ 3 particles.
func (s *Store) NeighboursOf(vertex VertexID) ([]VertexID, error) {
	if !s.hasVertex(vertex) {
		return nil, fmt.Errorf("%s(%d): %w", methodNeighboursOf, vertex, ErrVertexNotFound)
	}
	v := s.vertex(vertex)
	out := make([]VertexID, 0, len(v.particles))
	for _, pid := range v.particles {
		p := s.particle(pid)
		for _, w := range p.Vertices() {
			if w == NoVertex || w == vertex || slices.Contains(out, w) {
				continue
			}
			out = append(out, w)
		}
	}
	return out, nil
}

// ParticleOfNeighbour returns the first particle (in role order) shared by
// vertex and other. ok is false when the two vertices are not adjacent; a
// vertex is never its own neighbour.
//
// Errors: ErrVertexNotFound for either id.
func (s *Store) ParticleOfNeighbour(vertex, other VertexID) (ParticleID, bool, error) {
	if !s.hasVertex(vertex) {
		return 0, false, fmt.Errorf("%s(%d, %d): %w", methodParticleOfNeighbour, vertex, other, ErrVertexNotFound)
	}
	if !s.hasVertex(other) {
		return 0, false, fmt.Errorf("%s(%d, %d): %w", methodParticleOfNeighbour, vertex, other, ErrVertexNotFound)
	}
	if vertex == other {
		return 0, false, nil
	}
	for _, pid := range s.vertex(vertex).particles {
		p := s.particle(pid)
		if p.from == other || p.to == other {
			return pid, true, nil
		}
	}
	return 0, false, nil
}
