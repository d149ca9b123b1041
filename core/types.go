// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// types.go: Particle, Vertex and the Store arena that owns them.
//
// Storage model:
//   • A Store holds two flat arenas (particles, vertices). Ids are dense
//     indices into those arenas and are allocated by the Store itself, so no
//     global counter exists and two stores never share state.
//   • Relations (from/to vertex, vertex particles, neighbour lists) are stored
//     as ids, never as pointers, so the particle↔vertex back-references carry
//     no ownership cycle.
//   • Particle and Vertex expose read-only accessors. Mutation happens only
//     through Store methods (LinkFrom, LinkTo, ConstructVertex).
//
// Concurrency:
//   • A Store is not safe for concurrent mutation. Once frozen by NewDiagram
//     it is never written again and may be read from any goroutine.

package core

import "slices"

// ParticleID identifies a particle within its Store.
type ParticleID int

// VertexID identifies a vertex within its Store.
type VertexID int

// NoVertex marks an unset from/to end.
const NoVertex VertexID = -1

// Particle is an edge-like entity of a diagram.
//
// A particle's from- and to-vertex are each assigned at most once. Neighbours
// are split by the end through which they were discovered.
type Particle struct {
	id       ParticleID
	kind     Kind
	from     VertexID
	to       VertexID
	onShell  bool
	incoming bool

	// sources are neighbours met at the from-vertex, destinations at the to-vertex.
	sources      []ParticleID
	destinations []ParticleID
}

// ID returns the particle id.
func (p *Particle) ID() ParticleID { return p.id }

// Kind returns the particle species.
func (p *Particle) Kind() Kind { return p.kind }

// Charge returns the particle's charge (-1, 0 or +1).
func (p *Particle) Charge() int { return p.kind.Charge() }

// IsFermion reports whether the particle is an electron or positron.
func (p *Particle) IsFermion() bool { return p.kind.IsFermion() }

// From returns the originating vertex and whether it is set.
func (p *Particle) From() (VertexID, bool) { return p.from, p.from != NoVertex }

// To returns the terminating vertex and whether it is set.
func (p *Particle) To() (VertexID, bool) { return p.to, p.to != NoVertex }

// HasFrom reports whether the from-end is linked.
func (p *Particle) HasFrom() bool { return p.from != NoVertex }

// HasTo reports whether the to-end is linked.
func (p *Particle) HasTo() bool { return p.to != NoVertex }

// Linked reports whether both ends are set.
func (p *Particle) Linked() bool { return p.HasFrom() && p.HasTo() }

// OnShell reports whether the particle is external (anchored by an origin vertex).
func (p *Particle) OnShell() bool { return p.onShell }

// Incoming reports whether an on-shell particle enters the diagram.
// Meaningless when OnShell is false.
func (p *Particle) Incoming() bool { return p.incoming }

// Vertices returns [from, to]; unset ends are NoVertex.
func (p *Particle) Vertices() [2]VertexID { return [2]VertexID{p.from, p.to} }

// Sources returns the neighbours reachable through the from-vertex.
func (p *Particle) Sources() []ParticleID { return append([]ParticleID(nil), p.sources...) }

// Destinations returns the neighbours reachable through the to-vertex.
func (p *Particle) Destinations() []ParticleID {
	return append([]ParticleID(nil), p.destinations...)
}

// Neighbours returns sources followed by destinations, deduplicated.
func (p *Particle) Neighbours() []ParticleID {
	out := make([]ParticleID, 0, len(p.sources)+len(p.destinations))
	out = append(out, p.sources...)
	for _, q := range p.destinations {
		if !slices.Contains(out, q) {
			out = append(out, q)
		}
	}
	return out
}

// Vertex is a node joining 1 (origin) or 3 (inner) particles.
type Vertex struct {
	id        VertexID
	kind      VertexKind
	particles []ParticleID // role order: inputs then outputs
	incoming  []ParticleID // particles whose to-end is this vertex
	outgoing  []ParticleID // particles whose from-end is this vertex
	fermions  []ParticleID
	bosons    []ParticleID
}

// ID returns the vertex id.
func (v *Vertex) ID() VertexID { return v.id }

// Kind returns the vertex variant.
func (v *Vertex) Kind() VertexKind { return v.kind }

// IsOrigin reports whether the vertex anchors an external particle.
func (v *Vertex) IsOrigin() bool { return v.kind.IsOrigin() }

// Particles returns the attached particles in role order.
func (v *Vertex) Particles() []ParticleID { return append([]ParticleID(nil), v.particles...) }

// Incoming returns the particles that end at this vertex.
func (v *Vertex) Incoming() []ParticleID { return append([]ParticleID(nil), v.incoming...) }

// Outgoing returns the particles that start at this vertex.
func (v *Vertex) Outgoing() []ParticleID { return append([]ParticleID(nil), v.outgoing...) }

// Fermions returns the attached electrons and positrons.
func (v *Vertex) Fermions() []ParticleID { return append([]ParticleID(nil), v.fermions...) }

// Bosons returns the attached photons.
func (v *Vertex) Bosons() []ParticleID { return append([]ParticleID(nil), v.bosons...) }

// Store is the arena that allocates and owns particles and vertices.
// The zero value is ready to use.
type Store struct {
	particles []*Particle
	vertices  []*Vertex
	frozen    bool
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// ParticleCount returns the number of allocated particles.
func (s *Store) ParticleCount() int { return len(s.particles) }

// VertexCount returns the number of allocated vertices.
func (s *Store) VertexCount() int { return len(s.vertices) }

// Frozen reports whether the store is owned by a Diagram and read-only.
func (s *Store) Frozen() bool { return s.frozen }
