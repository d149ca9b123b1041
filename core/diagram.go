// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// diagram.go: the immutable Diagram aggregate and its read-only views.
//
// Contract:
//   • NewDiagram checks that every listed particle is fully linked (an input's
//     missing from-end and an output's missing to-end are filled by the origin
//     vertex it creates), then freezes the store.
//   • Inputs reuse an existing IncomingVertex link; outputs reuse an existing
//     OutgoingVertex link. Otherwise one origin vertex is created per particle,
//     inputs first, in list order.
//   • Every view returns a fresh slice; the order is fixed at construction.

package core

import (
	"fmt"
	"slices"
)

const methodNewDiagram = "NewDiagram"

// Diagram is a fully linked, rule-valid Feynman diagram.
type Diagram struct {
	store    *Store
	inputs   []ParticleID
	outputs  []ParticleID
	virtuals []ParticleID
	vertices []VertexID // inner vertices
	incoming []VertexID // one IncomingVertex per input
	outgoing []VertexID // one OutgoingVertex per output
}

// NewDiagram assembles a Diagram from already-linked particles and inner vertices.
//
// Errors:
//   - ErrFrozen: the store already belongs to a diagram.
//   - ErrParticleNotFound / ErrVertexNotFound: unknown ids.
//   - ErrDuplicateParticle: a particle listed twice across the three lists.
//   - ErrNotInner: an origin vertex in vertices.
//   - ErrUnlinkedParticle: a particle with a missing end, or an external
//     particle whose origin side is taken by an inner vertex.
//
// On error the store is left untouched.
func NewDiagram(s *Store, inputs, outputs, virtuals []ParticleID, vertices []VertexID) (*Diagram, error) {
	if err := validateDiagram(s, inputs, outputs, virtuals, vertices); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewDiagram, err)
	}

	d := &Diagram{
		store:    s,
		inputs:   slices.Clone(inputs),
		outputs:  slices.Clone(outputs),
		virtuals: slices.Clone(virtuals),
		vertices: slices.Clone(vertices),
		incoming: make([]VertexID, 0, len(inputs)),
		outgoing: make([]VertexID, 0, len(outputs)),
	}
	for _, pid := range inputs {
		vid, err := originOf(s, pid, IncomingVertex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewDiagram, err)
		}
		d.incoming = append(d.incoming, vid)
	}
	for _, pid := range outputs {
		vid, err := originOf(s, pid, OutgoingVertex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewDiagram, err)
		}
		d.outgoing = append(d.outgoing, vid)
	}
	s.frozen = true
	return d, nil
}

// originOf returns the particle's existing origin vertex of the given kind,
// constructing one when that end is still free.
func originOf(s *Store, pid ParticleID, kind VertexKind) (VertexID, error) {
	p := s.particle(pid)
	end := p.from
	if kind == OutgoingVertex {
		end = p.to
	}
	if end != NoVertex {
		return end, nil
	}
	return s.ConstructVertex(kind, pid)
}

func validateDiagram(s *Store, inputs, outputs, virtuals []ParticleID, vertices []VertexID) error {
	if s == nil {
		return fmt.Errorf("nil store: %w", ErrParticleNotFound)
	}
	if s.frozen {
		return ErrFrozen
	}

	seen := make(map[ParticleID]struct{}, len(inputs)+len(outputs)+len(virtuals))
	check := func(role string, ids []ParticleID, needFrom, needTo bool, origin VertexKind) error {
		for _, pid := range ids {
			if !s.hasParticle(pid) {
				return fmt.Errorf("%s %d: %w", role, pid, ErrParticleNotFound)
			}
			if _, dup := seen[pid]; dup {
				return fmt.Errorf("%s %d: %w", role, pid, ErrDuplicateParticle)
			}
			seen[pid] = struct{}{}

			p := s.particle(pid)
			if needFrom && !p.HasFrom() || needTo && !p.HasTo() {
				return fmt.Errorf("%s %d (%s): %w", role, pid, p.kind, ErrUnlinkedParticle)
			}
			var originEnd, innerEnd VertexID
			switch origin {
			case IncomingVertex:
				originEnd, innerEnd = p.from, p.to
			case OutgoingVertex:
				originEnd, innerEnd = p.to, p.from
			default:
				if p.onShell {
					return fmt.Errorf("%s %d (%s) is on-shell: %w", role, pid, p.kind, ErrUnlinkedParticle)
				}
				continue
			}
			// The origin side must be free or already anchored by the right
			// origin kind; the other side must be an inner vertex.
			if originEnd != NoVertex && s.vertex(originEnd).kind != origin {
				return fmt.Errorf("%s %d (%s) is anchored by %s: %w",
					role, pid, p.kind, s.vertex(originEnd).kind, ErrUnlinkedParticle)
			}
			if s.vertex(innerEnd).IsOrigin() {
				return fmt.Errorf("%s %d (%s) has no inner vertex: %w", role, pid, p.kind, ErrUnlinkedParticle)
			}
		}
		return nil
	}
	if err := check("input", inputs, false, true, IncomingVertex); err != nil {
		return err
	}
	if err := check("output", outputs, true, false, OutgoingVertex); err != nil {
		return err
	}
	if err := check("virtual", virtuals, true, true, numVertexKinds); err != nil {
		return err
	}

	for _, vid := range vertices {
		if !s.hasVertex(vid) {
			return fmt.Errorf("vertex %d: %w", vid, ErrVertexNotFound)
		}
		if s.vertex(vid).IsOrigin() {
			return fmt.Errorf("vertex %d (%s): %w", vid, s.vertex(vid).kind, ErrNotInner)
		}
	}
	return nil
}

// Store returns the frozen arena backing the diagram.
func (d *Diagram) Store() *Store { return d.store }

// Inputs returns the incoming external particles.
func (d *Diagram) Inputs() []ParticleID { return slices.Clone(d.inputs) }

// Outputs returns the outgoing external particles.
func (d *Diagram) Outputs() []ParticleID { return slices.Clone(d.outputs) }

// Virtuals returns the internal particles.
func (d *Diagram) Virtuals() []ParticleID { return slices.Clone(d.virtuals) }

// Vertices returns the inner (interaction) vertices.
func (d *Diagram) Vertices() []VertexID { return slices.Clone(d.vertices) }

// IncomingVertices returns one IncomingVertex per input, in input order.
func (d *Diagram) IncomingVertices() []VertexID { return slices.Clone(d.incoming) }

// OutgoingVertices returns one OutgoingVertex per output, in output order.
func (d *Diagram) OutgoingVertices() []VertexID { return slices.Clone(d.outgoing) }

// OriginVertices returns incoming then outgoing origin vertices.
func (d *Diagram) OriginVertices() []VertexID { return slices.Concat(d.incoming, d.outgoing) }

// AllParticles returns inputs, outputs and virtuals, in that order.
func (d *Diagram) AllParticles() []ParticleID {
	return slices.Concat(d.inputs, d.outputs, d.virtuals)
}

// AllVertices returns origin vertices followed by inner vertices.
func (d *Diagram) AllVertices() []VertexID {
	return slices.Concat(d.incoming, d.outgoing, d.vertices)
}

// Particle returns a read-only view of a particle of this diagram.
func (d *Diagram) Particle(id ParticleID) (*Particle, error) { return d.store.Particle(id) }

// Vertex returns a read-only view of a vertex of this diagram.
func (d *Diagram) Vertex(id VertexID) (*Vertex, error) { return d.store.Vertex(id) }

// NeighboursOf delegates to Store.NeighboursOf.
func (d *Diagram) NeighboursOf(id VertexID) ([]VertexID, error) { return d.store.NeighboursOf(id) }

// ParticleOfNeighbour delegates to Store.ParticleOfNeighbour.
func (d *Diagram) ParticleOfNeighbour(id, other VertexID) (ParticleID, bool, error) {
	return d.store.ParticleOfNeighbour(id, other)
}

// Counts summarizes the diagram size.
type Counts struct {
	Inputs, Outputs, Virtuals int
	Particles                 int
	InnerVertices             int
	Vertices                  int
}

// Counts returns particle and vertex totals.
func (d *Diagram) Counts() Counts {
	return Counts{
		Inputs:        len(d.inputs),
		Outputs:       len(d.outputs),
		Virtuals:      len(d.virtuals),
		Particles:     len(d.inputs) + len(d.outputs) + len(d.virtuals),
		InnerVertices: len(d.vertices),
		Vertices:      len(d.incoming) + len(d.outgoing) + len(d.vertices),
	}
}
