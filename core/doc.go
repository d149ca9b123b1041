// SPDX-License-Identifier: MIT

// Package core models Feynman diagrams of quantum electrodynamics as typed
// graphs: particles are edges, vertices are interaction points, and the
// physical rules of each interaction are enforced when a vertex is built.
//
// Entities:
//
//   - Kind: Electron (charge -1), Positron (+1), Photon (0, boson).
//
//   - VertexKind: two origin variants (IncomingVertex, OutgoingVertex) that
//     anchor external particles, and six inner variants:
//
//     | Variant        | Inputs             | Outputs            |
//     |----------------|--------------------|--------------------|
//     | ElectronEmit   | electron           | electron, photon   |
//     | PositronEmit   | positron           | positron, photon   |
//     | ElectronAbsorb | electron, photon   | electron           |
//     | PositronAbsorb | positron, photon   | positron           |
//     | Production     | photon             | electron, positron |
//     | Annihilation   | electron, positron | photon             |
//
//   - Store: an arena allocating particles and vertices with dense integer
//     ids. Relations are ids, not pointers.
//
//   - Diagram: inputs, outputs, virtuals and inner vertices of a frozen
//     Store, plus derived views (origin vertices, all particles, all vertices).
//
// Building by hand:
//
//	s := core.NewStore()
//	e1, e2 := s.MustParticle(core.Electron), s.MustParticle(core.Electron)
//	e3, e4 := s.MustParticle(core.Electron), s.MustParticle(core.Electron)
//	gv := s.MustParticle(core.Photon)
//	v1 := s.MustVertex(core.ElectronAbsorb, e1, gv, e3) // inputs e1, gv; output e3
//	v2 := s.MustVertex(core.ElectronEmit, e2, e4, gv)   // input e2; outputs e4, gv
//	d, err := core.NewDiagram(s, []core.ParticleID{e1, e2}, []core.ParticleID{e3, e4},
//		[]core.ParticleID{gv}, []core.VertexID{v1, v2})
//
// Invariants:
//
//   - A particle's from- and to-end are each set at most once (ErrDoubleLink).
//   - A particle is on-shell through at most one origin vertex (ErrAlreadyOnShell).
//   - An inner vertex joins exactly 1 boson and 2 fermions (ErrArity), obeys
//     its fermion rule and conserves charge (ErrCharge), and holds every
//     particle in a slot of the matching kind (ErrRoleMismatch).
//   - Construction validates first and mutates second: a failed
//     ConstructVertex or NewDiagram leaves the store unchanged.
//   - Every particle of a Diagram has both ends set; the store is frozen
//     afterwards (ErrFrozen).
//
// Determinism:
//
//	Ids are allocated in call order and every view returns ids in a fixed,
//	documented order, so identical construction sequences yield identical
//	diagrams.
//
// Concurrency:
//
//	A Store is single-writer. A Diagram is immutable and safe to share.
package core
