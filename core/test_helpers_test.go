// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the diagram model tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/feynman/core"
	"github.com/stretchr/testify/require"
)

// moller holds the ids of the tree-level electron–electron scattering diagram:
//
//	e1 ──► v1 ──► e3        v1 = ElectronAbsorb(e1, gv → e3)
//	        ▲
//	        gv
//	        │
//	e2 ──► v2 ──► e4        v2 = ElectronEmit(e2 → e4, gv)
type moller struct {
	s              *core.Store
	e1, e2, e3, e4 core.ParticleID
	gv             core.ParticleID
	v1, v2         core.VertexID
}

// newMollerStore links the two inner vertices without building the Diagram.
func newMollerStore(t *testing.T) moller {
	t.Helper()
	m := moller{s: core.NewStore()}
	m.e1 = m.s.MustParticle(core.Electron)
	m.e2 = m.s.MustParticle(core.Electron)
	m.e3 = m.s.MustParticle(core.Electron)
	m.e4 = m.s.MustParticle(core.Electron)
	m.gv = m.s.MustParticle(core.Photon)

	var err error
	m.v1, err = m.s.ConstructVertex(core.ElectronAbsorb, m.e1, m.gv, m.e3)
	require.NoError(t, err)
	m.v2, err = m.s.ConstructVertex(core.ElectronEmit, m.e2, m.e4, m.gv)
	require.NoError(t, err)
	return m
}

// build wraps the store into a Diagram.
func (m moller) build(t *testing.T) *core.Diagram {
	t.Helper()
	d, err := core.NewDiagram(m.s,
		[]core.ParticleID{m.e1, m.e2},
		[]core.ParticleID{m.e3, m.e4},
		[]core.ParticleID{m.gv},
		[]core.VertexID{m.v1, m.v2})
	require.NoError(t, err)
	return d
}

// mustParticle fetches a particle view or fails the test.
func mustParticle(t *testing.T, s *core.Store, id core.ParticleID) *core.Particle {
	t.Helper()
	p, err := s.Particle(id)
	require.NoError(t, err)
	return p
}

// mustVertex fetches a vertex view or fails the test.
func mustVertex(t *testing.T, s *core.Store, id core.VertexID) *core.Vertex {
	t.Helper()
	v, err := s.Vertex(id)
	require.NoError(t, err)
	return v
}
