// SPDX-License-Identifier: MIT
// Package core_test verifies vertex construction, linking and adjacency.

package core_test

import (
	"testing"

	"github.com/katalvlaran/feynman/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructVertex_Roles(t *testing.T) {
	m := newMollerStore(t)

	v1 := mustVertex(t, m.s, m.v1)
	assert.Equal(t, core.ElectronAbsorb, v1.Kind())
	assert.Equal(t, []core.ParticleID{m.e1, m.gv, m.e3}, v1.Particles())
	assert.Equal(t, []core.ParticleID{m.e1, m.gv}, v1.Incoming())
	assert.Equal(t, []core.ParticleID{m.e3}, v1.Outgoing())
	assert.Equal(t, []core.ParticleID{m.e1, m.e3}, v1.Fermions())
	assert.Equal(t, []core.ParticleID{m.gv}, v1.Bosons())

	gv := mustParticle(t, m.s, m.gv)
	from, ok := gv.From()
	require.True(t, ok)
	assert.Equal(t, m.v2, from)
	to, ok := gv.To()
	require.True(t, ok)
	assert.Equal(t, m.v1, to)
	assert.Equal(t, [2]core.VertexID{m.v2, m.v1}, gv.Vertices())
	assert.False(t, gv.OnShell())

	// Sources come from v2, destinations from v1.
	assert.Equal(t, []core.ParticleID{m.e2, m.e4}, gv.Sources())
	assert.Equal(t, []core.ParticleID{m.e1, m.e3}, gv.Destinations())
	assert.Equal(t, []core.ParticleID{m.e2, m.e4, m.e1, m.e3}, gv.Neighbours())

	e1 := mustParticle(t, m.s, m.e1)
	assert.False(t, e1.HasFrom())
	assert.True(t, e1.HasTo())
	assert.False(t, e1.Linked())
}

func TestConstructVertex_Errors(t *testing.T) {
	tests := []struct {
		name  string
		kinds []core.Kind
		vk    core.VertexKind
		want  error
	}{
		{"too few", []core.Kind{core.Electron, core.Electron}, core.ElectronEmit, core.ErrArity},
		{"too many", []core.Kind{core.Electron, core.Electron, core.Photon, core.Photon}, core.ElectronEmit, core.ErrArity},
		{"two photons", []core.Kind{core.Electron, core.Photon, core.Photon}, core.ElectronEmit, core.ErrArity},
		{"no photon", []core.Kind{core.Electron, core.Electron, core.Positron}, core.Annihilation, core.ErrArity},
		{"emit positrons", []core.Kind{core.Positron, core.Positron, core.Photon}, core.ElectronEmit, core.ErrCharge},
		{"absorb mixed", []core.Kind{core.Electron, core.Photon, core.Positron}, core.PositronAbsorb, core.ErrCharge},
		{"production same charge", []core.Kind{core.Photon, core.Electron, core.Electron}, core.Production, core.ErrCharge},
		{"photon in electron slot", []core.Kind{core.Photon, core.Electron, core.Electron}, core.ElectronEmit, core.ErrCharge},
		{"swapped outputs", []core.Kind{core.Photon, core.Positron, core.Electron}, core.Production, core.ErrRoleMismatch},
		{"origin with two", []core.Kind{core.Electron, core.Electron}, core.IncomingVertex, core.ErrArity},
		{"unknown kind", []core.Kind{core.Electron}, core.VertexKind(42), core.ErrUnknownKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewStore()
			ids := make([]core.ParticleID, 0, len(tc.kinds))
			for _, k := range tc.kinds {
				ids = append(ids, s.MustParticle(k))
			}
			_, err := s.ConstructVertex(tc.vk, ids...)
			require.ErrorIs(t, err, tc.want)

			// Validation precedes mutation.
			assert.Zero(t, s.VertexCount())
			for _, id := range ids {
				p := mustParticle(t, s, id)
				assert.Equal(t, [2]core.VertexID{core.NoVertex, core.NoVertex}, p.Vertices())
				assert.Empty(t, p.Neighbours())
			}
		})
	}
}

func TestConstructVertex_DuplicateParticle(t *testing.T) {
	s := core.NewStore()
	e := s.MustParticle(core.Electron)
	g := s.MustParticle(core.Photon)
	_, err := s.ConstructVertex(core.ElectronEmit, e, e, g)
	require.ErrorIs(t, err, core.ErrDuplicateParticle)
}

func TestConstructVertex_UnknownParticle(t *testing.T) {
	s := core.NewStore()
	_, err := s.ConstructVertex(core.IncomingVertex, 7)
	require.ErrorIs(t, err, core.ErrParticleNotFound)
}

// TestConstructVertex_DoubleLinkIsAtomic reuses a taken end and checks that
// the other particles of the failed call stay untouched.
func TestConstructVertex_DoubleLinkIsAtomic(t *testing.T) {
	m := newMollerStore(t)
	before := m.s.VertexCount()

	fresh := m.s.MustParticle(core.Electron)
	photon := m.s.MustParticle(core.Photon)
	// e1 already ends at v1; using it as an input again must fail.
	_, err := m.s.ConstructVertex(core.ElectronEmit, m.e1, fresh, photon)
	require.ErrorIs(t, err, core.ErrDoubleLink)

	assert.Equal(t, before, m.s.VertexCount())
	assert.False(t, mustParticle(t, m.s, fresh).HasFrom())
	assert.False(t, mustParticle(t, m.s, photon).HasFrom())
}

func TestLink_DoubleLinkAndOnShell(t *testing.T) {
	s := core.NewStore()
	p := s.MustParticle(core.Positron)

	in, err := s.ConstructVertex(core.IncomingVertex, p)
	require.NoError(t, err)
	pv := mustParticle(t, s, p)
	assert.True(t, pv.OnShell())
	assert.True(t, pv.Incoming())

	// Same end again.
	require.ErrorIs(t, s.LinkFrom(p, in), core.ErrDoubleLink)
	_, err = s.ConstructVertex(core.IncomingVertex, p)
	require.ErrorIs(t, err, core.ErrDoubleLink)

	// Opposite end through an origin: incoming and outgoing at once.
	_, err = s.ConstructVertex(core.OutgoingVertex, p)
	require.ErrorIs(t, err, core.ErrAlreadyOnShell)
	assert.False(t, pv.HasTo())

	// LinkTo on a vertex that does not list the particle.
	require.ErrorIs(t, s.LinkTo(p, in), core.ErrRoleMismatch)
	require.ErrorIs(t, s.LinkTo(p, 99), core.ErrVertexNotFound)
	require.ErrorIs(t, s.LinkTo(99, in), core.ErrParticleNotFound)
}

func TestOutgoingVertex_MarksOutgoing(t *testing.T) {
	s := core.NewStore()
	g := s.MustParticle(core.Photon)
	out := s.MustVertex(core.OutgoingVertex, g)

	p := mustParticle(t, s, g)
	assert.True(t, p.OnShell())
	assert.False(t, p.Incoming())
	to, ok := p.To()
	require.True(t, ok)
	assert.Equal(t, out, to)
	assert.Equal(t, []core.ParticleID{g}, mustVertex(t, s, out).Incoming())
}

func TestNeighboursOf(t *testing.T) {
	m := newMollerStore(t)
	d := m.build(t)

	in := d.IncomingVertices()
	out := d.OutgoingVertices()

	got, err := d.NeighboursOf(m.v1)
	require.NoError(t, err)
	// e1 → incoming[0], gv → v2, e3 → outgoing[0]
	assert.Equal(t, []core.VertexID{in[0], m.v2, out[0]}, got)

	got, err = d.NeighboursOf(in[1])
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{m.v2}, got)

	_, err = d.NeighboursOf(1000)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestParticleOfNeighbour(t *testing.T) {
	m := newMollerStore(t)
	d := m.build(t)

	pid, ok, err := d.ParticleOfNeighbour(m.v1, m.v2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, m.gv, pid)

	pid, ok, err = d.ParticleOfNeighbour(m.v2, d.OutgoingVertices()[1])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, m.e4, pid)

	_, ok, err = d.ParticleOfNeighbour(m.v1, d.IncomingVertices()[1])
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = d.ParticleOfNeighbour(m.v1, m.v1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = d.ParticleOfNeighbour(m.v1, -3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
