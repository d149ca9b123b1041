// SPDX-License-Identifier: MIT

package generator

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/metrics"
)

func newTestRun(s *core.Store, opts ...Option) *run {
	cfg := newConfig(append([]Option{WithSeed(1)}, opts...)...)
	return &run{cfg: cfg, store: s, pool: newPool(), log: cfg.logger}
}

// linkedElectron returns a store holding an electron with both ends set:
// incoming origin -> ElectronAbsorb.
func linkedElectron(t *testing.T) (*core.Store, core.ParticleID) {
	t.Helper()
	s := core.NewStore()
	e := s.MustParticle(core.Electron)
	g := s.MustParticle(core.Photon)
	out := s.MustParticle(core.Electron)
	s.MustVertex(core.IncomingVertex, e)
	s.MustVertex(core.ElectronAbsorb, e, g, out)
	p, err := s.Particle(e)
	require.NoError(t, err)
	require.True(t, p.Linked())
	return s, e
}

func TestGrow_FullyLinkedParticle(t *testing.T) {
	s, e := linkedElectron(t)
	r := newTestRun(s)
	r.pool.add(e)

	err := r.grow(e)
	require.ErrorIs(t, err, ErrFullyLinkedParticle)
	assert.Empty(t, r.vertices)
	assert.Equal(t, 2, s.VertexCount())
	assert.Empty(t, r.virtuals)
}

func TestExecute_FullyLinkedParticleAborts(t *testing.T) {
	s, e := linkedElectron(t)
	m := metrics.NewGenerator(prometheus.NewRegistry())
	r := newTestRun(s, WithMetrics(m))
	r.pool.add(e)

	kinds := [2]core.Kind{core.Electron, core.Electron}
	d, err := r.execute(kinds, kinds)
	require.ErrorIs(t, err, ErrFullyLinkedParticle)
	assert.Nil(t, d)
	assert.False(t, s.Frozen())

	g := &Generator{cfg: r.cfg}
	g.observe(r, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues(metrics.ReasonInvariant)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Diagrams))
}

func TestAttach_NoSlot(t *testing.T) {
	s := core.NewStore()
	e := s.MustParticle(core.Electron)
	p, err := s.Particle(e)
	require.NoError(t, err)
	r := newTestRun(s)

	// PositronEmit has no electron output.
	err = r.attach(p, core.PositronEmit, true)
	require.ErrorIs(t, err, ErrNoSlot)
	assert.Empty(t, r.vertices)
	assert.Equal(t, 0, s.VertexCount())
	assert.False(t, p.HasFrom())
}
