// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/fixtures"
	"github.com/katalvlaran/feynman/generator"
	"github.com/katalvlaran/feynman/matrix"
	"github.com/katalvlaran/feynman/stats"
)

func TestIncidence_Fixtures(t *testing.T) {
	for _, f := range fixtures.All() {
		d, err := f.Build()
		require.NoError(t, err)
		im, err := matrix.NewIncidence(d)
		require.NoError(t, err)

		r, c := im.Mat.Dims()
		counts := d.Counts()
		assert.Equal(t, counts.Vertices, r, f.Name)
		assert.Equal(t, counts.Particles, c, f.Name)

		rank, err := im.Rank()
		require.NoError(t, err)
		assert.Equal(t, counts.Vertices-1, rank, f.Name)

		loops, err := im.CycleRank()
		require.NoError(t, err)
		assert.Equal(t, f.Loops, loops, f.Name)
	}
}

func TestIncidence_Column(t *testing.T) {
	d, err := fixtures.Box()
	require.NoError(t, err)
	im, err := matrix.NewIncidence(d)
	require.NoError(t, err)

	// e1 runs from its incoming origin (vertex 4, row 0) to vertex 0 (row 4).
	col := im.Column(0)
	require.Len(t, col, 8)
	assert.Equal(t, -1.0, col[im.VertexIndex[4]])
	assert.Equal(t, 1.0, col[im.VertexIndex[0]])
	assert.Equal(t, 0, im.VertexIndex[4])
	assert.Equal(t, 4, im.VertexIndex[0])

	sum := 0.0
	for _, x := range col {
		sum += x
	}
	assert.Zero(t, sum)
	assert.Nil(t, im.Column(99))
}

func TestIncidence_MatchesLoopOrder(t *testing.T) {
	g := generator.New(generator.WithSeed(17), generator.WithMintWeight(1.2))
	for i := 0; i < 40; i++ {
		d, err := g.Generate()
		require.NoError(t, err)
		im, err := matrix.NewIncidence(d)
		require.NoError(t, err)
		loops, err := im.CycleRank()
		require.NoError(t, err)
		s, err := stats.Measure(d)
		require.NoError(t, err)
		assert.Equal(t, s.Loops, loops)
	}
}

func TestAdjacency(t *testing.T) {
	d, err := fixtures.Box()
	require.NoError(t, err)
	am, err := matrix.NewAdjacency(d)
	require.NoError(t, err)

	deg := am.Degrees()
	for _, v := range d.OriginVertices() {
		assert.Equal(t, 1.0, deg[am.VertexIndex[v]])
	}
	for _, v := range d.Vertices() {
		assert.Equal(t, 3.0, deg[am.VertexIndex[v]])
	}

	lap := am.Laplacian()
	n := lap.SymmetricDim()
	for i := 0; i < n; i++ {
		row := 0.0
		for j := 0; j < n; j++ {
			row += lap.At(i, j)
		}
		assert.Zero(t, row)
	}
}

func TestSpanningTrees(t *testing.T) {
	want := map[string]int{"box": 4, "moller": 1, "ladder": 15, "compton": 1, "annihilation": 1}
	for _, f := range fixtures.All() {
		d, err := f.Build()
		require.NoError(t, err)
		am, err := matrix.NewAdjacency(d)
		require.NoError(t, err)
		assert.Equal(t, want[f.Name], am.SpanningTrees(), f.Name)
	}

	// Self-energy: the photon and the virtual electron join the same pair.
	s := core.NewStore()
	in, mid, out := s.MustParticle(core.Electron), s.MustParticle(core.Electron), s.MustParticle(core.Electron)
	g := s.MustParticle(core.Photon)
	v0 := s.MustVertex(core.ElectronEmit, in, mid, g)
	v1 := s.MustVertex(core.ElectronAbsorb, mid, g, out)
	d, err := core.NewDiagram(s, []core.ParticleID{in}, []core.ParticleID{out},
		[]core.ParticleID{mid, g}, []core.VertexID{v0, v1})
	require.NoError(t, err)
	am, err := matrix.NewAdjacency(d)
	require.NoError(t, err)
	assert.Equal(t, 2.0, am.Mat.At(am.VertexIndex[v0], am.VertexIndex[v1]))
	assert.Equal(t, 2, am.SpanningTrees())
}

func TestNilDiagram(t *testing.T) {
	_, err := matrix.NewIncidence(nil)
	assert.ErrorIs(t, err, matrix.ErrDiagramNil)
	_, err = matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrDiagramNil)
}
