// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/feynman/core"
)

// timeLoop builds a one-loop self-energy whose photon runs backwards:
//
//	v0 = ElectronAbsorb(e_in, g → mid)   id 0
//	v1 = ElectronEmit(mid → out, g)      id 1
//
// Origins: 2 (e_in), 3 (out). Flow: 2→0, 0→1, 1→3, 1→0.
func timeLoop(t *testing.T) *core.Diagram {
	t.Helper()
	s := core.NewStore()
	in, mid, out := s.MustParticle(core.Electron), s.MustParticle(core.Electron), s.MustParticle(core.Electron)
	g := s.MustParticle(core.Photon)
	v0 := s.MustVertex(core.ElectronAbsorb, in, g, mid)
	v1 := s.MustVertex(core.ElectronEmit, mid, out, g)
	d, err := core.NewDiagram(s,
		[]core.ParticleID{in}, []core.ParticleID{out},
		[]core.ParticleID{mid, g}, []core.VertexID{v0, v1})
	require.NoError(t, err)
	return d
}
