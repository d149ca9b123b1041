// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/fixtures"
)

// moller builds the tree-level fixture. Vertex ids: 0 = ElectronAbsorb,
// 1 = ElectronEmit, 2/3 = incoming origins of e1/e2, 4/5 = outgoing
// origins of e3/e4.
func moller(t testing.TB) *core.Diagram {
	t.Helper()
	d, err := fixtures.Moller()
	if err != nil {
		t.Fatalf("Moller: %v", err)
	}
	return d
}

// twoSelfEnergies builds two disconnected electron lines, each emitting and
// reabsorbing its own photon.
func twoSelfEnergies(t testing.TB) *core.Diagram {
	t.Helper()
	s := core.NewStore()
	var inputs, outputs, virtuals []core.ParticleID
	var vertices []core.VertexID
	for i := 0; i < 2; i++ {
		in, mid, out := s.MustParticle(core.Electron), s.MustParticle(core.Electron), s.MustParticle(core.Electron)
		g := s.MustParticle(core.Photon)
		vertices = append(vertices,
			s.MustVertex(core.ElectronEmit, in, mid, g),
			s.MustVertex(core.ElectronAbsorb, mid, g, out))
		inputs = append(inputs, in)
		outputs = append(outputs, out)
		virtuals = append(virtuals, mid, g)
	}
	d, err := core.NewDiagram(s, inputs, outputs, virtuals, vertices)
	if err != nil {
		t.Fatalf("NewDiagram: %v", err)
	}
	return d
}
