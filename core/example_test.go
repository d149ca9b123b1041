// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/feynman/core"
)

// ExampleNewDiagram builds tree-level Møller scattering by hand.
func ExampleNewDiagram() {
	s := core.NewStore()
	e1, e2 := s.MustParticle(core.Electron), s.MustParticle(core.Electron)
	e3, e4 := s.MustParticle(core.Electron), s.MustParticle(core.Electron)
	gv := s.MustParticle(core.Photon)

	v1 := s.MustVertex(core.ElectronAbsorb, e1, gv, e3)
	v2 := s.MustVertex(core.ElectronEmit, e2, e4, gv)

	d, err := core.NewDiagram(s,
		[]core.ParticleID{e1, e2}, []core.ParticleID{e3, e4},
		[]core.ParticleID{gv}, []core.VertexID{v1, v2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := d.Particle(gv)
	from, _ := p.From()
	to, _ := p.To()
	fmt.Println("particles:", len(d.AllParticles()))
	fmt.Println("vertices:", len(d.AllVertices()))
	fmt.Println("photon:", from == v2, to == v1)
	fmt.Println("verify:", core.Verify(d))

	// Output:
	// particles: 5
	// vertices: 6
	// photon: true true
	// verify: <nil>
}

// ExampleStore_ConstructVertex shows that a charge-violating vertex is rejected.
func ExampleStore_ConstructVertex() {
	s := core.NewStore()
	g := s.MustParticle(core.Photon)
	a, b := s.MustParticle(core.Electron), s.MustParticle(core.Electron)

	_, err := s.ConstructVertex(core.Production, g, a, b)
	fmt.Println(errors.Is(err, core.ErrCharge))
	fmt.Println(s.VertexCount())

	// Output:
	// true
	// 0
}
