// SPDX-License-Identifier: MIT
// Package: feynman/fixtures
//
// fixtures.go: the catalogue of reference diagrams.

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/feynman/core"
)

// Fixture is a named reference diagram.
type Fixture struct {
	// Name is the lookup key, e.g. "moller".
	Name string
	// Title is a one-line description of the process.
	Title string
	// Loops is the expected loop order of the built diagram.
	Loops int

	build func() (*core.Diagram, error)
}

// Build constructs a fresh, frozen copy of the fixture.
func (f Fixture) Build() (*core.Diagram, error) { return f.build() }

var catalogue = []Fixture{
	{Name: "box", Title: "e- e+ -> e- e+ one-loop box", Loops: 1, build: Box},
	{Name: "moller", Title: "e- e- -> e- e- tree-level Moller scattering", Loops: 0, build: Moller},
	{Name: "ladder", Title: "e- e+ -> e- e+ two-loop ladder", Loops: 2, build: Ladder},
	{Name: "compton", Title: "e- gamma -> gamma e- tree-level Compton scattering", Loops: 0, build: Compton},
	{Name: "annihilation", Title: "e- e+ -> e- e+ via s-channel annihilation", Loops: 0, build: Annihilation},
}

// All returns the catalogue in its fixed order.
func All() []Fixture { return append([]Fixture(nil), catalogue...) }

// Names returns the fixture names in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, f := range catalogue {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a fixture by name.
func Lookup(name string) (Fixture, error) {
	for _, f := range catalogue {
		if f.Name == name {
			return f, nil
		}
	}
	return Fixture{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownFixture)
}

// Box builds the one-loop box: the electron line emits then absorbs a photon,
// the positron line absorbs then emits one, and the two photons cross.
func Box() (*core.Diagram, error) {
	k := newSketch()
	e := k.particles(core.Electron, core.Electron, core.Electron) // e1, ev1, e2
	p := k.particles(core.Positron, core.Positron, core.Positron) // p1, pv1, p2
	g := k.particles(core.Photon, core.Photon)                    // gv1, gv2

	k.vertex(core.ElectronEmit, e[0], e[1], g[0])
	k.vertex(core.ElectronAbsorb, e[1], g[1], e[2])
	k.vertex(core.PositronAbsorb, p[0], g[0], p[1])
	k.vertex(core.PositronEmit, p[1], p[2], g[1])

	return k.diagram("box",
		[]core.ParticleID{e[0], p[0]},
		[]core.ParticleID{e[2], p[2]},
		[]core.ParticleID{e[1], p[1], g[0], g[1]})
}

// Moller builds tree-level electron–electron scattering by one photon.
func Moller() (*core.Diagram, error) {
	k := newSketch()
	e := k.particles(core.Electron, core.Electron, core.Electron, core.Electron)
	gv := k.particle(core.Photon)

	k.vertex(core.ElectronAbsorb, e[0], gv, e[2])
	k.vertex(core.ElectronEmit, e[1], e[3], gv)

	return k.diagram("moller",
		[]core.ParticleID{e[0], e[1]},
		[]core.ParticleID{e[2], e[3]},
		[]core.ParticleID{gv})
}

// Ladder builds the two-loop ladder: three photons rung between the electron
// and the positron line.
func Ladder() (*core.Diagram, error) {
	k := newSketch()
	e := k.particles(core.Electron, core.Electron, core.Electron, core.Electron) // e1, ev1, ev2, e2
	p := k.particles(core.Positron, core.Positron, core.Positron, core.Positron) // p1, pv1, pv2, p2
	g := k.particles(core.Photon, core.Photon, core.Photon)

	for i := range g {
		k.vertex(core.ElectronEmit, e[i], e[i+1], g[i])
	}
	for i := range g {
		k.vertex(core.PositronAbsorb, p[i], g[i], p[i+1])
	}

	return k.diagram("ladder",
		[]core.ParticleID{e[0], p[0]},
		[]core.ParticleID{e[3], p[3]},
		[]core.ParticleID{e[1], e[2], p[1], p[2], g[0], g[1], g[2]})
}

// Compton builds tree-level photon–electron scattering: the electron emits
// the outgoing photon, then absorbs the incoming one.
func Compton() (*core.Diagram, error) {
	k := newSketch()
	e1, g1 := k.particle(core.Electron), k.particle(core.Photon)
	ev := k.particle(core.Electron)
	g2, e2 := k.particle(core.Photon), k.particle(core.Electron)

	k.vertex(core.ElectronEmit, e1, ev, g2)
	k.vertex(core.ElectronAbsorb, ev, g1, e2)

	return k.diagram("compton",
		[]core.ParticleID{e1, g1},
		[]core.ParticleID{g2, e2},
		[]core.ParticleID{ev})
}

// Annihilation builds the s-channel process: the pair annihilates into a
// photon that produces a new pair.
func Annihilation() (*core.Diagram, error) {
	k := newSketch()
	e1, e2 := k.particle(core.Electron), k.particle(core.Electron)
	p1, p2 := k.particle(core.Positron), k.particle(core.Positron)
	gv := k.particle(core.Photon)

	k.vertex(core.Annihilation, e1, p1, gv)
	k.vertex(core.Production, gv, e2, p2)

	return k.diagram("annihilation",
		[]core.ParticleID{e1, p1},
		[]core.ParticleID{e2, p2},
		[]core.ParticleID{gv})
}
