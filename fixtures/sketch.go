// SPDX-License-Identifier: MIT
// Package: feynman/fixtures
//
// sketch.go: first-error-wins helper for writing fixtures as straight-line
// code. After the first failure every call is a no-op and diagram returns
// that error.

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/feynman/core"
)

type sketch struct {
	s        *core.Store
	vertices []core.VertexID
	err      error
}

func newSketch() *sketch { return &sketch{s: core.NewStore()} }

func (k *sketch) particle(kind core.Kind) core.ParticleID {
	if k.err != nil {
		return 0
	}
	id, err := k.s.NewParticle(kind)
	k.err = err
	return id
}

// particles creates one particle per kind, in order.
func (k *sketch) particles(kinds ...core.Kind) []core.ParticleID {
	ids := make([]core.ParticleID, len(kinds))
	for i, kind := range kinds {
		ids[i] = k.particle(kind)
	}
	return ids
}

// vertex links an inner vertex; particles go inputs first, then outputs.
func (k *sketch) vertex(kind core.VertexKind, particles ...core.ParticleID) {
	if k.err != nil {
		return
	}
	id, err := k.s.ConstructVertex(kind, particles...)
	if err != nil {
		k.err = err
		return
	}
	k.vertices = append(k.vertices, id)
}

func (k *sketch) diagram(name string, inputs, outputs, virtuals []core.ParticleID) (*core.Diagram, error) {
	if k.err != nil {
		return nil, fmt.Errorf("fixtures: %s: %w", name, k.err)
	}
	d, err := core.NewDiagram(k.s, inputs, outputs, virtuals, k.vertices)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %s: %w", name, err)
	}
	return d, nil
}
