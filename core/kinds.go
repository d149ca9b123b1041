// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// kinds.go: particle kinds, vertex variants and their lookup tables.
//
// Design:
//   • Kind and VertexKind are closed enumerations; behavior is dispatched
//     through fixed tables indexed by the enum value, never through interfaces.
//   • A vertex variant is fully described by its ordered input kinds, ordered
//     output kinds and a charge rule. Role placement follows those orders.
//   • The per-particle "possible vertices" tables list, in a stable order, the
//     variants that place that kind in an output slot (from-side) or an input
//     slot (to-side). Tests lock the two views against each other.

package core

import (
	"fmt"
	"strings"
)

// Kind identifies a particle species.
type Kind uint8

// Particle kinds.
const (
	Electron Kind = iota
	Positron
	Photon

	numKinds
)

// Kinds lists every particle kind in declaration order.
var Kinds = []Kind{Electron, Positron, Photon}

var kindNames = [numKinds]string{
	Electron: "electron",
	Positron: "positron",
	Photon:   "photon",
}

var kindSymbols = [numKinds]string{
	Electron: "e⁻",
	Positron: "e⁺",
	Photon:   "γ",
}

var kindCharges = [numKinds]int{
	Electron: -1,
	Positron: +1,
	Photon:   0,
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < numKinds }

// String returns the lower-case kind name ("electron", "positron", "photon").
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Symbol returns the conventional physics symbol (e⁻, e⁺, γ).
func (k Kind) Symbol() string {
	if !k.Valid() {
		return "?"
	}
	return kindSymbols[k]
}

// Charge returns the electric charge in units of the elementary charge.
func (k Kind) Charge() int {
	if !k.Valid() {
		return 0
	}
	return kindCharges[k]
}

// IsFermion reports whether k is a matter particle (electron or positron).
func (k Kind) IsFermion() bool { return k == Electron || k == Positron }

// PossibleFromVertices returns the vertex variants that may originate a
// particle of kind k, i.e. variants with k among their outputs.
// The returned slice is a copy; order is stable.
func (k Kind) PossibleFromVertices() []VertexKind {
	if !k.Valid() {
		return nil
	}
	return append([]VertexKind(nil), possibleFrom[k]...)
}

// PossibleToVertices returns the vertex variants that may terminate a
// particle of kind k, i.e. variants with k among their inputs.
// The returned slice is a copy; order is stable.
func (k Kind) PossibleToVertices() []VertexKind {
	if !k.Valid() {
		return nil
	}
	return append([]VertexKind(nil), possibleTo[k]...)
}

// ParseKind maps a name or symbol (case-insensitive for names) to a Kind.
// Accepted: "electron"/"e-"/"e⁻", "positron"/"e+"/"e⁺", "photon"/"gamma"/"γ".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electron", "e-", "e⁻":
		return Electron, nil
	case "positron", "e+", "e⁺":
		return Positron, nil
	case "photon", "gamma", "γ":
		return Photon, nil
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// VertexKind identifies a vertex variant.
type VertexKind uint8

// Vertex variants. The two origin variants anchor external particles; the
// remaining six are inner (interaction) vertices.
const (
	IncomingVertex VertexKind = iota
	OutgoingVertex
	ElectronEmit
	PositronEmit
	ElectronAbsorb
	PositronAbsorb
	Production
	Annihilation

	numVertexKinds
)

// InnerVertexKinds lists every interaction variant in declaration order.
var InnerVertexKinds = []VertexKind{
	ElectronEmit, PositronEmit, ElectronAbsorb, PositronAbsorb, Production, Annihilation,
}

// chargeRule selects the fermion constraint of an inner variant.
type chargeRule uint8

const (
	ruleNone chargeRule = iota
	ruleAllElectrons
	ruleAllPositrons
	ruleOpposite
)

// vertexSpec is the descriptor row of a vertex variant.
type vertexSpec struct {
	name    string
	origin  bool
	inputs  []Kind
	outputs []Kind
	rule    chargeRule
}

var vertexSpecs = [numVertexKinds]vertexSpec{
	IncomingVertex: {name: "IncomingVertex", origin: true},
	OutgoingVertex: {name: "OutgoingVertex", origin: true},
	ElectronEmit: {
		name:    "ElectronEmitVertex",
		inputs:  []Kind{Electron},
		outputs: []Kind{Electron, Photon},
		rule:    ruleAllElectrons,
	},
	PositronEmit: {
		name:    "PositronEmitVertex",
		inputs:  []Kind{Positron},
		outputs: []Kind{Positron, Photon},
		rule:    ruleAllPositrons,
	},
	ElectronAbsorb: {
		name:    "ElectronAbsorbVertex",
		inputs:  []Kind{Electron, Photon},
		outputs: []Kind{Electron},
		rule:    ruleAllElectrons,
	},
	PositronAbsorb: {
		name:    "PositronAbsorbVertex",
		inputs:  []Kind{Positron, Photon},
		outputs: []Kind{Positron},
		rule:    ruleAllPositrons,
	},
	Production: {
		name:    "ProductionVertex",
		inputs:  []Kind{Photon},
		outputs: []Kind{Electron, Positron},
		rule:    ruleOpposite,
	},
	Annihilation: {
		name:    "AnnihilationVertex",
		inputs:  []Kind{Electron, Positron},
		outputs: []Kind{Photon},
		rule:    ruleOpposite,
	},
}

// possibleFrom and possibleTo are the per-kind role tables.
var possibleFrom = [numKinds][]VertexKind{
	Electron: {ElectronEmit, ElectronAbsorb, Production},
	Positron: {PositronEmit, PositronAbsorb, Production},
	Photon:   {ElectronEmit, PositronEmit, Annihilation},
}

var possibleTo = [numKinds][]VertexKind{
	Electron: {ElectronEmit, ElectronAbsorb, Annihilation},
	Positron: {PositronEmit, PositronAbsorb, Annihilation},
	Photon:   {ElectronAbsorb, PositronAbsorb, Production},
}

// Valid reports whether vk is one of the declared variants.
func (vk VertexKind) Valid() bool { return vk < numVertexKinds }

// String returns the variant name, e.g. "ElectronEmitVertex".
func (vk VertexKind) String() string {
	if !vk.Valid() {
		return fmt.Sprintf("vertexkind(%d)", uint8(vk))
	}
	return vertexSpecs[vk].name
}

// IsOrigin reports whether vk anchors an external particle.
func (vk VertexKind) IsOrigin() bool { return vk.Valid() && vertexSpecs[vk].origin }

// Inputs returns the ordered kinds of the particles that end at this variant.
// Origin variants return nil. The slice is a copy.
func (vk VertexKind) Inputs() []Kind {
	if !vk.Valid() {
		return nil
	}
	return append([]Kind(nil), vertexSpecs[vk].inputs...)
}

// Outputs returns the ordered kinds of the particles that start at this variant.
// Origin variants return nil. The slice is a copy.
func (vk VertexKind) Outputs() []Kind {
	if !vk.Valid() {
		return nil
	}
	return append([]Kind(nil), vertexSpecs[vk].outputs...)
}

// Arity returns the number of particles the variant joins (1 for origins, 3 otherwise).
func (vk VertexKind) Arity() int {
	if !vk.Valid() {
		return 0
	}
	if vertexSpecs[vk].origin {
		return 1
	}
	return len(vertexSpecs[vk].inputs) + len(vertexSpecs[vk].outputs)
}
