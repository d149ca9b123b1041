// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// errors.go: sentinel errors for the diagram model.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: <detail>: %w").
//   • Every sentinel marks a programmer/invariant error. Construction is
//     validated before mutation, so a returned error never leaves a half-linked
//     vertex behind.

package core

import "errors"

var (
	// ErrDoubleLink indicates that a particle's from- or to-end was assigned twice.
	ErrDoubleLink = errors.New("core: particle end already linked")

	// ErrAlreadyOnShell indicates that a particle was attached to origin vertices
	// on both ends (incoming and outgoing at once).
	ErrAlreadyOnShell = errors.New("core: particle already on-shell")

	// ErrArity indicates that an inner vertex does not hold exactly one boson
	// and two fermions, or that the particle count does not match the variant.
	ErrArity = errors.New("core: wrong vertex arity")

	// ErrCharge indicates that the fermions of an inner vertex violate the
	// variant's charge rule, or that charge is not conserved across the vertex.
	ErrCharge = errors.New("core: charge rule violated")

	// ErrRoleMismatch indicates that a particle was placed in a slot whose
	// declared kind differs from the particle's kind.
	ErrRoleMismatch = errors.New("core: particle kind does not match slot")

	// ErrDuplicateParticle indicates that one particle was passed for two
	// slots of the same vertex.
	ErrDuplicateParticle = errors.New("core: particle used twice in one vertex")

	// ErrParticleNotFound indicates an id that the store never allocated.
	ErrParticleNotFound = errors.New("core: particle not found")

	// ErrVertexNotFound indicates an id that the store never allocated.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownKind indicates a particle or vertex kind outside the closed set.
	ErrUnknownKind = errors.New("core: unknown kind")

	// ErrUnlinkedParticle indicates that a diagram particle lacks a from- or
	// to-vertex, or that an external particle is anchored on the wrong side.
	ErrUnlinkedParticle = errors.New("core: particle not fully linked")

	// ErrNotInner indicates that an origin vertex was listed among a diagram's
	// inner vertices.
	ErrNotInner = errors.New("core: vertex is not an inner vertex")

	// ErrFrozen indicates a mutation of a store already owned by a Diagram.
	ErrFrozen = errors.New("core: store is frozen")
)
