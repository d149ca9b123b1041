// SPDX-License-Identifier: MIT
// Package: feynman/generator
//
// errors.go: sentinel errors for the generator package.
//
// Every sentinel signals a bug or an exhausted safety net, never an expected
// runtime condition. Generate aborts on the first error and never returns a
// partial diagram; callers that still want a diagram call Generate again.
// Construction errors from core are wrapped with %w, so errors.Is against
// core sentinels (core.ErrDoubleLink, core.ErrCharge, ...) keeps working.

package generator

import "errors"

// ErrFullyLinkedParticle indicates that a particle taken from the unlinked
// pool already had both ends set (pool bookkeeping is broken).
var ErrFullyLinkedParticle = errors.New("generator: fully linked particle in unlinked pool")

// ErrIterationLimit indicates that the main loop exceeded the configured
// iteration cap before the unlinked pool drained.
var ErrIterationLimit = errors.New("generator: iteration limit exceeded")

// ErrNoSlot indicates that a sampled vertex variant has no slot matching the
// chosen particle (role tables disagree).
var ErrNoSlot = errors.New("generator: vertex variant has no slot for particle")
