// SPDX-License-Identifier: MIT
// Package: feynman/generator
//
// options.go: functional options for the generator.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and PANIC on meaningless inputs; Generate
//     itself never panics.
//   • Determinism is explicit: WithSeed/WithRand fix the random stream.

package generator

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/metrics"
)

// Option customizes a Generator before its input/output kinds are drawn.
type Option func(*genConfig)

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit random source. Panics on nil.
// The generator is not goroutine-safe, and neither is r.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithInputKinds fixes the two incoming particle kinds instead of drawing
// them. Outputs are still the same pair or the reversed pair with
// probability 1/2. Panics on an invalid kind.
func WithInputKinds(a, b core.Kind) Option {
	if !a.Valid() || !b.Valid() {
		panic("generator: WithInputKinds(invalid kind)")
	}
	return func(c *genConfig) {
		c.inputKinds = &[2]core.Kind{a, b}
	}
}

// WithMintWeight sets w in the mint probability w / virtualCount.
// Larger values grow larger diagrams. Panics unless w > 0 and finite.
func WithMintWeight(w float64) Option {
	if !(w > 0) || math.IsInf(w, 0) {
		panic("generator: WithMintWeight(w<=0)")
	}
	return func(c *genConfig) {
		c.mintWeight = w
	}
}

// WithMaxIterations caps main-loop iterations per Generate call.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("generator: WithMaxIterations(n<1)")
	}
	return func(c *genConfig) {
		c.maxIterations = n
	}
}

// WithLogger routes the generation trace (Debug level) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}

// WithMetrics records generation outcomes in m. Panics on nil.
func WithMetrics(m *metrics.Generator) Option {
	if m == nil {
		panic("generator: WithMetrics(nil)")
	}
	return func(c *genConfig) {
		c.metrics = m
	}
}
