// SPDX-License-Identifier: MIT
// Package: feynman/generator
//
// config.go: internal configuration and defaults.
//
// Defaults:
//   • rng           = time-seeded (use WithSeed for reproducible runs)
//   • inputKinds    = drawn uniformly per input
//   • mintWeight    = 0.4
//   • maxIterations = 10000
//   • logger        = discards everything
//   • metrics       = nil (not recorded)

package generator

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/metrics"
)

const (
	// DefaultMintWeight is w in the mint probability w / virtualCount.
	DefaultMintWeight = 0.4

	// DefaultMaxIterations bounds one Generate call. Typical diagrams need
	// well under a hundred iterations.
	DefaultMaxIterations = 10000
)

// genConfig aggregates every generator knob.
type genConfig struct {
	rng           *rand.Rand
	inputKinds    *[2]core.Kind // nil: draw at construction
	mintWeight    float64
	maxIterations int
	logger        *slog.Logger
	metrics       *metrics.Generator
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		mintWeight:    DefaultMintWeight,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
