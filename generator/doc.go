// SPDX-License-Identifier: MIT

// Package generator grows random Feynman diagrams for a two-particle
// scattering process out of the vertex variants defined in package core.
//
// A Generator fixes the external kinds once (two inputs drawn uniformly from
// electron, positron and photon; outputs equal to the inputs in the same or
// reversed order) and then produces one fully linked, frozen *core.Diagram
// per Generate call:
//
//	g := generator.New(generator.WithSeed(42))
//	d, err := g.Generate()
//	if err != nil {
//		// only bugs or an exhausted iteration cap end up here
//	}
//	fmt.Println(d.Counts())
//
// Growth picks an unlinked particle, samples a vertex variant that can sit
// at its missing end, and fills the remaining slots either with other
// unlinked particles or with newly minted virtual particles. The mint
// probability is w / n, where n is the number of virtuals minted so far
// (w = 0.4 by default, see WithMintWeight); it is 1 while n == 0. Larger w
// grows larger diagrams with more loops.
//
// Determinism: WithSeed / WithRand fix the whole sequence of diagrams
// returned by successive Generate calls.
//
// Observability: WithLogger receives a Debug-level trace of every choice,
// tagged with a per-run UUID; WithMetrics records counters and histograms
// from package metrics.
//
// A Generator is not safe for concurrent use.
package generator
