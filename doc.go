// SPDX-License-Identifier: MIT

// Package feynman models Feynman diagrams of quantum electrodynamics as typed
// graphs and grows random ones for two-particle scattering.
//
// What is in the module?
//
//	core/      : particles, vertex variants, the Store arena, Diagram, Verify
//	generator/ : stochastic growth of fully linked diagrams (seedable)
//	fixtures/  : hand-built reference diagrams (box, Møller, ladder, ...)
//	bfs/       : breadth-first search, connected components, particle paths
//	dfs/       : depth-first search, time ordering, closed fermion-flow cycles
//	matrix/    : incidence and adjacency matrices, cycle rank, spanning trees
//	stats/     : per-diagram measures and sample summaries (loop order, sizes)
//	metrics/   : Prometheus collectors observed by the generator
//	cmd/feyngen: CLI: generate, stats, fixtures
//	internal/config: YAML, .env and environment configuration for feyngen
//
// Quick start:
//
//	g := generator.New(generator.WithSeed(42))
//	d, err := g.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := core.Verify(d); err != nil {
//		log.Fatal(err)
//	}
//	s, _ := stats.Measure(d)
//	fmt.Println(s.Loops)
//
// A tree-level example, e⁻ e⁻ → e⁻ e⁻ by exchange of one photon:
//
//	e1 ──► v1 ──► e3
//	        ▲
//	        γ
//	        │
//	e2 ──► v2 ──► e4
//
//	go get github.com/katalvlaran/feynman
package feynman
