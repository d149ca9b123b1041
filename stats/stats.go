// SPDX-License-Identifier: MIT
// Package: feynman/stats
//
// stats.go: per-diagram measurement and sample summaries.

package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/feynman/bfs"
	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/dfs"
)

// Sample holds the figures of one diagram.
type Sample struct {
	Particles     int
	Virtuals      int
	InnerVertices int
	Vertices      int
	Components    int
	Loops         int
	Variants      map[core.VertexKind]int

	// TimeOrdered reports whether the particle flow admits a time ordering;
	// FlowCycles counts the closed flow loops when it does not.
	TimeOrdered bool
	FlowCycles  int
}

// Measure computes the figures of d.
func Measure(d *core.Diagram) (Sample, error) {
	if d == nil {
		return Sample{}, ErrNilDiagram
	}
	comps, err := bfs.Components(d)
	if err != nil {
		return Sample{}, fmt.Errorf("Measure: %w", err)
	}
	c := d.Counts()
	s := Sample{
		Particles:     c.Particles,
		Virtuals:      c.Virtuals,
		InnerVertices: c.InnerVertices,
		Vertices:      c.Vertices,
		Components:    len(comps),
		Loops:         c.Particles - c.Vertices + len(comps),
		Variants:      make(map[core.VertexKind]int),
	}
	for _, id := range d.Vertices() {
		v, err := d.Vertex(id)
		if err != nil {
			return Sample{}, fmt.Errorf("Measure: %w", err)
		}
		s.Variants[v.Kind()]++
	}
	_, cycles, err := dfs.DetectCycles(d)
	if err != nil {
		return Sample{}, fmt.Errorf("Measure: %w", err)
	}
	s.FlowCycles = len(cycles)
	s.TimeOrdered = len(cycles) == 0
	return s, nil
}

// Source produces diagrams; *generator.Generator implements it.
type Source interface {
	Generate() (*core.Diagram, error)
}

// Collect draws n diagrams from src and measures each. The first error
// aborts collection.
func Collect(n int, src Source) ([]Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("Collect(%d): %w", n, ErrBadCount)
	}
	out := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		d, err := src.Generate()
		if err != nil {
			return nil, fmt.Errorf("Collect: diagram %d: %w", i, err)
		}
		s, err := Measure(d)
		if err != nil {
			return nil, fmt.Errorf("Collect: diagram %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Moments describes one figure across a sample.
type Moments struct {
	Mean, StdDev float64
	Median       float64
	Min, Max     float64
}

// Summary reduces a sample of diagrams.
type Summary struct {
	N             int
	Virtuals      Moments
	InnerVertices Moments
	Loops         Moments

	// LoopOrders counts diagrams per loop order.
	LoopOrders map[int]int
	// Variants counts inner vertices per variant over the whole sample.
	Variants map[core.VertexKind]int
	// TimeOrdered counts diagrams whose particle flow is acyclic.
	TimeOrdered int
}

// Summarize reduces samples to per-figure moments and histograms.
func Summarize(samples []Sample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrEmptySample
	}
	n := len(samples)
	virt := make([]float64, n)
	inner := make([]float64, n)
	loops := make([]float64, n)
	sum := Summary{
		N:          n,
		LoopOrders: make(map[int]int),
		Variants:   make(map[core.VertexKind]int),
	}
	for i, s := range samples {
		virt[i] = float64(s.Virtuals)
		inner[i] = float64(s.InnerVertices)
		loops[i] = float64(s.Loops)
		sum.LoopOrders[s.Loops]++
		if s.TimeOrdered {
			sum.TimeOrdered++
		}
		for k, c := range s.Variants {
			sum.Variants[k] += c
		}
	}
	sum.Virtuals = moments(virt)
	sum.InnerVertices = moments(inner)
	sum.Loops = moments(loops)
	return sum, nil
}

// moments sorts x in place.
func moments(x []float64) Moments {
	sort.Float64s(x)
	m := Moments{
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		Min:    floats.Min(x),
		Max:    floats.Max(x),
	}
	if len(x) > 1 {
		m.Mean, m.StdDev = stat.MeanStdDev(x, nil)
	} else {
		m.Mean = x[0]
	}
	return m
}
