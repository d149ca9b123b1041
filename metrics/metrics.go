// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors observed by the diagram
// generator. Collectors are created against an explicit Registerer so tests
// and embedders can use private registries; a nil Registerer yields working
// but unregistered collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feynman"

// Generator groups the collectors updated by generator.Generate.
type Generator struct {
	// Diagrams counts successfully generated diagrams.
	Diagrams prometheus.Counter

	// Failures counts aborted generations, labelled by reason
	// ("iteration_limit", "invariant", "construct").
	Failures *prometheus.CounterVec

	// Iterations observes main-loop iterations per diagram.
	Iterations prometheus.Histogram

	// Virtuals observes virtual particles minted per diagram.
	Virtuals prometheus.Histogram

	// Vertices counts constructed inner vertices, labelled by variant.
	Vertices *prometheus.CounterVec

	// Reused counts slots filled by an existing unlinked particle;
	// Minted counts slots filled by a new virtual particle.
	Reused prometheus.Counter
	Minted prometheus.Counter
}

// NewGenerator creates the generator collectors and registers them with reg.
// It panics if a collector with the same name is already registered on reg.
func NewGenerator(reg prometheus.Registerer) *Generator {
	f := promauto.With(reg)
	return &Generator{
		Diagrams: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "diagrams_total",
			Help:      "Total number of diagrams generated.",
		}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "failures_total",
			Help:      "Total number of aborted generations by reason.",
		}, []string{"reason"}),
		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "iterations",
			Help:      "Main-loop iterations needed per diagram.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Virtuals: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "virtual_particles",
			Help:      "Virtual particles minted per diagram.",
			Buckets:   prometheus.LinearBuckets(0, 2, 16),
		}),
		Vertices: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "vertices_total",
			Help:      "Inner vertices constructed by variant.",
		}, []string{"variant"}),
		Reused: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "slots_reused_total",
			Help:      "Vertex slots filled with an existing unlinked particle.",
		}),
		Minted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "slots_minted_total",
			Help:      "Vertex slots filled with a newly minted virtual particle.",
		}),
	}
}

// Failure reasons used as label values.
const (
	ReasonIterationLimit = "iteration_limit"
	ReasonInvariant      = "invariant"
	ReasonConstruct      = "construct"
)
