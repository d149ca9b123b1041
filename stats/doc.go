// SPDX-License-Identifier: MIT

// Package stats measures diagrams and summarizes samples of them.
//
// Measure extracts per-diagram figures (particle and vertex counts, connected
// components, loop order, inner-vertex variant histogram, whether the
// particle flow admits a time ordering). Collect draws n
// diagrams from any Source (a *generator.Generator satisfies it) and
// Summarize reduces the samples to mean, standard deviation, median and
// range per figure using gonum's stat and floats packages.
//
// Loop order is the cycle rank of the diagram seen as an undirected
// multigraph: particles - vertices + components, origins included. Tree-level
// diagrams have loop order 0.
package stats
