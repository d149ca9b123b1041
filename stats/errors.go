// SPDX-License-Identifier: MIT
// Package: feynman/stats
//
// errors.go: sentinel errors for the stats package.

package stats

import "errors"

var (
	// ErrNilDiagram indicates that Measure was given a nil diagram.
	ErrNilDiagram = errors.New("stats: nil diagram")

	// ErrEmptySample indicates that Summarize was given no samples.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrBadCount indicates a non-positive Collect count.
	ErrBadCount = errors.New("stats: count must be positive")
)
