// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.

package matrix

import "errors"

var (
	// ErrDiagramNil is returned when a nil diagram is passed to a builder.
	ErrDiagramNil = errors.New("matrix: diagram is nil")

	// ErrDangling is returned when a particle of the diagram has an end
	// outside the diagram's vertex set.
	ErrDangling = errors.New("matrix: particle end outside diagram")

	// ErrFactorize is returned when the SVD used by Rank does not converge.
	ErrFactorize = errors.New("matrix: factorization failed")
)
