// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/feynman/core"
)

// AdjacencyMatrix counts particles between vertex pairs.
type AdjacencyMatrix struct {
	Mat         *mat.SymDense
	VertexIndex map[core.VertexID]int
}

// NewAdjacency builds the symmetric particle-count matrix of d.
// Errors: ErrDiagramNil, ErrDangling.
func NewAdjacency(d *core.Diagram) (*AdjacencyMatrix, error) {
	if d == nil {
		return nil, fmt.Errorf("NewAdjacency: %w", ErrDiagramNil)
	}
	idx := indexVertices(d)
	m := mat.NewSymDense(len(idx), nil)
	for _, pid := range d.AllParticles() {
		p, err := d.Particle(pid)
		if err != nil {
			return nil, fmt.Errorf("NewAdjacency: %w", err)
		}
		ends := p.Vertices()
		i, okF := idx[ends[0]]
		j, okT := idx[ends[1]]
		if !okF || !okT {
			return nil, fmt.Errorf("NewAdjacency: particle %d: %w", pid, ErrDangling)
		}
		m.SetSym(i, j, m.At(i, j)+1)
	}
	return &AdjacencyMatrix{Mat: m, VertexIndex: idx}, nil
}

// Degrees returns the number of particles at each vertex, by row.
func (am *AdjacencyMatrix) Degrees() []float64 {
	n := am.Mat.SymmetricDim()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i] += am.Mat.At(i, j)
		}
	}
	return out
}

// Laplacian returns D − A.
func (am *AdjacencyMatrix) Laplacian() *mat.SymDense {
	n := am.Mat.SymmetricDim()
	deg := am.Degrees()
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := -am.Mat.At(i, j)
			if i == j {
				v += deg[i]
			}
			lap.SetSym(i, j, v)
		}
	}
	return lap
}

// SpanningTrees counts the spanning trees of the diagram's multigraph by the
// matrix-tree theorem. A disconnected diagram has none.
func (am *AdjacencyMatrix) SpanningTrees() int {
	n := am.Mat.SymmetricDim()
	if n <= 1 {
		return 1
	}
	lap := am.Laplacian()
	reduced := mat.NewDense(n-1, n-1, nil)
	reduced.Copy(lap.SliceSym(1, n))
	return roundCount(mat.Det(reduced))
}
