// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/feynman/core"
)

// Incidence marks.
const (
	srcMark = -1.0
	dstMark = +1.0
)

// rankTol scales the singular-value cutoff used by Rank.
const rankTol = 1e-9

// IncidenceMatrix is the oriented incidence matrix of a diagram.
type IncidenceMatrix struct {
	Mat         *mat.Dense
	VertexIndex map[core.VertexID]int // vertex → row
	Particles   []core.ParticleID     // column → particle
}

// indexVertices maps every vertex of d to its row.
func indexVertices(d *core.Diagram) map[core.VertexID]int {
	vs := d.AllVertices()
	idx := make(map[core.VertexID]int, len(vs))
	for i, v := range vs {
		idx[v] = i
	}
	return idx
}

// NewIncidence builds the oriented incidence matrix of d.
// Errors: ErrDiagramNil, ErrDangling.
func NewIncidence(d *core.Diagram) (*IncidenceMatrix, error) {
	if d == nil {
		return nil, fmt.Errorf("NewIncidence: %w", ErrDiagramNil)
	}
	idx := indexVertices(d)
	particles := d.AllParticles()
	m := mat.NewDense(len(idx), len(particles), nil)
	for col, pid := range particles {
		p, err := d.Particle(pid)
		if err != nil {
			return nil, fmt.Errorf("NewIncidence: %w", err)
		}
		ends := p.Vertices()
		from, okF := idx[ends[0]]
		to, okT := idx[ends[1]]
		if !okF || !okT {
			return nil, fmt.Errorf("NewIncidence: particle %d: %w", pid, ErrDangling)
		}
		m.Set(from, col, srcMark)
		m.Set(to, col, dstMark)
	}
	return &IncidenceMatrix{Mat: m, VertexIndex: idx, Particles: particles}, nil
}

// Rank returns the numerical rank of the incidence matrix.
func (im *IncidenceMatrix) Rank() (int, error) {
	r, c := im.Mat.Dims()
	var svd mat.SVD
	if !svd.Factorize(im.Mat, mat.SVDNone) {
		return 0, ErrFactorize
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, nil
	}
	cutoff := rankTol * float64(max(r, c)) * values[0]
	rank := 0
	for _, s := range values {
		if s > cutoff {
			rank++
		}
	}
	return rank, nil
}

// CycleRank returns particles − rank: the number of independent loops.
func (im *IncidenceMatrix) CycleRank() (int, error) {
	rank, err := im.Rank()
	if err != nil {
		return 0, err
	}
	return len(im.Particles) - rank, nil
}

// Column returns the incidence column of particle pid, or nil if pid is not
// a particle of the diagram.
func (im *IncidenceMatrix) Column(pid core.ParticleID) []float64 {
	for col, p := range im.Particles {
		if p == pid {
			return mat.Col(nil, col, im.Mat)
		}
	}
	return nil
}

// roundCount converts a determinant that should be integral to an int.
func roundCount(x float64) int { return int(math.Round(x)) }
