// SPDX-License-Identifier: MIT

// Package matrix builds linear-algebra views of a core.Diagram on top of
// gonum's mat package.
//
//   - Incidence: oriented vertex × particle matrix, −1 at a particle's
//     source row and +1 at its destination row. Its rank equals
//     vertices − components, so CycleRank (particles − rank) is the loop
//     order of the diagram.
//   - Adjacency: symmetric vertex × vertex matrix counting the particles
//     between two vertices (the photon and the fermion of a self-energy
//     both count). Degrees are 1 for origin vertices and 3 for inner ones.
//   - Laplacian and SpanningTrees: Kirchhoff's matrix-tree theorem; a
//     tree-level diagram has exactly one spanning tree.
//
// Rows follow d.AllVertices() and columns follow d.AllParticles(), so every
// view is deterministic for a given diagram.
//
// Complexity: building is O(V·P) for Incidence and O(V²) for Adjacency;
// Rank is an SVD, O(V·P·min(V,P)); SpanningTrees is an O(V³) determinant.
package matrix
