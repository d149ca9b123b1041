// SPDX-License-Identifier: MIT

// Package dfs implements depth-first algorithms over the directed particle
// flow of a core.Diagram: every particle is an arc from its source vertex to
// its destination vertex.
//
// Key features:
//   - DFS(d, start, opts...): traverse along particle flow from a vertex, or
//     every vertex with WithFullTraversal.
//   - TopologicalSort(d): a time ordering of the vertices in which every
//     particle is emitted before it is absorbed; ErrCycleDetected when the
//     flow is cyclic.
//   - DetectCycles(d): the closed flow loops found by back-arcs, each in
//     canonical (minimal) rotation, sorted.
//
// Diagrams drawn by hand or by the generator are free to route a virtual
// particle "backwards", so cyclic flow is legal; TopologicalSort is how a
// caller tells whether a diagram admits a consistent time ordering.
//
// Complexity:
//
//   - Time:   O(V + P) for DFS and TopologicalSort, plus O(C·L) for
//     canonicalizing C cycles of average length L.
//   - Memory: O(V) for the recursion stack and state maps.
//
// Errors:
//
//   - ErrDiagramNil            if d is nil.
//   - ErrStartVertexNotFound   if start is not a vertex of d.
//   - ErrCycleDetected         from TopologicalSort.
//   - context errors and wrapped OnVisit / OnExit errors.
package dfs
