// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Diagram, treating
// vertices (origins included) as nodes and particles as undirected edges.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Return a BFSResult with Order (visit sequence), Depth (hops from
//     start) and Parent (predecessor in the BFS tree).
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Per-step filtering via WithFilterNeighbour and a MaxDepth limit.
//   - Components partitions a diagram into connected pieces; ParticlePath
//     maps a vertex path to the particles along it.
//
// Why
//
//   - Loop order of a diagram is particles - vertices + components.
//   - Paths between external legs show how a process is routed.
//
// Determinism
//
//	Neighbours are expanded in core.NeighboursOf order (particles in role
//	order, then source before destination), so visit order is reproducible.
//
// Complexity (V = vertices, P = particles)
//
//   - Time:   O(V + P)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(d, d.IncomingVertices()[0], bfs.WithMaxDepth(3))
//	path, _ := res.PathTo(d.OutgoingVertices()[0])
//	legs, _ := bfs.ParticlePath(d, path)
//
// Errors
//
//   - ErrDiagramNil           if the diagram pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not in the diagram.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNeighbours           if the store rejects a neighbour lookup.
//   - ErrNoPath               from PathTo / ParticlePath.
//   - Context errors and wrapped OnVisit errors.
package bfs
