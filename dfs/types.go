// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/feynman/core"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrDiagramNil is returned when a nil *core.Diagram is passed to DFS,
	// TopologicalSort or DetectCycles.
	ErrDiagramNil = errors.New("dfs: diagram is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not part of
	// the diagram.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that the particle flow has a closed loop.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal.
	OnVisit func(id core.VertexID) error

	// OnExit, if non-nil, is invoked after all successors of a vertex were
	// explored (post-order). Returning an error aborts traversal.
	OnExit func(id core.VertexID) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start vertex. Default -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex in AllVertices order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal covers every vertex of the diagram, not only those
// reachable from start.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in finishing (post-order) sequence.
	Order []core.VertexID

	// Depth is the discovery depth of each vertex within its tree.
	Depth map[core.VertexID]int

	// Parent links each discovered vertex to its discoverer; tree roots are absent.
	Parent map[core.VertexID]core.VertexID

	// Visited flags which vertices were reached.
	Visited map[core.VertexID]bool
}
