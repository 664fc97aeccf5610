// Package dfs defines types and options for depth-first traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering
// and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNeighbors is returned when DFS is called without a neighbor function.
	ErrNilNeighbors = errors.New("dfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStop may be returned by OnVisit or OnExit to end the traversal
	// early. DFS then returns the partial result and a nil error.
	ErrStop = errors.New("dfs: stop traversal")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(start, neighbors, opts...).
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[K comparable] struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a node
	// (pre-order) together with its depth. Returning an error aborts traversal.
	OnVisit func(id K, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(id K) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each candidate edge
	// curr→next. Return false to skip next.
	FilterNeighbor func(curr, next K) bool

	// SkippedNeighbors counts candidates rejected by FilterNeighbor.
	SkippedNeighbors int

	err error
}

// DefaultOptions returns Options with no hooks, no filter and no depth limit.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		SkippedNeighbors: 0,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; a negative limit
// other than -1 is reported as ErrOptionViolation.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *Options[K]) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be below -1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters candidate edges.
// If fn(curr, next) == false, next is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[K comparable](fn func(curr, next K) bool) Option[K] {
	return func(o *Options[K]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []K

	// Depth maps each node to its distance (#edges) from the start.
	Depth map[K]int

	// Parent maps each node to the node from which it was first discovered.
	// The start node does not appear in this map.
	Parent map[K]K

	// Visited flags which nodes were reached during the traversal.
	Visited map[K]bool

	// SkippedNeighbors reports how many candidates FilterNeighbor rejected.
	SkippedNeighbors int

	start K
}

// PathTo reconstructs the discovery path from the start node to target,
// both included. It reports false if target was not reached.
func (r *Result[K]) PathTo(target K) ([]K, bool) {
	if !r.Visited[target] {
		return nil, false
	}
	path := []K{target}
	for cur := target; cur != r.start; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
