// Package dfs implements depth-first search over a neighbor function.
// The walk is iterative: an explicit stack of frames replaces recursion, so
// the traversal depth is bounded by memory rather than by the goroutine stack.
package dfs

import (
	"errors"
	"fmt"
)

// frame is one entry of the explicit DFS stack.
type frame[K comparable] struct {
	id    K   // node being expanded
	depth int // distance from the start
	nbrs  []K // neighbors fetched on entry
	next  int // index of the next neighbor to try
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[K comparable] struct {
	neighbors func(K) []K
	opts      Options[K]
	res       *Result[K]
	stack     []frame[K]
}

// DFS performs depth-first search from start, expanding each node with
// neighbors. It returns the post-order, parent links, depths and visited
// flags. Hook errors abort the walk; ErrStop ends it early without error.
func DFS[K comparable](start K, neighbors func(K) []K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}

	// 2. Apply options
	dopts := DefaultOptions[K]()
	var fn Option[K]
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Initialize result
	res := &Result[K]{
		Depth:   make(map[K]int),
		Parent:  make(map[K]K),
		Visited: make(map[K]bool),
		start:   start,
	}
	w := &dfsWalker[K]{neighbors: neighbors, opts: dopts, res: res}

	// 4. Traverse
	err := w.run(start)
	res.SkippedNeighbors = w.opts.SkippedNeighbors
	if errors.Is(err, ErrStop) {
		return res, nil
	}

	return res, err
}

// enter marks id visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker[K]) enter(id K, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame[K]{id: id, depth: depth, nbrs: w.neighbors(id)})

	return nil
}

// run drives the explicit stack until it drains or a hook aborts.
func (w *dfsWalker[K]) run(start K) error {
	if err := w.enter(start, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		f := &w.stack[top]

		// 1. Descend into the next admissible neighbor, if any.
		if f.next < len(f.nbrs) {
			nid := f.nbrs[f.next]
			f.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.id, nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[nid] = f.id
			// enter may grow the stack; f must not be used afterwards.
			if err := w.enter(nid, f.depth+1); err != nil {
				return err
			}
			continue
		}

		// 2. All neighbors explored: post-order hook and finish.
		id := f.id
		w.stack = w.stack[:top]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				if errors.Is(err, ErrStop) {
					return err
				}
				return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}
