// Package bfs provides breadth-first search over any structure described by
// a neighbor function, returning hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (hop count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual candidate edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The simplicial layer walks the dual graph of top cells (cells adjacent
//     across a shared facet) when it discovers the cells a bistellar flip
//     replaces. The neighbor function performs the orbit walk; bfs owns the
//     queue, the visited set and the hooks.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is reproducible for a deterministic neighbor function.
//
// Complexity (V = reachable nodes, E = candidate edges)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(start, neighbors,
//	    bfs.WithMaxDepth[core.Cell](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr core.Cell) bool { return keep[nbr] }),
//	)
//
// Errors
//
//   - ErrNilNeighbors    neighbor function is nil
//   - ErrOptionViolation invalid option value (negative depth)
//   - ErrNoPath          PathTo on an unreached node
//   - any error returned by OnVisit (wrapped)
package bfs
