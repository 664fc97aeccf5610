// Package dfs implements an iterative depth-first traversal over any
// directed structure described by a neighbor function.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Early termination via ErrStop
//   - Depth limiting
//   - Neighbor filtering
//   - Parent links and path reconstruction (Result.PathTo)
//
// Why:
//
//   - The cell complex keeps its face poset as adjacency maps; cascading
//     deletion needs the post-order of a cell's coboundary (every coface is
//     finished before the faces it contains), and tuple construction needs a
//     rising path through cofacets bounded by a target dimension.
//   - The walk runs on an explicit stack, so deep posets never grow the Go
//     call stack and a traversal cannot be abandoned half way by a panic in
//     the recursion.
//
// Key Types:
//
//   - Option[K]: functional options for DFS behavior
//   - Options[K]: holds hooks, MaxDepth, FilterNeighbor
//   - Result[K]: collects post-order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - Time O(V+E) plus the cost of the neighbor function and hooks.
//   - Memory O(V) for the stack and metadata maps.
//
// Errors:
//
//   - ErrNilNeighbors   the neighbor function is nil
//   - ErrOptionViolation an option received an invalid value
//   - hook errors       propagated from OnVisit or OnExit (ErrStop excluded)
package dfs
