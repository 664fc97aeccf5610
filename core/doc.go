// Package core implements the generalized cell-tuple structure for
// combinatorial cell complexes of a fixed dimension n.
//
// A CellComplex owns every Cell it creates. Cells are small comparable
// handles that can be used as map keys and are ordered by dimension and then
// by creation sequence. Two sentinel cells exist for the lifetime of a
// complex:
//
//	EmptyFace  dimension -1, the unique facet of every 0-cell
//	FullFace   dimension n+1, the unique cofacet of every top cell
//
// Incidence is stored in two directions (lower = facets, upper = cofacets)
// and a switch table maps every (lower face, cell, upper face) slot occupied
// by exactly two cells to the other occupant. A CellTuple is a maximal flag
// (c0 ⊂ c1 ⊂ … ⊂ cn) and Switch(k, t) replaces its k-th cell with the
// unique alternative, which is how orbits of the complex are walked.
//
// Mutation:
//
//	Add(boundary...)   creates a cell from existing cells (bottom-up only)
//	Delete(c)          removes c together with its transitive coboundary
//	Transact(fn)       rolls back every Add/Delete made by fn when it fails
//
// Queries:
//
//	Up/Down(c, k)      cells k ranks above/below c, sorted
//	Facets/Cofacets    direct incidence in insertion order
//	Tuple(cells...)    completes a partial flag
//	Switch/SwitchPath  orbit steps
//	Validate           re-derives every invariant from scratch
//
// A CellComplex is not safe for concurrent mutation. Read-only queries do
// not modify the complex.
package core
