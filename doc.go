// Package cellcomplex is an in-memory engine for combinatorial cell
// complexes built on the generalized cell-tuple structure, with a simplicial
// layer for triangulations embedded in R^n.
//
// What is inside:
//
//	core        CellComplex, Cell handles, CellTuple flags, switches, transactions
//	simplicial  coordinates, point location, stellar subdivision, bistellar flips
//	predicates  orientation predicate over gonum determinants
//	builder     constructors for simplices, grids and random refinements
//	bfs, dfs    generic traversals used by incidence walks and flips
//
// Quick example, two triangles glued along an edge:
//
//	    c───d
//	    │ ╲ │
//	    a───b
//
//	sc, _ := builder.BuildComplex(2, nil, nil,
//		builder.DoubleSimplex([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}, []float64{1, 1}))
//	sc.Counts() // [4 5 2]
//
// Cells are created bottom-up from their boundaries and deleted together
// with everything above them. Every flag of the complex is reachable from
// any other in the same component by a sequence of switches.
//
//	go get github.com/katalvlaran/cellcomplex
package cellcomplex
