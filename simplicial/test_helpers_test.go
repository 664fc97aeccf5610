// SPDX-License-Identifier: MIT
// Package simplicial_test contains shared fixtures for the simplicial tests.

package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/simplicial"
)

// Corner points of the double tetrahedron; tetrahedron 0 uses points 0..3,
// tetrahedron 1 uses points 1..4 and shares face {1, 2, 3}.
var dtPoints = [][]float64{{0, 0, 0}, {0, 0, 100}, {0, 100, 0}, {100, 0, 0}, {100, 100, 100}}

var (
	dtEdges = [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}, {3, 1}, {1, 4}, {4, 2}, {4, 3}}
	dtFaces = [][]int{{0, 1, 3}, {0, 2, 5}, {1, 2, 4}, {3, 4, 5}, {6, 7, 3}, {7, 8, 4}, {8, 6, 5}}
	dtTets  = [][]int{{0, 1, 2, 3}, {3, 4, 5, 6}}
)

var (
	tetEdges = [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	tetFaces = [][]int{{0, 1, 3}, {0, 2, 4}, {1, 2, 5}, {3, 4, 5}}
	tetTets  = [][]int{{0, 1, 2, 3}}
)

// fixture indexes the cells of a hand-built complex per dimension.
type fixture struct {
	sc    *simplicial.Complex
	cells [][]core.Cell
}

func (x fixture) v(i int) core.Cell { return x.cells[0][i] }
func (x fixture) e(i int) core.Cell { return x.cells[1][i] }
func (x fixture) f(i int) core.Cell { return x.cells[2][i] }
func (x fixture) t(i int) core.Cell { return x.cells[3][i] }

// build creates a complex with one vertex per point and the given boundary
// tables, one per dimension from 1 upward.
func build(t testing.TB, dim int, points [][]float64, tables [][][]int, opts ...simplicial.Option) fixture {
	t.Helper()
	sc, err := simplicial.New(dim, opts...)
	require.NoError(t, err)
	x := fixture{sc: sc, cells: make([][]core.Cell, dim+1)}
	for _, p := range points {
		v, err := sc.AddVertex(p)
		require.NoError(t, err)
		x.cells[0] = append(x.cells[0], v)
	}
	for d, table := range tables {
		for _, idx := range table {
			boundary := make([]core.Cell, len(idx))
			for j, k := range idx {
				boundary[j] = x.cells[d][k]
			}
			c, err := sc.Add(boundary...)
			require.NoError(t, err)
			x.cells[d+1] = append(x.cells[d+1], c)
		}
	}

	return x
}

func newDoubleTetrahedron(t testing.TB, opts ...simplicial.Option) fixture {
	return build(t, 3, dtPoints, [][][]int{dtEdges, dtFaces, dtTets}, opts...)
}

func newTetrahedron(t testing.TB, opts ...simplicial.Option) fixture {
	return build(t, 3, dtPoints[:4], [][][]int{tetEdges, tetFaces, tetTets}, opts...)
}

// newSquare returns the unit square split along the diagonal 0-2 into
// triangles {0,1,2} and {0,2,3}.
func newSquare(t testing.TB, opts ...simplicial.Option) fixture {
	return build(t, 2,
		[][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][][]int{
			{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {0, 3}},
			{{0, 1, 2}, {2, 3, 4}},
		}, opts...)
}

// vertexSets returns the sorted vertex ids of every top simplex.
func vertexSets(t testing.TB, sc *simplicial.Complex) [][]uint64 {
	t.Helper()
	var out [][]uint64
	for _, s := range sc.Cells(sc.Dim()) {
		vs, err := sc.Vertices(s)
		require.NoError(t, err)
		ids := make([]uint64, len(vs))
		for i, v := range vs {
			ids[i] = v.ID()
		}
		out = append(out, ids)
	}

	return out
}

// ids maps fixture vertices to their ids.
func ids(cs ...core.Cell) []uint64 {
	out := make([]uint64, len(cs))
	for i, c := range cs {
		out[i] = c.ID()
	}

	return out
}

// interiorFacet returns a facet with two top cofacets whose vertex set
// contains every cell in must.
func interiorFacet(t testing.TB, sc *simplicial.Complex, must ...core.Cell) core.Cell {
	t.Helper()
	for _, f := range sc.Cells(sc.Dim() - 1) {
		if len(sc.Cofacets(f)) != 2 {
			continue
		}
		vs, err := sc.Vertices(f)
		require.NoError(t, err)
		all := true
		for _, m := range must {
			found := false
			for _, v := range vs {
				found = found || v == m
			}
			all = all && found
		}
		if all {
			return f
		}
	}
	t.Fatalf("no interior facet through %v", must)

	return core.Cell{}
}
