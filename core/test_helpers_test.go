// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.
//
// Purpose:
//   - Build small, deterministic complexes by explicit boundary lists.
//   - Keep index tables next to the geometry they describe so tests can
//     name cells by position.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellcomplex/core"
)

// fixture holds the cells of a hand-built complex, indexed per dimension.
type fixture struct {
	cx    *core.CellComplex
	cells [][]core.Cell
}

func (x fixture) v(i int) core.Cell { return x.cells[0][i] }
func (x fixture) e(i int) core.Cell { return x.cells[1][i] }
func (x fixture) f(i int) core.Cell { return x.cells[2][i] }
func (x fixture) t(i int) core.Cell { return x.cells[3][i] }

// Boundary tables for a single tetrahedron on vertices 0..3.
var (
	tetEdges = [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	tetFaces = [][]int{{0, 1, 3}, {0, 2, 4}, {1, 2, 5}, {3, 4, 5}}
	tetTets  = [][]int{{0, 1, 2, 3}}
)

// Boundary tables for two tetrahedra glued along face 3 = {v1, v2, v3}.
var (
	dtEdges = [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}, {3, 1}, {1, 4}, {4, 2}, {4, 3}}
	dtFaces = [][]int{{0, 1, 3}, {0, 2, 5}, {1, 2, 4}, {3, 4, 5}, {6, 7, 3}, {7, 8, 4}, {8, 6, 5}}
	dtTets  = [][]int{{0, 1, 2, 3}, {3, 4, 5, 6}}
)

// buildFixture creates a complex of dimension dim with nv vertices and the
// given boundary tables, one per dimension from 1 upward.
func buildFixture(t testing.TB, dim, nv int, tables [][][]int, opts ...core.Option) fixture {
	t.Helper()
	cx, err := core.NewCellComplex(dim, opts...)
	require.NoError(t, err)
	f := fixture{cx: cx, cells: make([][]core.Cell, dim+1)}
	for i := 0; i < nv; i++ {
		v, err := cx.Add()
		require.NoError(t, err)
		f.cells[0] = append(f.cells[0], v)
	}
	for d, table := range tables {
		for _, idx := range table {
			boundary := make([]core.Cell, len(idx))
			for j, k := range idx {
				boundary[j] = f.cells[d][k]
			}
			c, err := cx.Add(boundary...)
			require.NoError(t, err, "dim %d boundary %v", d+1, idx)
			f.cells[d+1] = append(f.cells[d+1], c)
		}
	}

	return f
}

// newTetrahedron returns a 3-complex holding one tetrahedron.
func newTetrahedron(t testing.TB, opts ...core.Option) fixture {
	return buildFixture(t, 3, 4, [][][]int{tetEdges, tetFaces, tetTets}, opts...)
}

// newDoubleTetrahedron returns a 3-complex holding two tetrahedra sharing face 3.
func newDoubleTetrahedron(t testing.TB, opts ...core.Option) fixture {
	return buildFixture(t, 3, 5, [][][]int{dtEdges, dtFaces, dtTets}, opts...)
}

// mustTuple completes cells to a flag and fails the test if that is impossible.
func mustTuple(t testing.TB, cx *core.CellComplex, cells ...core.Cell) core.CellTuple {
	t.Helper()
	tu, ok := cx.Tuple(cells...)
	require.True(t, ok, "no flag through %v", cells)

	return tu
}

// allFlags enumerates every flag reachable from start by switches.
func allFlags(t testing.TB, cx *core.CellComplex, start core.CellTuple) []core.CellTuple {
	t.Helper()
	seen := map[string]bool{start.String(): true}
	queue := []core.CellTuple{start}
	var out []core.CellTuple
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		for k := 0; k <= cx.Dim(); k++ {
			next, ok, err := cx.Switch(k, cur)
			require.NoError(t, err)
			if !ok || seen[next.String()] {
				continue
			}
			seen[next.String()] = true
			queue = append(queue, next)
		}
	}

	return out
}
