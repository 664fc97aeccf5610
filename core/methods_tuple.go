// SPDX-License-Identifier: MIT
//
// File: methods_tuple.go
// Role: Flag completion and switch operators.

package core

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/dfs"
)

// Tuple completes the given cells to a maximal flag.
//
// With no arguments the flag starts at the first 0-cell. Otherwise the cells
// are sorted, FullFace is appended, a falling path runs from the lowest cell
// to a 0-cell through first facets, and a rising DFS path over cofacets links
// each consecutive pair. ok is false when any segment does not exist, when a
// cell is unknown or a sentinel, or when two cells share a dimension.
func (cx *CellComplex) Tuple(cells ...Cell) (CellTuple, bool) {
	if len(cells) == 0 {
		v, ok := cx.First(0)
		if !ok {
			return CellTuple{}, false
		}
		cells = []Cell{v}
	}
	chain := make([]Cell, 0, len(cells)+1)
	for _, c := range cells {
		if !cx.Has(c) || c == cx.empty {
			return CellTuple{}, false
		}
		if c != cx.full {
			chain = append(chain, c)
		}
	}
	if len(chain) == 0 {
		return CellTuple{}, false
	}
	sortCells(chain)
	chain = append(chain, cx.full)

	path := cx.fallingPath(chain[0])
	if path == nil {
		return CellTuple{}, false
	}
	for i := 0; i+1 < len(chain); i++ {
		if chain[i] == chain[i+1] {
			continue
		}
		seg, ok := cx.risingPath(chain[i], chain[i+1])
		if !ok {
			return CellTuple{}, false
		}
		path = append(path, seg...)
	}
	path = path[:len(path)-1]
	if len(path) != cx.dim+1 {
		return CellTuple{}, false
	}

	return CellTuple{cx: cx, cells: path}, true
}

// fallingPath returns c0 ⊂ … ⊂ c following the first facet of every cell,
// or nil when some cell above dimension 0 has no facets.
func (cx *CellComplex) fallingPath(c Cell) []Cell {
	rev := []Cell{c}
	for x := c; x.dim > 0; {
		fs := cx.lower[x]
		if len(fs) == 0 {
			return nil
		}
		x = fs[0]
		rev = append(rev, x)
	}
	path := make([]Cell, 0, cx.dim+2)
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}

	return path
}

// risingPath finds cells strictly above from, ending at to, each one rank
// above the previous. Only cells below to's dimension are explored.
func (cx *CellComplex) risingPath(from, to Cell) ([]Cell, bool) {
	if from.dim >= to.dim {
		return nil, false
	}
	res, err := dfs.DFS(from, cx.cofacetsOf,
		dfs.WithFilterNeighbor(func(_, next Cell) bool {
			return next == to || next.dim < to.dim
		}),
		dfs.WithOnVisit(func(c Cell, _ int) error {
			if c == to {
				return dfs.ErrStop
			}

			return nil
		}),
	)
	if err != nil {
		return nil, false
	}
	p, ok := res.PathTo(to)
	if !ok {
		return nil, false
	}

	return p[1:], true
}

// Switch replaces the k-th cell of t with the other cell occupying the slot
// between t[k-1] (EmptyFace when k = 0) and t[k+1] (FullFace when k = n).
// ok is false when no such cell exists or t belongs to another complex.
func (cx *CellComplex) Switch(k int, t CellTuple) (CellTuple, bool, error) {
	if k < 0 || k > cx.dim {
		return CellTuple{}, false, errors.Wrapf(ErrInvalidSwitchIndex, "switch: k=%d outside [0,%d]", k, cx.dim)
	}
	if t.cx != cx || len(t.cells) != cx.dim+1 {
		return CellTuple{}, false, nil
	}
	lo, hi := cx.empty, cx.full
	if k > 0 {
		lo = t.cells[k-1]
	}
	if k < cx.dim {
		hi = t.cells[k+1]
	}
	other, ok := cx.switches[slot{lo, t.cells[k], hi}]
	if !ok {
		return CellTuple{}, false, nil
	}

	return t.With(k, other), true, nil
}

// SwitchPath applies Switch for each rank in ks, in order. ok is false as
// soon as one switch has no result.
func (cx *CellComplex) SwitchPath(t CellTuple, ks ...int) (CellTuple, bool, error) {
	cur := t
	for _, k := range ks {
		next, ok, err := cx.Switch(k, cur)
		if err != nil || !ok {
			return CellTuple{}, false, err
		}
		cur = next
	}

	return cur, true, nil
}
