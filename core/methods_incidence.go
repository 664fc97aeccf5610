// File: methods_incidence.go
// Role: Boundary and coboundary queries.
// Determinism:
//   - Up/Down results are sorted in cell order.
//   - Facets/Cofacets preserve insertion order.

package core

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

// Up returns the cells exactly offset ranks above c, deduplicated and sorted.
// Top cells report FullFace one rank up.
func (cx *CellComplex) Up(c Cell, offset int) ([]Cell, error) {
	return cx.walk(c, offset, cx.cofacetsOf, "up")
}

// Down returns the cells exactly offset ranks below c, deduplicated and sorted.
// 0-cells report EmptyFace one rank down.
func (cx *CellComplex) Down(c Cell, offset int) ([]Cell, error) {
	return cx.walk(c, offset, cx.facetsOf, "down")
}

// walk expands c one rank at a time through step, offset times.
func (cx *CellComplex) walk(c Cell, offset int, step func(Cell) []Cell, op string) ([]Cell, error) {
	if offset < 1 {
		return nil, errors.Wrapf(ErrInvalidOffset, "%s: offset %d", op, offset)
	}
	if !cx.Has(c) {
		return nil, errors.Wrapf(ErrCellNotFound, "%s: %v", op, c)
	}
	frontier := []Cell{c}
	for i := 0; i < offset; i++ {
		next := treeset.NewWith(cellComparator)
		for _, x := range frontier {
			for _, y := range step(x) {
				next.Add(y)
			}
		}
		frontier = frontier[:0]
		it := next.Iterator()
		for it.Next() {
			frontier = append(frontier, it.Value().(Cell))
		}
		if len(frontier) == 0 {
			break
		}
	}
	if len(frontier) == 0 {
		return nil, nil
	}

	return frontier, nil
}

// cofacetsOf returns the cofacets of x, including the implicit FullFace
// above top cells.
func (cx *CellComplex) cofacetsOf(x Cell) []Cell {
	if x.dim == cx.dim {
		return []Cell{cx.full}
	}

	return cx.upper[x]
}

// facetsOf returns the facets of x, including the implicit top cells
// below FullFace.
func (cx *CellComplex) facetsOf(x Cell) []Cell {
	if x == cx.full {
		return cx.Cells(cx.dim)
	}

	return cx.lower[x]
}

// Facets returns a copy of the facets of c in insertion order, or nil when
// c is not live.
func (cx *CellComplex) Facets(c Cell) []Cell {
	if !cx.Has(c) {
		return nil
	}

	return clone(cx.facetsOf(c))
}

// Cofacets returns a copy of the cofacets of c in insertion order, or nil
// when c is not live.
func (cx *CellComplex) Cofacets(c Cell) []Cell {
	if !cx.Has(c) {
		return nil
	}

	return clone(cx.cofacetsOf(c))
}

// IsTop reports whether c is a live cell of dimension n.
func (cx *CellComplex) IsTop(c Cell) bool {
	return c.dim == cx.dim && cx.Has(c)
}

func clone(cs []Cell) []Cell {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Cell, len(cs))
	copy(out, cs)

	return out
}

// sortCells sorts cs in cell order.
func sortCells(cs []Cell) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}
