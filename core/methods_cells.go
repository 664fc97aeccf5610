// SPDX-License-Identifier: MIT
//
// File: methods_cells.go
// Role: Cell creation and cascade deletion, including switch-table upkeep.
// Determinism:
//   - Handles are allocated from a monotonic sequence and never reused.
//   - Delete removes cofaces in DFS post-order over upper incidence.

package core

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/dfs"
)

// diamond is a switch slot together with every cell currently occupying it.
type diamond struct {
	lo, hi Cell
	mids   []Cell
}

// Add creates a cell whose boundary is the given set of cells and returns
// its handle. With no arguments it creates a 0-cell.
//
// Validation happens before any mutation:
//   - every boundary cell is a live ordinary cell of cx (ErrCellNotFound);
//   - boundary cells are pairwise distinct, of one dimension d, and d+1 ≤ n (ErrInvalidBoundary);
//   - each facet of the boundary occurs an even number of times (ErrInvalidBoundary);
//   - no switch slot touched by the new cell ends up with more than two
//     occupants (ErrNonManifoldInsertion).
//
// Complexity: O(b·f·u) for b boundary cells, f facets each and u cofacets per facet.
func (cx *CellComplex) Add(boundary ...Cell) (Cell, error) {
	dim, facets, err := cx.checkBoundary(boundary)
	if err != nil {
		return Cell{}, err
	}
	cell := cx.peekCell(dim)
	for _, d := range cx.diamondsFor(cell, facets, false) {
		if len(d.mids) > 2 {
			return Cell{}, errors.Wrapf(ErrNonManifoldInsertion,
				"add: %d cells between %v and %v", len(d.mids), d.lo, d.hi)
		}
	}
	cx.seq++
	cx.commit(cell, facets)

	return cell, nil
}

// checkBoundary validates an Add boundary and returns the new cell's
// dimension and facet list.
func (cx *CellComplex) checkBoundary(boundary []Cell) (int, []Cell, error) {
	if len(boundary) == 0 {
		return 0, []Cell{cx.empty}, nil
	}
	d := boundary[0].dim
	seen := make(map[Cell]struct{}, len(boundary))
	for _, b := range boundary {
		if !cx.Has(b) {
			return 0, nil, errors.Wrapf(ErrCellNotFound, "add: boundary cell %v", b)
		}
		if cx.IsSentinel(b) {
			return 0, nil, errors.Wrapf(ErrInvalidBoundary, "add: sentinel %v in boundary", b)
		}
		if b.dim != d {
			return 0, nil, errors.Wrapf(ErrInvalidBoundary,
				"add: mixed dimensions %d and %d", d, b.dim)
		}
		if _, dup := seen[b]; dup {
			return 0, nil, errors.Wrapf(ErrInvalidBoundary, "add: duplicate boundary cell %v", b)
		}
		seen[b] = struct{}{}
	}
	if d+1 > cx.dim {
		return 0, nil, errors.Wrapf(ErrInvalidBoundary,
			"add: cell of dimension %d exceeds complex dimension %d", d+1, cx.dim)
	}

	// The boundary of a boundary is empty: mod 2, every facet cancels.
	parity := make(map[Cell]int)
	for _, b := range boundary {
		for _, f := range cx.lower[b] {
			parity[f]++
		}
	}
	for f, n := range parity {
		if n%2 != 0 {
			return 0, nil, errors.Wrapf(ErrInvalidBoundary,
				"add: facet %v occurs %d times", f, n)
		}
	}
	facets := make([]Cell, len(boundary))
	copy(facets, boundary)

	return d + 1, facets, nil
}

// diamondsFor lists the switch slots a cell with the given facets occupies,
// with the occupants each slot has once the cell is registered. registered
// tells whether cell already appears in the cofacets of its facets.
//
// Two families exist:
//   - (f, ·, FullFace) for each facet f when the cell is top-dimensional;
//   - (g, ·, cell) for each g one rank below some facet, occupied by the
//     cofacets of g that are facets of the cell.
func (cx *CellComplex) diamondsFor(cell Cell, facets []Cell, registered bool) []diamond {
	var out []diamond
	if cell.dim == cx.dim {
		for _, f := range facets {
			mids := make([]Cell, 0, len(cx.upper[f])+1)
			mids = append(mids, cx.upper[f]...)
			if !registered {
				mids = append(mids, cell)
			}
			out = append(out, diamond{lo: f, hi: cx.full, mids: mids})
		}
	}
	inBoundary := make(map[Cell]struct{}, len(facets))
	for _, f := range facets {
		inBoundary[f] = struct{}{}
	}
	done := make(map[Cell]struct{})
	for _, f := range facets {
		for _, g := range cx.lower[f] {
			if _, ok := done[g]; ok {
				continue
			}
			done[g] = struct{}{}
			var mids []Cell
			for _, m := range cx.upper[g] {
				if _, ok := inBoundary[m]; ok {
					mids = append(mids, m)
				}
			}
			out = append(out, diamond{lo: g, hi: cell, mids: mids})
		}
	}

	return out
}

// commit registers cell with the given facets, sets its switch pairs and
// journals the creation. The caller has validated the insertion.
func (cx *CellComplex) commit(cell Cell, facets []Cell) {
	ds := cx.diamondsFor(cell, facets, false)
	cx.lower[cell] = facets
	cx.upper[cell] = nil
	for _, f := range facets {
		cx.upper[f] = append(cx.upper[f], cell)
	}
	for _, d := range ds {
		if len(d.mids) == 2 {
			cx.pair(d.lo, d.mids[0], d.mids[1], d.hi)
		}
	}
	cx.buckets[cell.dim].Add(cell)
	if cx.journal != nil {
		cx.journal.added = append(cx.journal.added, cell)
	}
}

// pair sets both halves of the switch between a and b in slot (lo, ·, hi).
func (cx *CellComplex) pair(lo, a, b, hi Cell) {
	cx.switches[slot{lo, a, hi}] = b
	cx.switches[slot{lo, b, hi}] = a
}

// unpair clears s and its partner entry, if present.
func (cx *CellComplex) unpair(s slot) {
	other, ok := cx.switches[s]
	if !ok {
		return
	}
	delete(cx.switches, s)
	delete(cx.switches, slot{s.lo, other, s.hi})
}

// Delete removes c and every cell in its transitive coboundary. Cofaces are
// removed before their faces. Deleting FullFace is a no-op; deleting
// EmptyFace removes every ordinary cell and keeps the sentinel.
func (cx *CellComplex) Delete(c Cell) error {
	if c == cx.full && c.cx == cx {
		return nil
	}
	if !cx.Has(c) {
		return errors.Wrapf(ErrCellNotFound, "delete: %v", c)
	}
	res, err := dfs.DFS(c, cx.cofacesBelowFull)
	if err != nil {
		return errors.Wrapf(err, "delete: coboundary of %v", c)
	}
	for _, x := range res.Order {
		if x == cx.empty {
			continue
		}
		cx.remove(x)
	}

	return nil
}

// cofacesBelowFull is the DFS neighbour function for cascade deletion.
// Top cells keep no explicit incidence with FullFace, so it never shows up.
func (cx *CellComplex) cofacesBelowFull(x Cell) []Cell {
	return cx.upper[x]
}

// remove unregisters a single cell whose coboundary is already gone.
func (cx *CellComplex) remove(x Cell) {
	facets := cx.lower[x]
	for _, f := range facets {
		cx.unpair(slot{f, x, cx.full})
		cx.upper[f] = without(cx.upper[f], x)
		for _, g := range cx.lower[f] {
			cx.unpair(slot{g, f, x})
		}
	}
	delete(cx.lower, x)
	delete(cx.upper, x)
	cx.buckets[x.dim].Remove(x)
	if cx.journal != nil {
		cx.journal.removed = append(cx.journal.removed, record{cell: x, facets: facets})
		return
	}
	if cx.onRemove != nil {
		cx.onRemove(x)
	}
}

// without returns s minus every occurrence of x, reusing s's storage.
func without(s []Cell, x Cell) []Cell {
	out := s[:0]
	for _, c := range s {
		if c != x {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
