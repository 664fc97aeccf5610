// File: methods_clone.go
// Role: Deep copy of a CellComplex.
// Determinism:
//   - The clone keeps every cell id and the allocation sequence, so cells
//     created later on either side get the same ids.

package core

import "github.com/emirpasic/gods/sets/treeset"

// Clone returns an independent deep copy of cx. Every handle is remapped to
// the clone, keeping its id and dimension; use Rebind to translate handles.
// The OnRemove hook is not carried over; opts configure the clone instead.
// Clone must not be called inside a running transaction.
//
// Complexity: O(cells + incidences + switches).
func (cx *CellComplex) Clone(opts ...Option) *CellComplex {
	out := &CellComplex{
		dim:      cx.dim,
		seq:      cx.seq,
		buckets:  make([]*treeset.Set, cx.dim+1),
		lower:    make(map[Cell][]Cell, len(cx.lower)),
		upper:    make(map[Cell][]Cell, len(cx.upper)),
		switches: make(map[slot]Cell, len(cx.switches)),
	}
	re := func(c Cell) Cell {
		c.cx = out
		return c
	}
	reAll := func(cs []Cell) []Cell {
		if cs == nil {
			return nil
		}
		res := make([]Cell, len(cs))
		for i, c := range cs {
			res[i] = re(c)
		}

		return res
	}
	out.empty = re(cx.empty)
	out.full = re(cx.full)
	for d := range out.buckets {
		out.buckets[d] = treeset.NewWith(cellComparator)
		it := cx.buckets[d].Iterator()
		for it.Next() {
			out.buckets[d].Add(re(it.Value().(Cell)))
		}
	}
	for c, fs := range cx.lower {
		out.lower[re(c)] = reAll(fs)
	}
	for c, us := range cx.upper {
		out.upper[re(c)] = reAll(us)
	}
	for s, c := range cx.switches {
		out.switches[slot{re(s.lo), re(s.cell), re(s.hi)}] = re(c)
	}
	for _, opt := range opts {
		opt(out)
	}

	return out
}

// Rebind returns the handle in cx with the same id and dimension as c.
// ok is false when no such cell is live in cx.
func (cx *CellComplex) Rebind(c Cell) (Cell, bool) {
	r := Cell{id: c.id, dim: c.dim, cx: cx}

	return r, cx.Has(r)
}
