// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over a CellComplex.

package core

// Dim returns the dimension n of the complex.
func (cx *CellComplex) Dim() int { return cx.dim }

// EmptyFace returns the dimension -1 sentinel.
func (cx *CellComplex) EmptyFace() Cell { return cx.empty }

// FullFace returns the dimension n+1 sentinel.
func (cx *CellComplex) FullFace() Cell { return cx.full }

// Has reports whether c is a live cell of this complex. Sentinels are live.
func (cx *CellComplex) Has(c Cell) bool {
	if c.cx != cx {
		return false
	}
	_, ok := cx.lower[c]

	return ok
}

// IsSentinel reports whether c is EmptyFace or FullFace of this complex.
func (cx *CellComplex) IsSentinel(c Cell) bool {
	return c == cx.empty || c == cx.full
}

// Cells returns the live cells of dimension d in cell order.
// Dimensions outside [0, n] yield nil.
func (cx *CellComplex) Cells(d int) []Cell {
	if d < 0 || d > cx.dim {
		return nil
	}
	b := cx.buckets[d]
	out := make([]Cell, 0, b.Size())
	it := b.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Cell))
	}

	return out
}

// First returns the lowest live cell of dimension d, if any.
func (cx *CellComplex) First(d int) (Cell, bool) {
	if d < 0 || d > cx.dim {
		return Cell{}, false
	}
	it := cx.buckets[d].Iterator()
	if !it.First() {
		return Cell{}, false
	}

	return it.Value().(Cell), true
}

// Count returns the number of live cells of dimension d.
func (cx *CellComplex) Count(d int) int {
	if d < 0 || d > cx.dim {
		return 0
	}

	return cx.buckets[d].Size()
}

// Counts returns the number of live cells per dimension 0..n.
func (cx *CellComplex) Counts() []int {
	out := make([]int, cx.dim+1)
	for d := range out {
		out[d] = cx.buckets[d].Size()
	}

	return out
}

// Stats summarizes the size of a complex.
type Stats struct {
	Dim      int
	Counts   []int
	Cells    int
	Switches int // pairs, each counted once
	Euler    int // alternating sum of Counts
}

// Stats returns a snapshot of the complex size.
func (cx *CellComplex) Stats() Stats {
	s := Stats{Dim: cx.dim, Counts: cx.Counts(), Switches: len(cx.switches) / 2}
	sign := 1
	for _, n := range s.Counts {
		s.Cells += n
		s.Euler += sign * n
		sign = -sign
	}

	return s
}
