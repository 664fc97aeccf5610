package core

import "strings"

// CellTuple is a maximal flag c0 ⊂ c1 ⊂ … ⊂ cn of a CellComplex, where ci
// has dimension i. Tuples are values: every derived tuple owns a fresh copy
// of its cells.
type CellTuple struct {
	cx    *CellComplex
	cells []Cell
}

// Complex returns the complex the tuple belongs to.
func (t CellTuple) Complex() *CellComplex { return t.cx }

// Dim returns the dimension of the tuple's complex, or -1 for the zero tuple.
func (t CellTuple) Dim() int { return len(t.cells) - 1 }

// Len returns the number of cells in the tuple.
func (t CellTuple) Len() int { return len(t.cells) }

// IsZero reports whether t is the zero tuple.
func (t CellTuple) IsZero() bool { return t.cx == nil }

// At returns the cell of dimension k. It panics if k is out of range.
func (t CellTuple) At(k int) Cell { return t.cells[k] }

// Cells returns a copy of the tuple's cells, lowest dimension first.
func (t CellTuple) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)

	return out
}

// With returns a copy of t whose k-th cell is replaced by c.
func (t CellTuple) With(k int, c Cell) CellTuple {
	cells := t.Cells()
	cells[k] = c

	return CellTuple{cx: t.cx, cells: cells}
}

// Equal reports whether t and o hold the same cells of the same complex.
func (t CellTuple) Equal(o CellTuple) bool {
	if t.cx != o.cx || len(t.cells) != len(o.cells) {
		return false
	}
	for i := range t.cells {
		if t.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// String renders the tuple as "(c3/0 c9/1 …)".
func (t CellTuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range t.cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
