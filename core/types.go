// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, the Cell handle, the CellComplex container and its options.

package core

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for core cell-complex operations.
var (
	// ErrInvalidDimension indicates a negative complex dimension.
	ErrInvalidDimension = errors.New("core: invalid complex dimension")

	// ErrInvalidBoundary indicates a boundary that is not a valid cycle of equal-dimension cells.
	ErrInvalidBoundary = errors.New("core: invalid boundary")

	// ErrNonManifoldInsertion indicates that a switch slot would hold more than two cells.
	ErrNonManifoldInsertion = errors.New("core: non-manifold insertion")

	// ErrInvalidSwitchIndex indicates a switch rank outside [0, dim].
	ErrInvalidSwitchIndex = errors.New("core: switch index out of range")

	// ErrInvalidOffset indicates an Up/Down offset smaller than 1.
	ErrInvalidOffset = errors.New("core: offset must be >= 1")

	// ErrCellNotFound indicates a cell that is not live in this complex.
	ErrCellNotFound = errors.New("core: cell not found")

	// ErrCorruptComplex is reported by Validate when an invariant does not hold.
	ErrCorruptComplex = errors.New("core: corrupt complex")
)

// Cell is a handle to a cell of a CellComplex.
//
// Cells are comparable and may be used as map keys. The zero Cell belongs to
// no complex and is never live.
type Cell struct {
	id  uint64
	dim int
	cx  *CellComplex
}

// ID returns the creation sequence number of c within its complex.
func (c Cell) ID() uint64 { return c.id }

// Dim returns the dimension of c (-1 for EmptyFace, n+1 for FullFace).
func (c Cell) Dim() int { return c.dim }

// Complex returns the owning complex, or nil for the zero Cell.
func (c Cell) Complex() *CellComplex { return c.cx }

// IsZero reports whether c is the zero Cell.
func (c Cell) IsZero() bool { return c.cx == nil }

// Compare orders cells by dimension, then by creation sequence.
// It returns -1, 0 or +1.
func (c Cell) Compare(o Cell) int {
	switch {
	case c.dim < o.dim:
		return -1
	case c.dim > o.dim:
		return 1
	case c.id < o.id:
		return -1
	case c.id > o.id:
		return 1
	}

	return 0
}

// Less reports whether c sorts before o.
func (c Cell) Less(o Cell) bool { return c.Compare(o) < 0 }

// Up returns the cells offset ranks above c. See CellComplex.Up.
func (c Cell) Up(offset int) ([]Cell, error) {
	if c.cx == nil {
		return nil, ErrCellNotFound
	}

	return c.cx.Up(c, offset)
}

// Down returns the cells offset ranks below c. See CellComplex.Down.
func (c Cell) Down(offset int) ([]Cell, error) {
	if c.cx == nil {
		return nil, ErrCellNotFound
	}

	return c.cx.Down(c, offset)
}

// String renders c as "c<id>/<dim>".
func (c Cell) String() string {
	if c.cx == nil {
		return "c-/-"
	}

	return fmt.Sprintf("c%d/%d", c.id, c.dim)
}

// cellComparator adapts Cell.Compare to the gods comparator signature.
func cellComparator(a, b interface{}) int {
	return a.(Cell).Compare(b.(Cell))
}

// slot keys the switch table: the cells strictly between lo and hi.
type slot struct {
	lo, cell, hi Cell
}

// CellComplex is an n-dimensional cell complex with a switch table.
type CellComplex struct {
	dim int
	seq uint64

	empty Cell
	full  Cell

	// buckets[d] holds the live cells of dimension d in cell order.
	buckets []*treeset.Set

	lower    map[Cell][]Cell
	upper    map[Cell][]Cell
	switches map[slot]Cell

	onRemove func(Cell)
	journal  *journal
}

// Option configures a CellComplex at construction time.
type Option func(*CellComplex)

// WithOnRemove registers fn to be called once for every cell that leaves
// the complex for good. See Transact for the timing inside transactions.
func WithOnRemove(fn func(Cell)) Option {
	return func(cx *CellComplex) {
		cx.onRemove = fn
	}
}

// NewCellComplex creates an empty complex of dimension dim holding only the
// two sentinel cells.
func NewCellComplex(dim int, opts ...Option) (*CellComplex, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	cx := &CellComplex{
		dim:      dim,
		buckets:  make([]*treeset.Set, dim+1),
		lower:    make(map[Cell][]Cell),
		upper:    make(map[Cell][]Cell),
		switches: make(map[slot]Cell),
	}
	for d := range cx.buckets {
		cx.buckets[d] = treeset.NewWith(cellComparator)
	}
	cx.empty = cx.nextCell(-1)
	cx.full = cx.nextCell(dim + 1)
	cx.lower[cx.empty] = nil
	cx.upper[cx.empty] = nil
	cx.lower[cx.full] = nil
	cx.upper[cx.full] = nil
	for _, opt := range opts {
		opt(cx)
	}

	return cx, nil
}

// nextCell allocates a fresh handle of dimension d.
func (cx *CellComplex) nextCell(d int) Cell {
	cx.seq++

	return Cell{id: cx.seq, dim: d, cx: cx}
}

// peekCell returns the handle the next allocation of dimension d will produce.
func (cx *CellComplex) peekCell(d int) Cell {
	return Cell{id: cx.seq + 1, dim: d, cx: cx}
}
