// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Complex, its options, cell kinds and sentinel errors.

package simplicial

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/predicates"
)

// Sentinel errors for simplicial operations.
var (
	// ErrInvalidFlip indicates a cell that is not a facet shared by exactly two top simplices.
	ErrInvalidFlip = errors.New("simplicial: invalid flip")

	// ErrNotVertex indicates that a vertex was required.
	ErrNotVertex = errors.New("simplicial: not a vertex")

	// ErrNotSimplex indicates that a top-dimensional simplex was required.
	ErrNotSimplex = errors.New("simplicial: not a top simplex")

	// ErrInvalidStar indicates a star centre that cannot be coned over the given cell.
	ErrInvalidStar = errors.New("simplicial: invalid star")

	// ErrDimensionMismatch indicates coordinates whose length is not the complex dimension.
	ErrDimensionMismatch = errors.New("simplicial: dimension mismatch")

	// ErrMissingCoordinates indicates a vertex without a coordinate payload.
	ErrMissingCoordinates = errors.New("simplicial: missing coordinates")
)

// Predicate returns the orientation sign (+1, -1 or 0) of dim+1 points in R^dim.
type Predicate = predicates.Func

// Kind tags what a cell is within a simplicial complex.
type Kind int

const (
	// KindInvalid marks a cell that is not live in the complex.
	KindInvalid Kind = iota
	// KindSentinel marks EmptyFace and FullFace.
	KindSentinel
	// KindVertex marks 0-cells; only they carry coordinates.
	KindVertex
	// KindFace marks cells strictly between vertices and top simplices.
	KindFace
	// KindSimplex marks top-dimensional cells; only they answer Contains.
	KindSimplex
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindSentinel:
		return "sentinel"
	case KindVertex:
		return "vertex"
	case KindFace:
		return "face"
	case KindSimplex:
		return "simplex"
	default:
		return "invalid"
	}
}

// Complex is a simplicial complex of fixed dimension with vertex coordinates.
// It embeds the underlying cell complex, so every core query is available.
type Complex struct {
	*core.CellComplex

	coords map[core.Cell][]float64
	orient Predicate
	log    *slog.Logger
}

// Option configures a Complex.
type Option func(*Complex)

// WithPredicate replaces the orientation predicate (default predicates.Orient).
// A nil predicate keeps the default.
func WithPredicate(p Predicate) Option {
	return func(sc *Complex) {
		if p != nil {
			sc.orient = p
		}
	}
}

// WithLogger sets the logger for Debug and Warn records. A nil logger keeps
// the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(sc *Complex) {
		if l != nil {
			sc.log = l.With(slog.String("component", "simplicial"))
		}
	}
}

// New creates an empty simplicial complex of dimension dim.
func New(dim int, opts ...Option) (*Complex, error) {
	sc := &Complex{
		coords: make(map[core.Cell][]float64),
		orient: predicates.Orient,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(sc)
	}
	cx, err := core.NewCellComplex(dim, core.WithOnRemove(sc.dropCoords))
	if err != nil {
		return nil, err
	}
	sc.CellComplex = cx

	return sc, nil
}

// dropCoords releases the payload of a removed vertex.
func (sc *Complex) dropCoords(c core.Cell) {
	delete(sc.coords, c)
}

// Kind classifies c within sc.
func (sc *Complex) Kind(c core.Cell) Kind {
	switch {
	case !sc.Has(c):
		return KindInvalid
	case sc.IsSentinel(c):
		return KindSentinel
	case c.Dim() == 0:
		return KindVertex
	case c.Dim() == sc.Dim():
		return KindSimplex
	default:
		return KindFace
	}
}

// Clone returns an independent deep copy of sc, coordinates included.
// Handles of sc translate to the clone with Rebind.
func (sc *Complex) Clone() *Complex {
	out := &Complex{
		coords: make(map[core.Cell][]float64, len(sc.coords)),
		orient: sc.orient,
		log:    sc.log,
	}
	out.CellComplex = sc.CellComplex.Clone(core.WithOnRemove(out.dropCoords))
	for v, p := range sc.coords {
		if r, ok := out.Rebind(v); ok {
			out.coords[r] = append([]float64(nil), p...)
		}
	}

	return out
}
