package simplicial

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/core"
)

// AddVertex creates a 0-cell carrying a copy of coords, which must have
// exactly Dim() entries.
func (sc *Complex) AddVertex(coords []float64) (core.Cell, error) {
	if len(coords) != sc.Dim() {
		return core.Cell{}, errors.Wrapf(ErrDimensionMismatch,
			"add vertex: %d coordinates in a %d-complex", len(coords), sc.Dim())
	}
	v, err := sc.Add()
	if err != nil {
		return core.Cell{}, errors.Wrap(err, "add vertex")
	}
	sc.coords[v] = append([]float64(nil), coords...)

	return v, nil
}

// Coords returns a copy of the coordinates of vertex v. ok is false for
// anything that is not a vertex with a payload.
func (sc *Complex) Coords(v core.Cell) ([]float64, bool) {
	if sc.Kind(v) != KindVertex {
		return nil, false
	}
	p, ok := sc.coords[v]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), p...), true
}

// Vertices returns the 0-cells of c in cell order. A vertex is its own
// vertex set.
func (sc *Complex) Vertices(c core.Cell) ([]core.Cell, error) {
	switch sc.Kind(c) {
	case KindInvalid:
		return nil, errors.Wrapf(core.ErrCellNotFound, "vertices of %v", c)
	case KindSentinel:
		return nil, nil
	case KindVertex:
		return []core.Cell{c}, nil
	}

	return sc.Down(c, c.Dim())
}

// points returns the coordinates of the vertices of c, in Vertices order.
func (sc *Complex) points(c core.Cell) ([][]float64, error) {
	vs, err := sc.Vertices(c)
	if err != nil {
		return nil, err
	}
	pts := make([][]float64, len(vs))
	for i, v := range vs {
		p, ok := sc.coords[v]
		if !ok {
			return nil, errors.Wrapf(ErrMissingCoordinates, "vertex %v of %v", v, c)
		}
		pts[i] = p
	}

	return pts, nil
}
