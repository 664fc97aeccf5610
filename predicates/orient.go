package predicates

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon is the relative tolerance used by Orient.
const DefaultEpsilon = 1e-12

var (
	// ErrPointCount indicates that the number of points is not d+1.
	ErrPointCount = errors.New("predicates: need d+1 points in R^d")

	// ErrDimensionMismatch indicates points of differing or wrong length.
	ErrDimensionMismatch = errors.New("predicates: point dimension mismatch")
)

// Func is the signature shared by Orient and the predicates built by OrientTol.
type Func func(points [][]float64) int

// Orient returns the orientation sign of points using DefaultEpsilon.
// Malformed input yields 0.
func Orient(points [][]float64) int {
	return orient(points, DefaultEpsilon)
}

// OrientTol returns an orientation predicate with relative tolerance eps.
// A negative eps is treated as 0, which disables the tolerance.
func OrientTol(eps float64) Func {
	if eps < 0 {
		eps = 0
	}

	return func(points [][]float64) int {
		return orient(points, eps)
	}
}

// Validate reports whether points are d+1 vectors of length d.
func Validate(points [][]float64) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: got none", ErrPointCount)
	}
	d := len(points) - 1
	for i, p := range points {
		if len(p) != d {
			return fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), d)
		}
	}

	return nil
}

func orient(points [][]float64, eps float64) int {
	if Validate(points) != nil {
		return 0
	}
	n := len(points)
	m := mat.NewDense(n, n, nil)
	bound := 1.0
	row := make([]float64, n)
	for i, p := range points {
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0
			}
		}
		copy(row, p)
		row[n-1] = 1
		m.SetRow(i, row)
		bound *= floats.Norm(row, 2)
	}
	det := mat.Det(m)
	switch {
	case math.Abs(det) <= eps*bound:
		return 0
	case det > 0:
		return 1
	default:
		return -1
	}
}
