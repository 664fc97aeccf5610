// File: locate.go
// Role: Point-in-simplex test and linear point location.

package simplicial

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/core"
)

// Contains reports whether point p lies in the closed top simplex s.
//
// The orientation of s's vertices is the baseline. For each vertex in turn
// p is substituted for it; if the substituted orientation is the exact
// negation of the baseline, p lies strictly on the far side of the opposite
// facet and is outside. A zero substituted orientation never excludes, so
// points on the boundary are inside. A degenerate simplex (zero baseline)
// contains nothing.
func (sc *Complex) Contains(s core.Cell, p []float64) (bool, error) {
	if sc.Kind(s) != KindSimplex {
		return false, errors.Wrapf(ErrNotSimplex, "contains: %v", s)
	}
	if len(p) != sc.Dim() {
		return false, errors.Wrapf(ErrDimensionMismatch,
			"contains: point has %d coordinates in a %d-complex", len(p), sc.Dim())
	}
	pts, err := sc.points(s)
	if err != nil {
		return false, errors.Wrap(err, "contains")
	}
	base := sc.orient(pts)
	if base == 0 {
		return false, nil
	}
	probe := make([][]float64, len(pts))
	for i := range pts {
		copy(probe, pts)
		probe[i] = p
		if o := sc.orient(probe); o != 0 && o == -base {
			return false, nil
		}
	}

	return true, nil
}

// Locate returns the first top simplex, in cell order, that contains p.
// ok is false when no simplex does.
//
// Complexity: O(S · n) predicate calls for S top simplices.
func (sc *Complex) Locate(p []float64) (core.Cell, bool, error) {
	if len(p) != sc.Dim() {
		return core.Cell{}, false, errors.Wrapf(ErrDimensionMismatch,
			"locate: point has %d coordinates in a %d-complex", len(p), sc.Dim())
	}
	for _, s := range sc.Cells(sc.Dim()) {
		in, err := sc.Contains(s, p)
		if err != nil {
			return core.Cell{}, false, errors.Wrapf(err, "locate")
		}
		if in {
			return s, true, nil
		}
	}

	return core.Cell{}, false, nil
}
