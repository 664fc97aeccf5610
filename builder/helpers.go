// Package builder: shared helpers for constructors.
package builder

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/simplicial"
)

// validatePoints checks that exactly want points were supplied.
func validatePoints(method string, got, want int) error {
	switch {
	case got < want:
		return errors.Wrapf(ErrTooFewPoints, "%s: need %d points, got %d", method, want, got)
	case got > want:
		return errors.Wrapf(ErrConstructFailed, "%s: need %d points, got %d", method, want, got)
	}

	return nil
}

// addVertices inserts one vertex per point, in order.
func addVertices(method string, sc *simplicial.Complex, points [][]float64) ([]core.Cell, error) {
	vs := make([]core.Cell, len(points))
	for i, p := range points {
		v, err := sc.AddVertex(p)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: point %d", method, i)
		}
		vs[i] = v
	}

	return vs, nil
}

// faceIndex memoizes simplices by vertex set so that simplices built from
// overlapping vertex lists share their common faces.
type faceIndex map[string]core.Cell

// simplex returns the simplex spanned by vs, creating it and any missing
// faces bottom-up.
func (fi faceIndex) simplex(sc *simplicial.Complex, vs []core.Cell) (core.Cell, error) {
	if len(vs) == 1 {
		return vs[0], nil
	}
	key := faceKey(vs)
	if c, ok := fi[key]; ok {
		return c, nil
	}
	facets := make([]core.Cell, 0, len(vs))
	for i := range vs {
		sub := make([]core.Cell, 0, len(vs)-1)
		sub = append(sub, vs[:i]...)
		sub = append(sub, vs[i+1:]...)
		f, err := fi.simplex(sc, sub)
		if err != nil {
			return core.Cell{}, err
		}
		facets = append(facets, f)
	}
	c, err := sc.Add(facets...)
	if err != nil {
		return core.Cell{}, errors.Wrapf(err, "simplex on %v", vs)
	}
	fi[key] = c

	return c, nil
}

// faceKey renders the sorted vertex IDs of vs.
func faceKey(vs []core.Cell) string {
	ids := make([]uint64, len(vs))
	for i, v := range vs {
		ids[i] = v.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}

	return strings.Join(parts, ",")
}
