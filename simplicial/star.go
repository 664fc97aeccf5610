// SPDX-License-Identifier: MIT
//
// File: star.go
// Role: Stellar subdivision (cone of a vertex over a cell).

package simplicial

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/core"
)

// AddStar cones vertex v over cell s.
//
// The faces of s are processed in increasing dimension; each face f gets a
// cone cell whose boundary is f together with the cones over f's facets,
// the cone over EmptyFace being v itself. When s is a top simplex it is
// deleted first and only its proper faces are coned, so s is replaced by
// dim+1 simplices meeting at v. Otherwise s is kept and coned as well.
//
// v must be a vertex not already on s. The whole operation is one
// transaction.
func (sc *Complex) AddStar(v, s core.Cell) error {
	if sc.Kind(v) != KindVertex {
		return errors.Wrapf(ErrNotVertex, "add star: centre %v", v)
	}
	switch sc.Kind(s) {
	case KindInvalid:
		return errors.Wrapf(core.ErrCellNotFound, "add star: %v", s)
	case KindSentinel:
		return errors.Wrapf(ErrInvalidStar, "add star: sentinel %v", s)
	}
	faces, err := sc.facesByDim(s)
	if err != nil {
		return errors.Wrap(err, "add star")
	}
	for _, u := range faces[0] {
		if u == v {
			return errors.Wrapf(ErrInvalidStar, "add star: %v is a vertex of %v", v, s)
		}
	}
	top := s.Dim() == sc.Dim()
	limit := s.Dim()
	if top {
		limit--
	}

	created := 0
	err = sc.Transact(func() error {
		if top {
			if err := sc.Delete(s); err != nil {
				return err
			}
		}
		cone := map[core.Cell]core.Cell{sc.EmptyFace(): v}
		for d := 0; d <= limit; d++ {
			for _, f := range faces[d] {
				boundary := []core.Cell{f}
				for _, g := range sc.Facets(f) {
					boundary = append(boundary, cone[g])
				}
				c, err := sc.Add(boundary...)
				if err != nil {
					return errors.Wrapf(err, "cone over %v", f)
				}
				cone[f] = c
				created++
			}
		}

		return nil
	})
	if err != nil {
		sc.log.Warn("add star rolled back",
			slog.String("centre", v.String()),
			slog.String("cell", s.String()),
			slog.String("error", err.Error()))
		return errors.Wrap(err, "add star")
	}
	sc.log.Debug("add star",
		slog.String("centre", v.String()),
		slog.String("cell", s.String()),
		slog.Bool("replaced", top),
		slog.Int("created", created))

	return nil
}

// facesByDim returns the faces of s grouped by dimension 0..dim(s), each
// group in cell order. The last group is {s}.
func (sc *Complex) facesByDim(s core.Cell) ([][]core.Cell, error) {
	out := make([][]core.Cell, s.Dim()+1)
	out[s.Dim()] = []core.Cell{s}
	for d := 0; d < s.Dim(); d++ {
		fs, err := sc.Down(s, s.Dim()-d)
		if err != nil {
			return nil, err
		}
		out[d] = fs
	}

	return out, nil
}
