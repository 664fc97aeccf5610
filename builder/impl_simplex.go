// SPDX-License-Identifier: MIT
// Package: cellcomplex/builder
//
// impl_simplex.go: Simplex and DoubleSimplex constructors.
//
// Contract:
//   • Simplex needs exactly dim+1 points, DoubleSimplex exactly dim+2.
//   • Vertices are added in point order, then faces bottom-up, so cell
//     sequence numbers are deterministic.
//   • DoubleSimplex glues the simplices on points[0..dim] and
//     points[1..dim+1] along their common facet points[1..dim].

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/simplicial"
)

// Simplex returns a Constructor that adds one top simplex on points.
func Simplex(points ...[]float64) Constructor {
	return func(sc *simplicial.Complex, _ builderConfig) error {
		if err := validatePoints(MethodSimplex, len(points), sc.Dim()+1); err != nil {
			return err
		}
		vs, err := addVertices(MethodSimplex, sc, points)
		if err != nil {
			return err
		}
		if _, err := make(faceIndex).simplex(sc, vs); err != nil {
			return errors.Wrap(err, MethodSimplex)
		}

		return nil
	}
}

// DoubleSimplex returns a Constructor that adds two top simplices sharing
// one facet.
func DoubleSimplex(points ...[]float64) Constructor {
	return func(sc *simplicial.Complex, _ builderConfig) error {
		n := sc.Dim()
		if err := validatePoints(MethodDoubleSimplex, len(points), n+2); err != nil {
			return err
		}
		vs, err := addVertices(MethodDoubleSimplex, sc, points)
		if err != nil {
			return err
		}
		fi := make(faceIndex)
		if _, err := fi.simplex(sc, vs[:n+1]); err != nil {
			return errors.Wrap(err, MethodDoubleSimplex)
		}
		if _, err := fi.simplex(sc, vs[1:]); err != nil {
			return errors.Wrap(err, MethodDoubleSimplex)
		}

		return nil
	}
}
