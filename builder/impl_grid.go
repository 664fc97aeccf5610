// SPDX-License-Identifier: MIT
// Package: cellcomplex/builder
//
// impl_grid.go: Grid(k) constructor.
//
// Model:
//   • (k+1)×(k+1) vertices at origin + spacing·(i, j), added row-major
//     (j outer, i inner).
//   • Square (i, j) has corners a=(i,j), b=(i+1,j), c=(i,j+1), d=(i+1,j+1)
//     and is split on the b–c diagonal into triangles abc and bdc.
//   • Counts: V=(k+1)², E=2k(k+1)+k², F=2k².
//
// Contract:
//   • The complex must be 2-dimensional (else ErrUnsupportedDimension).
//   • k ≥ MinGridSize (else ErrTooFewPoints).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/simplicial"
)

// Grid returns a Constructor that triangulates a k×k square grid.
func Grid(k int) Constructor {
	return func(sc *simplicial.Complex, cfg builderConfig) error {
		if sc.Dim() != 2 {
			return errors.Wrapf(ErrUnsupportedDimension, "%s: complex has dimension %d", MethodGrid, sc.Dim())
		}
		if k < MinGridSize {
			return errors.Wrapf(ErrTooFewPoints, "%s: k=%d (must be ≥ %d)", MethodGrid, k, MinGridSize)
		}

		side := k + 1
		points := make([][]float64, 0, side*side)
		for j := 0; j < side; j++ {
			for i := 0; i < side; i++ {
				points = append(points, cfg.at(float64(i)*cfg.spacing, float64(j)*cfg.spacing))
			}
		}
		vs, err := addVertices(MethodGrid, sc, points)
		if err != nil {
			return err
		}
		at := func(i, j int) core.Cell { return vs[j*side+i] }

		fi := make(faceIndex)
		for j := 0; j < k; j++ {
			for i := 0; i < k; i++ {
				a, b, c, d := at(i, j), at(i+1, j), at(i, j+1), at(i+1, j+1)
				if _, err := fi.simplex(sc, []core.Cell{a, b, c}); err != nil {
					return errors.Wrapf(err, "%s: square (%d,%d)", MethodGrid, i, j)
				}
				if _, err := fi.simplex(sc, []core.Cell{b, d, c}); err != nil {
					return errors.Wrapf(err, "%s: square (%d,%d)", MethodGrid, i, j)
				}
			}
		}

		return nil
	}
}
