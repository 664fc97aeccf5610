// SPDX-License-Identifier: MIT
// Package: cellcomplex/builder
//
// impl_random_stars.go: RandomStars(n) constructor.
//
// Model:
//   • Each step picks a top simplex uniformly, draws barycentric weights
//     bounded away from zero and maps them to a point strictly inside it.
//   • The point is located with Locate and inserted with AddStar, both as a
//     single transaction per point.
//   • A degenerate simplex contains nothing, so its samples are redrawn;
//     after maxStarAttempts misses the constructor fails.
//
// Contract:
//   • Requires WithSeed or WithRand (else ErrNeedRandSource).
//   • n ≥ 0 (else ErrTooFewPoints); n = 0 is a no-op.
//   • The complex must already hold at least one top simplex.

package builder

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/simplicial"
)

// RandomStars returns a Constructor that refines the complex by n stellar
// subdivisions at random interior points.
func RandomStars(n int) Constructor {
	return func(sc *simplicial.Complex, cfg builderConfig) error {
		if n < 0 {
			return errors.Wrapf(ErrTooFewPoints, "%s: n=%d", MethodRandomStars, n)
		}
		if cfg.rng == nil {
			return errors.Wrap(ErrNeedRandSource, MethodRandomStars)
		}
		if n > 0 && sc.Count(sc.Dim()) == 0 {
			return errors.Wrapf(ErrConstructFailed, "%s: no top simplex to refine", MethodRandomStars)
		}
		for i := 0; i < n; i++ {
			if err := insertRandomStar(sc, cfg.rng); err != nil {
				return errors.Wrapf(err, "%s: point %d", MethodRandomStars, i)
			}
		}

		return nil
	}
}

// insertRandomStar samples one interior point and cones it over the simplex
// containing it.
func insertRandomStar(sc *simplicial.Complex, rng *rand.Rand) error {
	tops := sc.Cells(sc.Dim())
	for attempt := 0; attempt < maxStarAttempts; attempt++ {
		p, err := samplePoint(sc, tops[rng.Intn(len(tops))], rng)
		if err != nil {
			return err
		}
		s, ok, err := sc.Locate(p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		return sc.Transact(func() error {
			v, err := sc.AddVertex(p)
			if err != nil {
				return err
			}
			return sc.AddStar(v, s)
		})
	}

	return errors.Wrapf(ErrConstructFailed, "no interior point after %d attempts", maxStarAttempts)
}

// samplePoint maps random barycentric weights on s to a point.
func samplePoint(sc *simplicial.Complex, s core.Cell, rng *rand.Rand) ([]float64, error) {
	vs, err := sc.Vertices(s)
	if err != nil {
		return nil, err
	}
	w := make([]float64, len(vs))
	var sum float64
	for i := range w {
		w[i] = minBarycentric + rng.Float64()
		sum += w[i]
	}
	p := make([]float64, sc.Dim())
	for i, v := range vs {
		q, ok := sc.Coords(v)
		if !ok {
			return nil, errors.Wrapf(simplicial.ErrMissingCoordinates, "vertex %v", v)
		}
		for k := range p {
			p[k] += w[i] / sum * q[k]
		}
	}

	return p, nil
}
