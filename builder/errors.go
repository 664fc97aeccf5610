// SPDX-License-Identifier: MIT
// Package: cellcomplex/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Constructors attach context with errors.Wrapf, keeping the sentinel
//     (or the simplicial/core error) in the chain.
//   • Option constructors panic on meaningless values; constructors do not.

package builder

import "errors"

// ErrTooFewPoints indicates fewer points (or a smaller size parameter) than
// the constructor needs.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrUnsupportedDimension indicates a constructor that cannot build in the
// dimension of the target complex (e.g. Grid outside 2-D).
var ErrUnsupportedDimension = errors.New("builder: unsupported dimension")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not finish: a nil
// constructor, too many points, an empty complex to refine, or exhausted
// sampling attempts.
var ErrConstructFailed = errors.New("builder: construction failed")
