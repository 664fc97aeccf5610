// Package builder assembles simplicial complexes from a small set of
// reusable constructors, for tests, examples and benchmarks.
//
// BuildComplex creates a simplicial.Complex and applies constructors in the
// given order. Each constructor receives the complex and a resolved,
// immutable builderConfig:
//
//	Simplex(points...)        one top simplex on dim+1 points
//	DoubleSimplex(points...)  two top simplices sharing the facet points[1..dim]
//	Grid(k)                   k×k squares split on a diagonal (2-D only)
//	RandomStars(n)            n stellar subdivisions at random interior points
//
// Configuration uses functional options (BuilderOption). Option
// constructors panic on meaningless values; constructors never panic and
// return errors wrapping one of the package sentinels, so callers branch with
// errors.Is.
//
// Determinism: every constructor except RandomStars is fully deterministic.
// RandomStars needs an explicit source (WithSeed or WithRand) and is
// reproducible for a fixed seed.
package builder
