// SPDX-License-Identifier: MIT
// Package: cellcomplex/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil             (pure unless seeded)
//   • spacing = DefaultSpacing
//   • origin  = nil             (the coordinate origin)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// Grid step along each axis, > 0.
	spacing float64
	// Offset added to every generated coordinate; nil is the origin.
	origin []float64
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies opts in order (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns origin + offs, treating a missing origin entry as zero.
func (cfg builderConfig) at(offs ...float64) []float64 {
	p := make([]float64, len(offs))
	for i, x := range offs {
		p[i] = x
		if i < len(cfg.origin) {
			p[i] += cfg.origin[i]
		}
	}

	return p
}
