// SPDX-License-Identifier: MIT
// Package: cellcomplex/builder
//
// api.go: public entry point and the Constructor contract.
//
// Contract:
//   • BuildComplex creates a simplicial.Complex with the given options, then
//     applies constructors in order against one resolved builderConfig.
//   • A failing constructor stops the build; the error names its index.
//   • Constructors never panic at runtime.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/simplicial"
)

// Constructor adds cells to sc using the resolved configuration.
type Constructor func(sc *simplicial.Complex, cfg builderConfig) error

// BuildComplex creates a dim-dimensional simplicial complex configured by
// sopts and applies cons in order with the configuration resolved from bopts.
func BuildComplex(dim int, sopts []simplicial.Option, bopts []BuilderOption, cons ...Constructor) (*simplicial.Complex, error) {
	sc, err := simplicial.New(dim, sopts...)
	if err != nil {
		return nil, errors.Wrap(err, "BuildComplex")
	}
	if err := Apply(sc, bopts, cons...); err != nil {
		return nil, err
	}

	return sc, nil
}

// Apply runs cons against an existing complex. It is BuildComplex without
// the allocation.
func Apply(sc *simplicial.Complex, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, con := range cons {
		if con == nil {
			return errors.Wrapf(ErrConstructFailed, "BuildComplex: nil constructor at index %d", i)
		}
		if err := con(sc, cfg); err != nil {
			return errors.Wrapf(err, "BuildComplex: constructor %d", i)
		}
	}

	return nil
}
