// Package simplicial specializes core.CellComplex to simplicial complexes
// embedded in R^n.
//
// A Complex is an n-dimensional cell complex whose vertices carry
// coordinates and whose top cells are n-simplices. On top of the
// combinatorial engine it adds:
//
//   - point location: Contains tests a point against one simplex using an
//     injectable orientation predicate; Locate scans the top simplices in
//     cell order and returns the first one containing the point;
//   - stellar subdivision: AddStar cones a vertex over a cell, replacing a
//     top simplex by n+1 smaller ones;
//   - bistellar flips: Flip replaces the top simplices around an interior
//     facet by the complementary triangulation of their vertex set;
//   - orbit helpers: OppositeVertex and NextFacet compose core switches.
//
// AddStar and Flip run inside core transactions, so a failure leaves the
// complex exactly as it was. Operations log at Debug level through an
// optional *slog.Logger; by default nothing is logged.
package simplicial
