// Package predicates provides geometric orientation tests for simplices.
//
// Orient takes d+1 points of R^d and returns the sign of
//
//	| p0  1 |
//	| p1  1 |
//	|  …  … |
//	| pd  1 |
//
// as +1, -1 or 0. Determinants whose magnitude falls below a relative
// tolerance (eps times the product of the row norms, a Hadamard bound) are
// reported as 0, so nearly degenerate configurations read as degenerate.
// The arithmetic is plain float64; no exact or adaptive evaluation is done.
package predicates
