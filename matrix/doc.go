// Package matrix is the numerical core of matrixengine: a row-major Dense
// matrix type and the determinant and rank kernels that operate on it.
//
// The matrix package provides:
//
//   - Dense, a rectangular float64 matrix backed by one flat buffer with
//     explicit rows and cols, so rectangularity holds by construction.
//   - Create / NewZeros / NewIdentity / FromRows constructors.
//   - Determinant: Gaussian elimination with partial pivoting, singular
//     inputs (|pivot| < 1e-9) yield 0, results rounded to 4 decimals.
//   - Rank: column-compaction row reduction.
//
// Kernels are pure: they copy their input, never mutate it, and keep no
// package state, so they are safe to call from many goroutines at once.
// Failures are reported with sentinel errors (ErrDimensionMismatch,
// ErrNonSquare, ErrMalformedMatrix, ...) matched through errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
