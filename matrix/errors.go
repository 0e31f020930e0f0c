// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with matrixErrorf /
// validatorErrorf / denseErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/dimension mismatch -> malformed (NaN/Inf) content.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that an operand has the wrong shape for
	// the requested operation (e.g., Determinant of a non-square matrix).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare refines ErrDimensionMismatch when a square matrix was required.
	// Square-only kernels return an error matching both sentinels.
	ErrNonSquare = errors.New("matrix: matrix must be square")

	// ErrNaNInf signals a NaN or ±Inf value was offered where finite values
	// are required by the numeric policy (Set, Create).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrMalformedMatrix signals caller-supplied content that violates the
	// data model: jagged or empty rows on ingestion, or non-finite cells
	// reaching a kernel.
	ErrMalformedMatrix = errors.New("matrix: malformed matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
