// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the engine's three operations
//     (Create, Determinant, Rank) plus shape-explicit constructors.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// Create returns a new rows×cols matrix with every cell set to initialValue.
// Callers wanting the default fill pass 0 (or use NewZeros).
// Complexity: O(rows*cols).
//
// Errors: ErrInvalidDimensions (rows<1 or cols<1), ErrNaNInf (non-finite initialValue).
func Create(rows, cols int, initialValue float64) (*Dense, error) {
	return NewDenseFilled(rows, cols, initialValue)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ---------- Kernels ----------

// Det is an alias for Determinant.
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// IsSingular reports whether Determinant(m) is exactly 0 after rounding.
// Errors are those of Determinant.
func IsSingular(m Matrix, opts ...Option) (bool, error) {
	det, err := Determinant(m, opts...)
	if err != nil {
		return false, err
	}

	return det == 0, nil
}

// IsFullRank reports whether Rank(m) equals min(Rows, Cols).
func IsFullRank(m Matrix, opts ...Option) (bool, error) {
	r, err := Rank(m, opts...)
	if err != nil {
		return false, err
	}

	return r == min(m.Rows(), m.Cols()), nil
}
