// SPDX-License-Identifier: MIT
// Package matrix provides the numeric kernels of the engine: determinant by
// Gaussian elimination with partial pivoting, and rank by column-compaction
// row reduction. All kernels perform strict fail-fast validation, work on a
// private copy of their input and return clear errors on misuse.
//
// Purpose:
//   - Declare canonical kernels used by facades and callers.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf.
//   - Inputs are never mutated and never retained past the call.

package matrix

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ZeroPivot is the sentinel for an exactly vanishing pivot.
const ZeroPivot = 0.0

// UnitDeterminant is the multiplicative identity the running determinant starts from.
const UnitDeterminant = 1.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDeterminant = "Determinant"
	opRank        = "Rank"
	opCopy        = "workingCopy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateOperand runs the shared structural guards: NotNil → Shape.
func validateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateShape(m); err != nil {
		return err
	}

	return nil
}

// workingCopy returns a private *Dense copy of m for in-place elimination.
// Implementation:
//   - Fast path: *Dense clones its flat buffer with a single copy.
//   - Fallback: allocate and read every cell through At in fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func workingCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opCopy, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// exactFractionDigits is enough fractional digits to print any float64 exactly.
const exactFractionDigits = 1074

// roundTo rounds the exact binary value of v to the given number of decimals,
// ties away from zero, and returns the nearest float64 to that decimal.
// This is what toFixed followed by parseFloat yields in ECMAScript engines.
// Negative zero is normalised to +0 so results compare bit-for-bit.
func roundTo(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v + 0 // -0 + 0 == +0
	}

	exact := new(big.Float).SetFloat64(math.Abs(v)).Text('f', exactFractionDigits)
	dot := strings.IndexByte(exact, '.')
	cut := dot + 1 + digits
	kept := exact[:cut]
	if digits == 0 {
		kept = exact[:dot]
	}
	if exact[cut] >= '5' {
		kept = incrementDecimal(kept)
	}

	r, err := strconv.ParseFloat(kept, 64)
	if err != nil || r == 0 {
		return 0
	}
	if v < 0 {
		return -r
	}

	return r
}

// incrementDecimal adds one unit in the last place of a non-negative decimal string.
func incrementDecimal(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		switch {
		case b[i] == '.':
			continue
		case b[i] < '9':
			b[i]++
			return string(b)
		default:
			b[i] = '0'
		}
	}

	return "1" + string(b)
}

// Determinant returns det(m) rounded to RoundingDigits decimals (4 by default).
// MAIN DESCRIPTION:
//   - Gaussian elimination to upper-triangular form with partial pivoting on a private copy.
//
// Implementation:
//   - Stage 1: Validate (NotNil → Shape → Square → Finite).
//   - Stage 2: n==1 returns the single element; n==2 uses a·d − b·c.
//   - Stage 3: n≥3: for each column i pick the largest |a[j][i]| for j ≥ i (lowest j on ties);
//     |pivot| < eps ⇒ singular, return 0 at once; a row swap negates the running product;
//     multiply by the pivot; eliminate rows below with factor a[j][i]/a[i][i].
//   - Stage 4: round the exact value to the configured decimals, ties away from zero.
//     The 1×1 and 2×2 results are rounded too, unlike the calculator this engine
//     replaces, which returned them unrounded.
//
// Behavior highlights:
//   - Singularity is a normal result (0), not an error.
//   - The caller's matrix is never mutated.
//
// Inputs:
//   - m: square Matrix with finite cells.
//   - opts: WithEpsilon, WithRoundingDigits.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions,
//     ErrDimensionMismatch + ErrNonSquare ("matrix must be square"),
//     ErrMalformedMatrix (NaN/Inf cell).
//
// Determinism:
//   - Fixed loop orders and tie-break ⇒ identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := validateOperand(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	a, err := workingCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return roundTo(eliminateDeterminant(a, o.eps), o.digits), nil
}

// eliminateDeterminant destroys a and returns its unrounded determinant.
func eliminateDeterminant(a *Dense, eps float64) float64 {
	n := a.r
	d := a.data

	switch n {
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	}

	det := UnitDeterminant
	var i, j, k, p int
	var pivot, factor float64
	for i = 0; i < n; i++ {
		// Partial pivoting: strict > keeps the lowest index on ties.
		p = i
		for j = i + 1; j < n; j++ {
			if math.Abs(d[j*n+i]) > math.Abs(d[p*n+i]) {
				p = j
			}
		}
		if pivot = d[p*n+i]; math.Abs(pivot) < eps || pivot == ZeroPivot {
			return 0
		}
		if p != i {
			a.swapRows(i, p)
			det = -det
		}
		det *= pivot

		for j = i + 1; j < n; j++ {
			factor = d[j*n+i] / pivot
			for k = i; k < n; k++ {
				d[j*n+k] -= factor * d[i*n+k]
			}
		}
	}

	return det
}

// Rank returns the number of linearly independent rows of m.
// MAIN DESCRIPTION:
//   - Column-compaction row reduction on a private copy.
//
// Implementation:
//   - effectiveRank starts at Cols(m); pivot index row runs from 0 while row < effectiveRank.
//   - a[row][row] non-zero: eliminate column row from every other row (all Rows(m) rows),
//     touching only the first effectiveRank entries, then advance.
//   - a[row][row] zero: swap in the first lower row with a non-zero entry in that column
//     and retry; if none exists, decrement effectiveRank, copy column effectiveRank into
//     column row for every row, and retry without advancing.
//
// Behavior highlights:
//   - When Rows(m) < Cols(m) the pivot index can pass the last row; such a
//     missing row reads as all zeros, so the column is compacted away.
//   - The zero test is exact unless WithRankTolerance is supplied.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrMalformedMatrix (NaN/Inf cell).
//
// Complexity:
//   - Time O(r·c·min(r,c)) elimination plus O(r·c) per compaction, Space O(r*c).
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := validateOperand(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	a, err := workingCopy(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return reduceRank(a, o.rankTol), nil
}

// reduceRank destroys a and returns its column-compaction rank.
func reduceRank(a *Dense, tol float64) int {
	rows, cols := a.r, a.c
	d := a.data
	nonZero := func(v float64) bool { return math.Abs(v) > tol }

	rank := cols
	var i, k int
	var pivot, mult float64
	for row := 0; row < rank; {
		if row < rows && nonZero(d[row*cols+row]) {
			pivot = d[row*cols+row]
			for i = 0; i < rows; i++ {
				if i == row {
					continue
				}
				mult = d[i*cols+row] / pivot
				for k = 0; k < rank; k++ {
					d[i*cols+k] -= mult * d[row*cols+k]
				}
			}
			row++

			continue
		}

		swapped := false
		for i = row + 1; i < rows; i++ {
			if nonZero(d[i*cols+row]) {
				a.swapRows(row, i)
				swapped = true

				break
			}
		}
		if !swapped {
			rank--
			for i = 0; i < rows; i++ {
				d[i*cols+row] = d[i*cols+rank]
			}
		}
	}

	return rank
}
