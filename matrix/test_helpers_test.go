// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixengine/matrix"
)

// Tolerances shared by property tests. The determinant is rounded to four
// decimals, so comparisons between two rounded results allow one unit in the
// last kept place.
const (
	DetTol   = 1e-4
	TinyTol  = 1e-12
	MaxSide  = 5 // largest side the calculator front end allows
	MaxSeeds = 25
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity (main diagonal = 1, else 0).
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// FromRows BUILDS a *Dense from a nested literal or fails the test.
// Implementation:
//   - Stage 1: matrix.FromRows(rows).
//   - Stage 2: t.Fatalf on error.
//
// Notes:
//   - Prefer for small exact-equality tests written as [][]float64 literals.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Implementation:
//   - Stage 1: Allocate Dense.
//   - Stage 2: Fill via seeded RNG, row-major.
//
// Determinism:
//   - Deterministic per seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// SwapRowsCopy RETURNS a copy of m with rows a and b exchanged.
func SwapRowsCopy(t *testing.T, m *matrix.Dense, a, b int) *matrix.Dense {
	t.Helper()
	rows := m.Rows2D()
	rows[a], rows[b] = rows[b], rows[a]

	return FromRows(t, rows)
}

// ScaleRowCopy RETURNS a copy of m with row i multiplied by k.
func ScaleRowCopy(t *testing.T, m *matrix.Dense, i int, k float64) *matrix.Dense {
	t.Helper()
	rows := m.Rows2D()
	for j := range rows[i] {
		rows[i][j] *= k
	}

	return FromRows(t, rows)
}

// MustDet RETURNS Determinant(m, opts...) or fails the test.
func MustDet(t *testing.T, m matrix.Matrix, opts ...matrix.Option) float64 {
	t.Helper()
	det, err := matrix.Determinant(m, opts...)
	if err != nil {
		t.Fatalf("Determinant: %v", err)
	}

	return det
}

// MustRank RETURNS Rank(m, opts...) or fails the test.
func MustRank(t *testing.T, m matrix.Matrix, opts ...matrix.Option) int {
	t.Helper()
	r, err := matrix.Rank(m, opts...)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	return r
}

// AssertErrorIs ASSERTS errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
// AI-Hints:
//   - Use in options guards (WithEpsilon, WithRoundingDigits).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// InDelta RETURNS whether |a-b| ≤ delta (boolean, non-fatal).
func InDelta(a, b float64, delta float64) bool {
	return math.Abs(a-b) <= delta
}

// ---------- bench helpers ----------

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := d.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := d.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
