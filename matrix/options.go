// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Defaults reproduce the engine's output contract exactly
//     (singular tolerance 1e-9, exact non-zero test in Rank, 4 decimals).
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute pivot magnitude below which Determinant
	// declares the matrix singular and returns 0.
	DefaultEpsilon = 1e-9

	// DefaultRankTolerance is the magnitude at or below which Rank treats a
	// diagonal entry as zero. Zero means an exact non-zero test.
	DefaultRankTolerance = 0.0

	// DefaultRoundingDigits is the number of decimal places Determinant rounds to.
	DefaultRoundingDigits = 4

	// MaxRoundingDigits bounds WithRoundingDigits; float64 carries ~15-17
	// significant decimal digits.
	MaxRoundingDigits = 15

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRankToleranceInvalid = "matrix: WithRankTolerance: tol must be finite, non-negative"
	panicRoundingInvalid      = "matrix: WithRoundingDigits: digits must be in [0, 15]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; kernels accept
// `...Option` and resolve them via gatherOptions.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	rankTol float64 // >= 0; DefaultRankTolerance
	digits  int     // [0, MaxRoundingDigits]; DefaultRoundingDigits
}

// Epsilon reports the resolved singularity tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RankTolerance reports the resolved zero test used by Rank.
func (o Options) RankTolerance() float64 { return o.rankTol }

// RoundingDigits reports the resolved number of decimals for Determinant.
func (o Options) RoundingDigits() int { return o.digits }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the pivot magnitude below which Determinant returns 0.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRankTolerance makes Rank treat |a[i][i]| ≤ tol as zero.
// Useful for inputs carrying floating residue; the default keeps the exact test.
// Panics when tol is negative or non-finite.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithRoundingDigits sets the decimals Determinant rounds to.
// Panics when digits is outside [0, MaxRoundingDigits].
func WithRoundingDigits(digits int) Option {
	if digits < 0 || digits > MaxRoundingDigits {
		panic(panicRoundingInvalid)
	}

	return func(o *Options) { o.digits = digits }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins semantics.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:     DefaultEpsilon,
		rankTol: DefaultRankTolerance,
		digits:  DefaultRoundingDigits,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// nil setters are skipped so callers can pass optional slots unconditionally.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
