// SPDX-License-Identifier: MIT

package calc

import "github.com/katalvlaran/matrixengine/matrix"

// Defaults mirror the interactive calculator: sides clamped to 1..5,
// a 3×3 zero grid on start.
const (
	DefaultMinDim      = 1
	DefaultMaxDim      = 5
	DefaultInitialRows = 3
	DefaultInitialCols = 3
)

const (
	panicBoundsInvalid  = "calc: WithBounds: need 1 <= min <= max"
	panicInitialInvalid = "calc: WithInitialSize: rows and cols must be >= 1"
)

// Option mutates Grid options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved Grid configuration.
type Options struct {
	minDim, maxDim int
	rows, cols     int
	engine         []matrix.Option
}

// WithBounds sets the inclusive range every side is clamped to.
func WithBounds(minDim, maxDim int) Option {
	if minDim < 1 || maxDim < minDim {
		panic(panicBoundsInvalid)
	}

	return func(o *Options) { o.minDim, o.maxDim = minDim, maxDim }
}

// WithInitialSize sets the starting shape; it is clamped into the bounds.
func WithInitialSize(rows, cols int) Option {
	if rows < 1 || cols < 1 {
		panic(panicInitialInvalid)
	}

	return func(o *Options) { o.rows, o.cols = rows, cols }
}

// WithEngineOptions forwards numeric options to Determinant and Rank.
func WithEngineOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.engine = append(o.engine, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		minDim: DefaultMinDim,
		maxDim: DefaultMaxDim,
		rows:   DefaultInitialRows,
		cols:   DefaultInitialCols,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	o.rows = clamp(o.rows, o.minDim, o.maxDim)
	o.cols = clamp(o.cols, o.minDim, o.maxDim)

	return o
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
