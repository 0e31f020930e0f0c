// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixengine/matrix"
)

// Kind names the action that produced a Result.
type Kind int

const (
	KindDeterminant Kind = iota + 1
	KindRank
)

// String returns the action name.
func (k Kind) String() string {
	switch k {
	case KindDeterminant:
		return "determinant"
	case KindRank:
		return "rank"
	default:
		return "unknown"
	}
}

// Result is the outcome of one action on the grid. Value holds the rank as
// a whole number for KindRank.
type Result struct {
	Kind  Kind
	Value float64
	Err   error
}

// OK reports whether the action succeeded.
func (r Result) OK() bool { return r.Err == nil }

// String formats the result for display.
func (r Result) String() string {
	if r.Err != nil {
		return "Error: " + Message(r.Err)
	}
	switch r.Kind {
	case KindDeterminant:
		return "Determinant (Δ): " + FormatNumber(r.Value)
	case KindRank:
		return "Rank: " + strconv.Itoa(int(r.Value))
	default:
		return FormatNumber(r.Value)
	}
}

// Message turns an engine error into a short human-readable sentence.
func Message(err error) string {
	switch {
	case errors.Is(err, matrix.ErrNonSquare):
		return "matrix must be square"
	case errors.Is(err, matrix.ErrMalformedMatrix):
		return "matrix is empty, ragged, or holds non-finite values"
	case errors.Is(err, matrix.ErrNilMatrix):
		return "no matrix"
	default:
		return err.Error()
	}
}

// FormatNumber renders v as the shortest decimal that reads back exactly,
// without exponent notation.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0" // also folds -0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseCell reads the longest leading prefix of text that is a decimal
// number. Empty text, text without a numeric prefix, and values that are
// not finite (including overflow) yield 0.
func ParseCell(text string) float64 {
	s := strings.TrimSpace(text)
	for end := len(s); end > 0; end-- {
		v, err := strconv.ParseFloat(s[:end], 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0
		}
		if err != nil {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}

		return v
	}

	return 0
}
