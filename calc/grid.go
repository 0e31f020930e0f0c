// SPDX-License-Identifier: MIT

// Package calc is the interactive front end of the engine in library form:
// a bounded, resizable grid of cells edited as text, plus the determinant
// and rank actions with human-readable results.
//
// The grid owns its matrix; every computation hands the engine the current
// value and keeps only the formatted result. Engine failures never corrupt
// the grid and never affect later calls.
package calc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixengine/matrix"
)

var (
	// ErrCellOutOfRange is returned when a cell coordinate lies outside the grid.
	ErrCellOutOfRange = errors.New("calc: cell out of range")

	// ErrShapeOutOfBounds is returned by Load when the data does not fit the bounds.
	ErrShapeOutOfBounds = errors.New("calc: shape out of bounds")
)

// Grid is a mutable matrix editor. It is not safe for concurrent use.
type Grid struct {
	opts Options
	m    *matrix.Dense
	last *Result
}

// New returns a Grid of the configured initial size, all cells zero.
func New(opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	m, err := matrix.Create(o.rows, o.cols, 0)
	if err != nil {
		return nil, fmt.Errorf("calc: new grid: %w", err)
	}

	return &Grid{opts: o, m: m}, nil
}

// Shape reports the current number of rows and columns.
func (g *Grid) Shape() (rows, cols int) { return g.m.Shape() }

// Bounds reports the inclusive side range.
func (g *Grid) Bounds() (minDim, maxDim int) { return g.opts.minDim, g.opts.maxDim }

// Matrix returns a copy of the current contents.
func (g *Grid) Matrix() *matrix.Dense {
	return g.m.Clone().(*matrix.Dense)
}

// Cell returns the value at (i, j).
func (g *Grid) Cell(i, j int) (float64, error) {
	v, err := g.m.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfRange, i, j)
	}

	return v, nil
}

// Resize grows or shrinks the grid by (dRows, dCols), clamping each side to
// the bounds. Values in the overlapping top-left block are kept and the last
// result is cleared.
func (g *Grid) Resize(dRows, dCols int) error {
	r, c := g.m.Shape()
	return g.SetSize(r+dRows, c+dCols)
}

// SetSize is the absolute form of Resize.
func (g *Grid) SetSize(rows, cols int) error {
	rows = clamp(rows, g.opts.minDim, g.opts.maxDim)
	cols = clamp(cols, g.opts.minDim, g.opts.maxDim)
	next, err := g.m.Resized(rows, cols)
	if err != nil {
		return fmt.Errorf("calc: resize: %w", err)
	}
	g.m = next
	g.last = nil

	return nil
}

// SetCell parses text and stores it at (i, j). Text that does not start
// with a finite number is stored as 0.
func (g *Grid) SetCell(i, j int, text string) error {
	if err := g.m.Set(i, j, ParseCell(text)); err != nil {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOutOfRange, i, j)
	}

	return nil
}

// SetRow fills row i from the left with the given cell texts.
// Extra texts beyond the row width are an error; missing ones leave cells as they are.
func (g *Grid) SetRow(i int, texts ...string) error {
	if i < 0 || i >= g.m.Rows() || len(texts) > g.m.Cols() {
		return fmt.Errorf("%w: row %d with %d values", ErrCellOutOfRange, i, len(texts))
	}
	for j, text := range texts {
		if err := g.SetCell(i, j, text); err != nil {
			return err
		}
	}

	return nil
}

// Load replaces the grid with rows. The shape must lie within the bounds.
func (g *Grid) Load(rows [][]float64) error {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return fmt.Errorf("calc: load: %w", err)
	}
	r, c := m.Shape()
	if r < g.opts.minDim || r > g.opts.maxDim || c < g.opts.minDim || c > g.opts.maxDim {
		return fmt.Errorf("%w: %dx%d not within %d..%d", ErrShapeOutOfBounds, r, c, g.opts.minDim, g.opts.maxDim)
	}
	g.m = m
	g.last = nil

	return nil
}

// Determinant computes the determinant of the current grid.
func (g *Grid) Determinant() Result {
	det, err := matrix.Determinant(g.m, g.opts.engine...)
	return g.remember(Result{Kind: KindDeterminant, Value: det, Err: err})
}

// Rank computes the rank of the current grid.
func (g *Grid) Rank() Result {
	r, err := matrix.Rank(g.m, g.opts.engine...)
	return g.remember(Result{Kind: KindRank, Value: float64(r), Err: err})
}

// Last returns the most recent result, if any survived the last edit of shape.
func (g *Grid) Last() (Result, bool) {
	if g.last == nil {
		return Result{}, false
	}

	return *g.last, true
}

func (g *Grid) remember(r Result) Result {
	g.last = &r
	return r
}

// String renders the grid contents.
func (g *Grid) String() string { return g.m.String() }
