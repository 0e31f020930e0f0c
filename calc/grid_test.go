package calc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixengine/calc"
	"github.com/katalvlaran/matrixengine/matrix"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, opts ...calc.Option) *calc.Grid {
	t.Helper()
	g, err := calc.New(opts...)
	require.NoError(t, err)

	return g
}

func TestNew_Defaults(t *testing.T) {
	g := mustGrid(t)
	r, c := g.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	lo, hi := g.Bounds()
	require.Equal(t, 1, lo)
	require.Equal(t, 5, hi)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, g.Matrix().Rows2D())

	_, ok := g.Last()
	require.False(t, ok)
}

func TestNew_InitialSizeIsClamped(t *testing.T) {
	g := mustGrid(t, calc.WithBounds(2, 4), calc.WithInitialSize(9, 1))
	r, c := g.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { calc.WithBounds(0, 5) })
	require.Panics(t, func() { calc.WithBounds(4, 3) })
	require.Panics(t, func() { calc.WithInitialSize(0, 1) })
}

func TestResize_ClampsAndKeepsOverlap(t *testing.T) {
	g := mustGrid(t)
	require.NoError(t, g.SetRow(0, "1", "2", "3"))
	require.NoError(t, g.SetRow(1, "4", "5", "6"))

	require.NoError(t, g.Resize(-1, 1))
	r, c := g.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 4, c)
	require.Equal(t, [][]float64{{1, 2, 3, 0}, {4, 5, 6, 0}}, g.Matrix().Rows2D())

	// clamp at both ends
	require.NoError(t, g.Resize(10, 10))
	r, c = g.Shape()
	require.Equal(t, 5, r)
	require.Equal(t, 5, c)
	require.NoError(t, g.Resize(-10, -10))
	r, c = g.Shape()
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)

	v, err := g.Cell(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestResize_ClearsLastResult(t *testing.T) {
	g := mustGrid(t)
	g.Rank()
	_, ok := g.Last()
	require.True(t, ok)

	require.NoError(t, g.Resize(1, 0))
	_, ok = g.Last()
	require.False(t, ok)
}

func TestSetCell_ParsesText(t *testing.T) {
	g := mustGrid(t, calc.WithInitialSize(1, 1))
	tests := map[string]float64{
		"7":       7,
		" -2.5 ":  -2.5,
		"1e3":     1000,
		"12abc":   12,
		"abc":     0,
		"":        0,
		"NaN":     0,
		"Inf":     0,
		"1e999":   0,
		".5":      0.5,
		"3.14.15": 3.14,
	}
	for text, want := range tests {
		require.NoError(t, g.SetCell(0, 0, text))
		got, err := g.Cell(0, 0)
		require.NoError(t, err)
		require.Equal(t, want, got, "text %q", text)
	}
}

func TestSetCell_OutOfRange(t *testing.T) {
	g := mustGrid(t)
	require.ErrorIs(t, g.SetCell(3, 0, "1"), calc.ErrCellOutOfRange)
	require.ErrorIs(t, g.SetRow(0, "1", "2", "3", "4"), calc.ErrCellOutOfRange)
	require.ErrorIs(t, g.SetRow(-1, "1"), calc.ErrCellOutOfRange)
	_, err := g.Cell(0, 7)
	require.ErrorIs(t, err, calc.ErrCellOutOfRange)
}

func TestLoad(t *testing.T) {
	g := mustGrid(t)
	require.NoError(t, g.Load([][]float64{{1, 2}, {3, 4}}))
	r, c := g.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)

	require.ErrorIs(t, g.Load(make([][]float64, 6)), matrix.ErrMalformedMatrix)

	big := make([][]float64, 6)
	for i := range big {
		big[i] = make([]float64, 2)
	}
	require.ErrorIs(t, g.Load(big), calc.ErrShapeOutOfBounds)
	require.ErrorIs(t, g.Load([][]float64{{1, 2}, {3}}), matrix.ErrMalformedMatrix)

	// failed loads leave the previous contents in place
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, g.Matrix().Rows2D())
}

func TestActions(t *testing.T) {
	g := mustGrid(t)
	require.NoError(t, g.Load([][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}))

	det := g.Determinant()
	require.True(t, det.OK())
	require.Equal(t, 24.0, det.Value)
	require.Equal(t, "Determinant (Δ): 24", det.String())

	rank := g.Rank()
	require.Equal(t, "Rank: 3", rank.String())
	last, ok := g.Last()
	require.True(t, ok)
	require.Equal(t, calc.KindRank, last.Kind)
}

func TestActions_NonSquareDeterminant(t *testing.T) {
	g := mustGrid(t, calc.WithInitialSize(2, 3))
	res := g.Determinant()
	require.False(t, res.OK())
	require.ErrorIs(t, res.Err, matrix.ErrDimensionMismatch)
	require.Equal(t, "Error: matrix must be square", res.String())

	// the grid is untouched and rank still works
	require.Equal(t, "Rank: 0", g.Rank().String())
}

func TestActions_EngineOptions(t *testing.T) {
	g := mustGrid(t, calc.WithInitialSize(1, 1), calc.WithEngineOptions(matrix.WithRoundingDigits(1)))
	require.NoError(t, g.SetCell(0, 0, "0.26"))
	require.Equal(t, 0.3, g.Determinant().Value)
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "-2", calc.FormatNumber(-2))
	require.Equal(t, "0", calc.FormatNumber(math.Copysign(0, -1)))
	require.Equal(t, "0.3333", calc.FormatNumber(0.3333))
	require.Equal(t, "1000000", calc.FormatNumber(1e6))
}

func TestMessage(t *testing.T) {
	_, err := matrix.Rank(nil)
	require.Equal(t, "no matrix", calc.Message(err))
	require.Equal(t, "unknown", calc.Kind(0).String())
	require.Equal(t, "determinant", calc.KindDeterminant.String())
}
