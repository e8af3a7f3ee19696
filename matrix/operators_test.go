// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixlab/matrix"
)

func TestPlusMinus(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 1}, {1, 1}})

	sum, err := a.Plus(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}, {4, 5}}, sum)

	diff, err := a.Minus(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 1}, {2, 3}}, diff)

	_, err = a.Plus(MustDense(t, 3, 3))
	AssertErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestPlusMinus_UnsupportedOperand(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, operand := range []any{2.0, 3, "x", nil, [][]float64{{1}}} {
		_, err := a.Plus(operand)
		AssertErrorIs(t, err, matrix.ErrUnsupportedOperand)
		_, err = a.Minus(operand)
		AssertErrorIs(t, err, matrix.ErrUnsupportedOperand)
	}
}

func TestTimes_Dispatch(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	t.Run("Matrix", func(t *testing.T) {
		got, err := a.Times(MustFromRows(t, [][]float64{{1}, {1}}))
		require.NoError(t, err)
		CompareExact(t, [][]float64{{3}, {7}}, got)
	})
	t.Run("Scalars", func(t *testing.T) {
		want := [][]float64{{2, 4}, {6, 8}}
		for _, k := range []any{2, int8(2), int32(2), int64(2), uint(2), uint16(2), float32(2), 2.0} {
			got, err := a.Times(k)
			require.NoError(t, err, "%T", k)
			CompareExact(t, want, got)
		}
	})
	t.Run("Unsupported", func(t *testing.T) {
		for _, k := range []any{"2", true, nil, []float64{2}} {
			_, err := a.Times(k)
			AssertErrorIs(t, err, matrix.ErrUnsupportedOperand)
		}
	})
	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := a.Times(MustDense(t, 3, 1))
		AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
}
