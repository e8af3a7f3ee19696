// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and constructors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixlab/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			// immediately after creation all elements should be 0
			m.Do(func(i, j int, v float64) bool {
				require.Zero(t, v, "element [%d,%d]", i, j)
				return true
			})
		})
	}
}

func TestConstructors_InvalidDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func() (*matrix.Dense, error)
	}{
		{"NewDense 0x3", func() (*matrix.Dense, error) { return matrix.NewDense(0, 3) }},
		{"NewDense 3x-1", func() (*matrix.Dense, error) { return matrix.NewDense(3, -1) }},
		{"NewSquare 0", func() (*matrix.Dense, error) { return matrix.NewSquare(0) }},
		{"NewFilled 0x0", func() (*matrix.Dense, error) { return matrix.NewFilled(0, 0, 7) }},
		{"Identity 0", func() (*matrix.Dense, error) { return matrix.Identity(0) }},
		{"Ones -2x2", func() (*matrix.Dense, error) { return matrix.Ones(-2, 2) }},
		{"FromRows empty", func() (*matrix.Dense, error) { return matrix.FromRows(nil) }},
		{"FromRows empty row", func() (*matrix.Dense, error) { return matrix.FromRows([][]float64{{}}) }},
		{"Random 1x0", func() (*matrix.Dense, error) { return matrix.Random(1, 0, 0, 1) }},
		{"NewDense overflow", func() (*matrix.Dense, error) { return matrix.NewDense(4, 1<<62+1) }},
		{"NewFilled overflow", func() (*matrix.Dense, error) { return matrix.NewFilled(math.MaxInt, 2, 1) }},
		{"Random overflow", func() (*matrix.Dense, error) { return matrix.Random(1<<32, 1<<32, 0, 1) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.fn()
			require.Nil(t, m)
			AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestNewSquare_DefaultsColsToRows(t *testing.T) {
	m, err := matrix.NewSquare(4)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.True(t, m.IsSquare())
}

func TestNewFilled(t *testing.T) {
	m, err := matrix.NewFilled(2, 3, 2.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2.5, 2.5, 2.5}, {2.5, 2.5, 2.5}}, m)
}

func TestNewFromData(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		data := [][]float64{{1, 2, 3}, {4, 5, 6}}
		m, err := matrix.NewFromData(2, 3, data)
		require.NoError(t, err)
		CompareExact(t, data, m)

		// the constructor copies: mutating the source must not leak in
		data[0][0] = 100
		require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	})
	t.Run("RowCountMismatch", func(t *testing.T) {
		_, err := matrix.NewFromData(3, 2, [][]float64{{1, 2}, {3, 4}})
		AssertErrorIs(t, err, matrix.ErrShapeMismatch)
	})
	t.Run("RaggedRow", func(t *testing.T) {
		_, err := matrix.NewFromData(2, 2, [][]float64{{1, 2}, {3}})
		AssertErrorIs(t, err, matrix.ErrShapeMismatch)
	})
	t.Run("InvalidDims", func(t *testing.T) {
		_, err := matrix.NewFromData(0, 2, nil)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5}})
	AssertErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestNewFromFlat(t *testing.T) {
	m, err := matrix.NewFromFlat(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = matrix.NewFromFlat(2, 2, []float64{1, 2, 3})
	AssertErrorIs(t, err, matrix.ErrElementCountMismatch)
}

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		_, err := m.At(idx[0], idx[1])
		AssertErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		err = m.Set(idx[0], idx[1], 1)
		AssertErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	}

	MustSet(t, m, 1, 2, 9)
	require.Equal(t, 9.0, MustAt(t, m, 1, 2))
}

func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense
	_, err := m.At(0, 0)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	AssertErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	_, err = m.Row(0)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	AssertErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrNilMatrix)
	require.Nil(t, m.Clone())
	require.Nil(t, m.ToRows())
	require.Equal(t, "<nil>", m.String())
}

func TestRowSetRow(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	// Row returns a copy
	row[0] = 42
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	require.NoError(t, m.SetRow(0, []float64{7, 8}))
	CompareExact(t, [][]float64{{7, 8}, {3, 4}}, m)

	_, err = m.Row(2)
	AssertErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	AssertErrorIs(t, m.SetRow(-1, []float64{1, 2}), matrix.ErrIndexOutOfBounds)

	// wrong length fails and leaves the matrix untouched
	AssertErrorIs(t, m.SetRow(1, []float64{1, 2, 3}), matrix.ErrShapeMismatch)
	CompareExact(t, [][]float64{{7, 8}, {3, 4}}, m)
}

func TestClone_Independent(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.True(t, cp.Equal(m))

	MustSet(t, cp, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.False(t, cp.Equal(m))
}

func TestEqual(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}})
	b := MustFromRows(t, [][]float64{{1, 2, 3}})
	col := MustFromRows(t, [][]float64{{1}, {2}, {3}})

	require.True(t, matrix.Equal(a, b))
	require.True(t, a.Equal(b))
	require.False(t, matrix.Equal(a, col), "shape mismatch is simply not equal")
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(nil, nil))

	MustSet(t, b, 0, 2, 3.0000001)
	require.False(t, a.Equal(b))
}

func TestToRowsAndRawData_AreCopies(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	rows := m.ToRows()
	rows[0][0] = 99
	flat := m.RawData()
	flat[3] = 99

	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestDo_EarlyStop(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}
