// SPDX-License-Identifier: MIT

// Package matrix - axis-aware reductions.
//
// Purpose:
//   - Sum and Mean collapsing all elements (AxisTotal), each column (AxisColumns)
//     or each row (AxisRows).
//
// Determinism & Policy:
//   - Fixed summation order (row-major) so results are reproducible bit-for-bit.
//   - Mean reuses Sum and divides by the collapsed count; no second loop over data.

package matrix

import (
	"fmt"
	"strings"
)

const (
	opSum     = "Sum"
	opMean    = "Mean"
	opSumAll  = "SumAll"
	opMeanAll = "MeanAll"
)

// Axis selects how a reduction collapses dimensions.
type Axis int

const (
	// AxisTotal collapses every element into a single value (1×1 result).
	AxisTotal Axis = iota
	// AxisColumns collapses each column (1×cols result).
	AxisColumns
	// AxisRows collapses each row (rows×1 result).
	AxisRows
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisTotal:
		return "total"
	case AxisColumns:
		return "columns"
	case AxisRows:
		return "rows"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis maps "total"/"all", "columns"/"cols"/"0", "rows"/"1" (case-insensitive) to an Axis.
// The numeric spellings follow the NumPy convention (0 = down the columns).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "total", "all", "none":
		return AxisTotal, nil
	case "columns", "cols", "column", "0":
		return AxisColumns, nil
	case "rows", "row", "1":
		return AxisRows, nil
	default:
		return 0, fmt.Errorf("ParseAxis(%q): %w", s, ErrInvalidAxis)
	}
}

// Sum reduces m along axis.
// MAIN DESCRIPTION:
//   - AxisTotal   → 1×1 matrix holding the sum of all elements.
//   - AxisColumns → 1×c matrix, entry j = Σ_i m[i,j].
//   - AxisRows    → r×1 matrix, entry i = Σ_j m[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidAxis (validated before any element is read).
//
// Complexity:
//   - Time O(r*c), Space O(r) or O(c).
func Sum(m *Dense, axis Axis) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	var i, j, base int
	switch axis {
	case AxisTotal:
		return &Dense{r: 1, c: 1, data: []float64{sumAll(m)}}, nil
	case AxisColumns:
		res := newDense(1, m.c)
		for i = 0; i < m.r; i++ {
			base = i * m.c
			for j = 0; j < m.c; j++ {
				res.data[j] += m.data[base+j]
			}
		}
		return res, nil
	case AxisRows:
		res := newDense(m.r, 1)
		for i = 0; i < m.r; i++ {
			base = i * m.c
			acc := zeroSum
			for j = 0; j < m.c; j++ {
				acc += m.data[base+j]
			}
			res.data[i] = acc
		}
		return res, nil
	default:
		return nil, matrixErrorf(opSum, fmt.Errorf("%v: %w", axis, ErrInvalidAxis))
	}
}

// Mean reduces m along axis, dividing Sum by r*c, r or c respectively.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidAxis.
func Mean(m *Dense, axis Axis) (*Dense, error) {
	sums, err := Sum(m, axis)
	if err != nil {
		return nil, matrixErrorf(opMean, err)
	}

	var count int
	switch axis {
	case AxisTotal:
		count = m.r * m.c
	case AxisColumns:
		count = m.r
	case AxisRows:
		count = m.c
	}
	for idx := range sums.data {
		sums.data[idx] /= float64(count)
	}

	return sums, nil
}

// SumAll returns the sum of all elements (the scalar form of AxisTotal).
func SumAll(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSumAll, err)
	}

	return sumAll(m), nil
}

// MeanAll returns the mean of all elements.
func MeanAll(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMeanAll, err)
	}

	return sumAll(m) / float64(len(m.data)), nil
}

func sumAll(m *Dense) float64 {
	total := zeroSum
	for _, v := range m.data {
		total += v
	}

	return total
}
