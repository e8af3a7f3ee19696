// SPDX-License-Identifier: MIT
// Package matrix - element-wise mapping, row broadcasting and tolerance compare.
//
// Purpose:
//   - Apply an arbitrary unary function to every element (new matrix).
//   - Broadcast a 1×c row over every row (bias addition).
//   - Compare two matrices within an absolute tolerance.
//
// Determinism & Policy:
//   - Fixed row-major loop order; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

const (
	opApply           = "Apply"
	opAddRowBroadcast = "AddRowBroadcast"
	opAllClose        = "AllClose"
)

// Apply returns a new matrix with out[i,j] = f(m[i,j]).
// MAIN DESCRIPTION:
//   - Pure element-wise map; m is not modified.
//
// Behavior highlights:
//   - f is caller-supplied and assumed total; a panic inside f propagates uncaught
//     and no result is returned.
//   - NaN/Inf produced by f are stored as-is.
//
// Errors:
//   - ErrNilMatrix, ErrNilFunc.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Apply(m *Dense, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if f == nil {
		return nil, matrixErrorf(opApply, ErrNilFunc)
	}

	res := newDense(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// AddRowBroadcast returns out[i,j] = m[i,j] + row[0,j].
// row must be 1×Cols(m); this is the bias step of a dense layer forward pass.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: O(r*c).
func AddRowBroadcast(m, row *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddRowBroadcast, err)
	}
	if err := ValidateNotNil(row); err != nil {
		return nil, matrixErrorf(opAddRowBroadcast, err)
	}
	if row.r != 1 || row.c != m.c {
		return nil, matrixErrorf(opAddRowBroadcast,
			fmt.Errorf("row %dx%d, want 1x%d: %w", row.r, row.c, m.c, ErrShapeMismatch))
	}

	res := newDense(m.r, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[base+j] = m.data[base+j] + row.data[j]
		}
	}

	return res, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every element.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// +Inf equals +Inf; NaN never compares close. A negative tol is treated as |tol|.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// AI-Hints:
//   - AllClose with a small tol is ideal for invariance tests (A·A⁻¹ ≈ I).
func AllClose(a, b *Dense, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)

	for idx := range a.data {
		av, bv := a.data[idx], b.data[idx]
		if av == bv { // covers equal infinities
			continue
		}
		if !(math.Abs(av-bv) <= tol) { // NaN-safe negation
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
