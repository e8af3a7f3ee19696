// SPDX-License-Identifier: MIT

// Package matrix - constructors & factories.
//
// Purpose:
//   - Build a Dense from explicit shape + fill, nested rows, or a flat row-major slice.
//   - Provide the neutral-element factories (Identity/Zeros/Ones) and the seeded Random factory.
//
// Determinism & Policy:
//   - Every constructor validates BEFORE allocating; a failing call returns (nil, err).
//   - Input slices are always copied; a Dense never aliases caller memory.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags of the constructor family.
const (
	opNewDense    = "NewDense"
	opNewFilled   = "NewFilled"
	opNewFromData = "NewFromData"
	opFromRows    = "FromRows"
	opNewFromFlat = "NewFromFlat"
	opIdentity    = "Identity"
	opRandom      = "Random"
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make() zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return newDense(rows, cols), nil
}

// NewSquare creates an n×n zero matrix (the column count defaults to the row count).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewFilled creates an r×c matrix with every element set to fill.
// Complexity: O(r*c).
func NewFilled(rows, cols int, fill float64) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFilled, err)
	}
	m := newDense(rows, cols)
	if fill != 0 {
		for idx := range m.data {
			m.data[idx] = fill
		}
	}

	return m, nil
}

// NewFromData creates an r×c matrix from explicit nested rows.
// MAIN DESCRIPTION:
//   - Explicit-data constructor; the shape is declared by the caller and checked against data.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: validate len(data)==rows and len(data[i])==cols for every i.
//   - Stage 3: copy rows into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch (row count or any row length differs).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromData(rows, cols int, data [][]float64) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromData, err)
	}
	if len(data) != rows {
		return nil, matrixErrorf(opNewFromData,
			fmt.Errorf("got %d rows, want %d: %w", len(data), rows, ErrShapeMismatch))
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(opNewFromData,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrShapeMismatch))
		}
	}

	m := newDense(rows, cols)
	for i, row := range data {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// FromRows creates a matrix whose shape is inferred from data.
// The first row fixes the column count; every other row must match it.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or an empty first row).
//   - ErrShapeMismatch (ragged rows).
func FromRows(data [][]float64) (*Dense, error) {
	if len(data) == 0 {
		return nil, matrixErrorf(opFromRows, fmt.Errorf("no rows: %w", ErrInvalidDimensions))
	}
	m, err := NewFromData(len(data), len(data[0]), data)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return m, nil
}

// NewFromFlat creates an r×c matrix from a row-major flat slice (copied).
//
// Errors:
//   - ErrInvalidDimensions, ErrElementCountMismatch (len(data) != rows*cols).
func NewFromFlat(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromFlat, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewFromFlat,
			fmt.Errorf("got %d elements, want %d: %w", len(data), rows*cols, ErrElementCountMismatch))
	}
	m := newDense(rows, cols)
	copy(m.data, data)

	return m, nil
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	if err := ValidateDims(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	I := newDense(n, n)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Zeros returns a rows×cols matrix filled with 0.
// It is a thin alias of NewDense with an intention-revealing name.
func Zeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// Ones returns a rows×cols matrix filled with 1.
func Ones(rows, cols int) (*Dense, error) { return NewFilled(rows, cols, 1.0) }

// Random returns a rows×cols matrix whose elements are drawn independently
// and uniformly from [low, high).
// MAIN DESCRIPTION:
//   - Stochastic factory; reproducible when a seed or RNG is supplied via options.
//
// Implementation:
//   - Stage 1: validate shape and bounds (finite, low <= high, high-low finite).
//   - Stage 2: resolve the RNG from options (WithSeed / WithRand; time-seeded otherwise).
//   - Stage 3: fill row-major with low + (high-low)*u, u ~ U[0,1).
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidRange.
//
// Determinism:
//   - Same seed and shape ⇒ identical matrix (fixed row-major draw order).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - low == high yields a constant matrix.
func Random(rows, cols int, low, high float64, opts ...RandomOption) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return nil, matrixErrorf(opRandom, fmt.Errorf("[%g, %g): %w", low, high, ErrInvalidRange))
	}

	span := high - low
	if math.IsInf(span, 0) {
		return nil, matrixErrorf(opRandom, fmt.Errorf("[%g, %g) span overflows: %w", low, high, ErrInvalidRange))
	}

	cfg := newRandomConfig(opts...)
	m := newDense(rows, cols)
	for idx := range m.data {
		m.data[idx] = low + span*cfg.rng.Float64()
	}

	return m, nil
}
