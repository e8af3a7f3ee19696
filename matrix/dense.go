// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/SetRow return errors instead of panicking.
//   - Keep Set/SetRow as the ONLY mutation surface; every algebraic operation returns a new Dense.
//
// Complexity quicksheet:
//   - At/Set: O(1); Row/SetRow: O(c); Clone/Equal/ToRows: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both >= 1 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data; no accessor hands out the backing slice.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// newDense allocates an r×c zero matrix without validation.
// Callers MUST have validated rows>0 && cols>0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Notes:
//   - Returns a plain sentinel; public methods wrap with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at zero-based coordinates.
//
// Implementation:
//   - Stage 1: nil receiver guard.
//   - Stage 2: compute offset via indexOf (bounds check).
//   - Stage 3: load from flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds (wrapped with "Dense.At(row,col)").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// This is one of the two explicit mutation points of a Dense (see SetRow).
//
// Implementation:
//   - Stage 1: nil receiver guard.
//   - Stage 2: compute offset via indexOf (bounds check).
//   - Stage 3: write into flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Mutating the returned slice never affects m.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow replaces row i with a copy of row.
// MAIN DESCRIPTION:
//   - Whole-row assignment; the second explicit mutation point of a Dense.
//
// Implementation:
//   - Stage 1: validate i in [0, Rows) and len(row) == Cols().
//   - Stage 2: copy row into the flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds, ErrShapeMismatch.
//
// Behavior highlights:
//   - Validation happens before any write; a failed SetRow leaves m unchanged.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, row []float64) error {
	if m == nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRow, i, ErrIndexOutOfBounds)
	}
	if len(row) != m.c {
		return fmt.Errorf("Dense.%s(%d): row has %d elements, want %d: %w",
			ctxSetRow, i, len(row), m.c, ErrShapeMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], row)

	return nil
}

// Clone returns a deep copy (new buffer).
// Mutations of the clone never affect the original and vice versa.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical elements.
// Shape mismatch yields false, never an error. Two nil matrices are equal.
func (m *Dense) Equal(o *Dense) bool { return Equal(m, o) }

// Equal reports whether a and b have the same shape and every pair of
// corresponding elements compares equal with ==.
//
// Behavior highlights:
//   - NaN never equals NaN (IEEE semantics), so a matrix holding NaN is not Equal to itself.
//   - Use AllClose for tolerance-based comparisons.
//
// Complexity: O(r*c) worst case, early exit on first difference.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// ToRows exports m as freshly allocated nested rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// RawData returns a copy of the row-major element buffer.
func (m *Dense) RawData() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	if m == nil || f == nil {
		return
	}
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}
