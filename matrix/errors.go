// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(op, err) so the
// rendered error reads "Mul: ValidateMulCompatible: matrix: dimension mismatch"
// while errors.Is still matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> shape/index -> square -> numeric (singular).

var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive.
	// No public constructor produces a matrix with zero rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch indicates operands whose row/column counts are not
	// identical for an elementwise or assignment operation (Add, Sub,
	// Hadamard, SetRow, explicit construction data).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates that the inner dimensions of a matrix
	// product disagree (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| < SingularEpsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// [0, Rows) or [0, Cols). Public indexers return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrElementCountMismatch is returned when a reshape (or flat construction)
	// does not preserve the total element count.
	ErrElementCountMismatch = errors.New("matrix: element count mismatch")

	// ErrInvalidAxis is returned by reductions given an unknown Axis.
	ErrInvalidAxis = errors.New("matrix: invalid axis")

	// ErrUnsupportedOperand is returned by the operator forms (Plus, Minus,
	// Times) when the right operand is neither a *Dense nor a numeric scalar
	// accepted by that operator.
	ErrUnsupportedOperand = errors.New("matrix: unsupported operand type")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunc indicates that Apply was called with a nil mapping function.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrInvalidRange indicates Random bounds that are NaN/Inf, reversed, or too far apart to subtract.
	ErrInvalidRange = errors.New("matrix: invalid random range")
)
