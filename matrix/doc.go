// SPDX-License-Identifier: MIT

// Package matrix implements a dense, in-memory rectangular float64 matrix
// and the algebra needed for small-to-medium linear-algebra workloads.
//
// The package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set/Row/SetRow.
//   - Constructors & factories: NewDense, NewFilled, NewFromData, FromRows,
//     NewFromFlat, Identity, Zeros, Ones, Random (seedable via WithSeed/WithRand).
//   - Arithmetic: Add, Sub, Scale, Mul, Hadamard, Transpose and the operator
//     forms (*Dense).Plus / Minus / Times.
//   - Determinant & inverse: recursive cofactor expansion with closed forms for
//     n ≤ 3 (CofactorSolver), an optional LU solver (LUSolver), Minor, Cofactor
//     and the adjugate-based Inverse with an absolute singularity threshold.
//   - Reductions & mapping: Sum/Mean along an Axis, SumAll/MeanAll, Apply,
//     AddRowBroadcast, AllClose.
//   - Shape: Reshape (row-major order preserved), Clone, Equal, String.
//
// Every algebraic operation returns a new *Dense; the only mutators are Set and
// SetRow. Validation happens before any element is touched, so a failed call
// never yields a partial result. Errors are package sentinels matched with
// errors.Is (ErrShapeMismatch, ErrDimensionMismatch, ErrNotSquare, ErrSingular,
// ErrIndexOutOfBounds, ErrElementCountMismatch, ErrInvalidAxis,
// ErrUnsupportedOperand, ...).
//
// Determinant and Inverse on the default solver are O(n!) for n > 3; callers
// accepting user-sized input should impose a size limit first.
package matrix
