// SPDX-License-Identifier: MIT

// Package matrix - determinant solvers & minor extraction.
//
// Purpose:
//   - Compute det(A) for square A behind the DeterminantSolver interface.
//   - CofactorSolver (default) keeps closed forms for n ≤ 3 and Laplace expansion
//     along the first row for n > 3. It is O(n!) and meant for small matrices.
//   - LUSolver delegates to gonum's LU factorization (partial pivoting, O(n^3)).
//     It agrees with CofactorSolver within floating tolerance, not bit-for-bit.
//
// AI-Hints:
//   - Impose a size limit before calling Determinant/Inverse on user-sized input;
//     the cofactor path has no preemption point.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opLUSolver    = "LUSolver"
)

// DeterminantSolver computes the determinant of a square matrix.
// Implementations MUST return ErrNilMatrix / ErrNotSquare for invalid input
// and MUST NOT mutate m.
type DeterminantSolver interface {
	Determinant(m *Dense) (float64, error)
}

// Compile-time assertions.
var (
	_ DeterminantSolver = CofactorSolver{}
	_ DeterminantSolver = LUSolver{}
)

// CofactorSolver is the recursive cofactor-expansion solver.
type CofactorSolver struct{}

// Determinant implements DeterminantSolver.
// MAIN DESCRIPTION:
//   - Exact-order recursive determinant.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: n=1 → a; n=2 → ad−bc; n=3 → Sarrus rule (six triple products).
//   - Stage 3: n>3 → Σ_j (−1)^j · m[0,j] · det(Minor(m,0,j)).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n!) for n > 3, Space O(n^2) per recursion level.
func (CofactorSolver) Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(m), nil
}

// cofactorDet is the unchecked recursion; m MUST be square and non-nil.
func cofactorDet(m *Dense) float64 {
	a := m.data
	switch m.r {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	case 3:
		// Sarrus rule on row-major a[0..8].
		return a[0]*a[4]*a[8] +
			a[1]*a[5]*a[6] +
			a[2]*a[3]*a[7] -
			a[2]*a[4]*a[6] -
			a[1]*a[3]*a[8] -
			a[0]*a[5]*a[7]
	}

	// Laplace expansion along row 0.
	det := zeroSum
	sign := 1.0
	for j := 0; j < m.c; j++ {
		det += sign * a[j] * cofactorDet(minorOf(m, 0, j))
		sign = -sign
	}

	return det
}

// LUSolver computes det(A) from an LU factorization with partial pivoting
// (gonum.org/v1/gonum/mat).
type LUSolver struct{}

// Determinant implements DeterminantSolver.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (LUSolver) Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opLUSolver, err)
	}
	if m.r == 1 {
		return m.data[0], nil
	}

	// mat.NewDense adopts its slice; hand it a copy so m stays untouched.
	var lu mat.LU
	lu.Factorize(mat.NewDense(m.r, m.c, m.RawData()))

	return lu.Det(), nil
}

// Determinant returns det(m) using the default CofactorSolver.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
func Determinant(m *Dense) (float64, error) {
	return CofactorSolver{}.Determinant(m)
}

// DeterminantWith returns det(m) computed by s (CofactorSolver when s is nil).
func DeterminantWith(m *Dense, s DeterminantSolver) (float64, error) {
	if s == nil {
		s = CofactorSolver{}
	}

	return s.Determinant(m)
}

// Minor returns the (n−1)×(n−1) submatrix of square m with row and col removed.
// MAIN DESCRIPTION:
//   - Copy-based minor extraction; the result is independent of m.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//   - ErrInvalidDimensions when n == 1 (a minor would be empty).
//   - ErrIndexOutOfBounds when row or col is outside [0, n).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r == 1 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("1x1 has no minor: %w", ErrInvalidDimensions))
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return minorOf(m, row, col), nil
}

// minorOf is the unchecked minor; preconditions are those of Minor.
func minorOf(m *Dense, row, col int) *Dense {
	n := m.r
	out := newDense(n-1, n-1)
	dst := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		base := i * n
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			out.data[dst] = m.data[base+j]
			dst++
		}
	}

	return out
}

// Cofactor returns (−1)^{row+col} · det(Minor(m, row, col)).
//
// Errors:
//   - Those of Minor.
func Cofactor(m *Dense, row, col int) (float64, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorSign(row, col) * cofactorDet(minor), nil
}

// cofactorSign returns (−1)^{i+j}.
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1.0
	}

	return -1.0
}
