// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// SingularEpsilon is the absolute threshold below which |det| is treated as zero.
const SingularEpsilon = 1e-10

const opInverse = "Inverse"

// Inverse computes A^{-1} by the adjugate method with the default CofactorSolver.
// The input must be non-nil and square. Returns ErrSingular when |det(A)| < SingularEpsilon.
// Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); det = Determinant(m); singularity guard.
//   - Stage 2: n=1 → [[1/a]]; n=2 → [[d,−b],[−c,a]]/det (closed form).
//   - Stage 3: n≥3 → for every (i,j): out[j,i] = (−1)^{i+j}·det(Minor(m,i,j))/det,
//     i.e. the adjugate written transposed and divided by det in one pass.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular.
//
// Determinism:
//   - Fixed i→j traversal.
//
// Complexity:
//   - n ≤ 4: negligible. In general n^2 minors of size n−1, each O((n−1)!) by cofactors.
//
// Notes:
//   - Property (not runtime-enforced): Mul(A, Inverse(A)) ≈ Identity(n).
func Inverse(m *Dense) (*Dense, error) {
	return inverseWith(m, CofactorSolver{})
}

// InverseWith is Inverse with det and every minor determinant computed by s
// (CofactorSolver when s is nil).
func InverseWith(m *Dense, s DeterminantSolver) (*Dense, error) {
	if s == nil {
		s = CofactorSolver{}
	}

	return inverseWith(m, s)
}

func inverseWith(m *Dense, s DeterminantSolver) (*Dense, error) {
	// Validate input non-nil and square before any arithmetic.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := s.Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < SingularEpsilon {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	n := m.r
	switch n {
	case 1:
		return &Dense{r: 1, c: 1, data: []float64{1.0 / det}}, nil
	case 2:
		a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
		return &Dense{r: 2, c: 2, data: []float64{d / det, -b / det, -c / det, a / det}}, nil
	}

	// General case: adjugate over determinant.
	res := newDense(n, n)
	var (
		i, j     int
		minorDet float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minorDet, err = s.Determinant(minorOf(m, i, j))
			if err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("minor(%d,%d): %w", i, j, err))
			}
			res.data[j*n+i] = cofactorSign(i, j) * minorDet / det // transposed write
		}
	}

	return res, nil
}
