// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points with alternative, intention-revealing names.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// Dot is an alias for Mul, named after the dot-product formulation of dense layers.
func Dot(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m *Dense, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd(a, b *Dense) (*Dense, error) { return Hadamard(a, b) }

// CloneMatrix returns a deep copy of m. Thin wrapper over (*Dense).Clone.
func CloneMatrix(m *Dense) *Dense { return m.Clone() }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}
