// SPDX-License-Identifier: MIT
// Package matrix_test contains algebraic property checks over seeded random data.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matrixlab/matrix"
)

// PropertySuite re-checks algebraic identities for several shapes and seeds.
type PropertySuite struct {
	suite.Suite
	seeds []int64
}

func (s *PropertySuite) SetupSuite() {
	s.seeds = []int64{1, 2, 3, 17, 2024}
}

func (s *PropertySuite) random(r, c int, seed int64) *matrix.Dense {
	return RandomDense(s.T(), r, c, seed)
}

func (s *PropertySuite) close(a, b *matrix.Dense, tol float64) {
	ok, err := matrix.AllClose(a, b, tol)
	s.Require().NoError(err)
	s.Require().True(ok, "not close:\n%v\nvs\n%v", a, b)
}

func (s *PropertySuite) TestTransposeInvolution() {
	for _, seed := range s.seeds {
		m := s.random(3, 5, seed)
		t1, err := matrix.Transpose(m)
		s.Require().NoError(err)
		t2, err := matrix.Transpose(t1)
		s.Require().NoError(err)
		s.Require().True(t2.Equal(m))
	}
}

func (s *PropertySuite) TestProductTranspose() {
	// (AB)ᵀ = BᵀAᵀ
	for _, seed := range s.seeds {
		a := IntegerDense(s.T(), 3, 4, seed)
		b := IntegerDense(s.T(), 4, 2, seed+1)

		ab, err := matrix.Mul(a, b)
		s.Require().NoError(err)
		left, err := matrix.Transpose(ab)
		s.Require().NoError(err)

		at, _ := matrix.Transpose(a)
		bt, _ := matrix.Transpose(b)
		right, err := matrix.Mul(bt, at)
		s.Require().NoError(err)
		s.Require().True(left.Equal(right))
	}
}

func (s *PropertySuite) TestMulAssociative() {
	for _, seed := range s.seeds {
		a := s.random(2, 3, seed)
		b := s.random(3, 4, seed+10)
		c := s.random(4, 2, seed+20)

		ab, err := matrix.Mul(a, b)
		s.Require().NoError(err)
		abc1, err := matrix.Mul(ab, c)
		s.Require().NoError(err)

		bc, err := matrix.Mul(b, c)
		s.Require().NoError(err)
		abc2, err := matrix.Mul(a, bc)
		s.Require().NoError(err)

		s.close(abc1, abc2, 1e-9)
	}
}

func (s *PropertySuite) TestAddCommutesAndSubInverts() {
	for _, seed := range s.seeds {
		a := s.random(4, 3, seed)
		b := s.random(4, 3, seed+5)

		ab, _ := matrix.Add(a, b)
		ba, _ := matrix.Add(b, a)
		s.Require().True(ab.Equal(ba))

		back, err := matrix.Sub(ab, b)
		s.Require().NoError(err)
		s.close(back, a, 1e-12)
	}
}

func (s *PropertySuite) TestScaleDistributes() {
	// k(A+B) = kA + kB
	for _, seed := range s.seeds {
		a := s.random(3, 3, seed)
		b := s.random(3, 3, seed+3)
		const k = -2.5

		sum, _ := matrix.Add(a, b)
		left, err := matrix.Scale(sum, k)
		s.Require().NoError(err)

		ka, _ := matrix.Scale(a, k)
		kb, _ := matrix.Scale(b, k)
		right, _ := matrix.Add(ka, kb)
		s.close(left, right, 1e-12)
	}
}

func (s *PropertySuite) TestDeterminantMultiplicative() {
	// det(AB) = det(A)·det(B)
	for _, seed := range s.seeds {
		a := IntegerDense(s.T(), 4, 4, seed)
		b := IntegerDense(s.T(), 4, 4, seed+7)
		ab, err := matrix.Mul(a, b)
		s.Require().NoError(err)

		da, _ := matrix.Determinant(a)
		db, _ := matrix.Determinant(b)
		dab, err := matrix.Determinant(ab)
		s.Require().NoError(err)
		s.Require().Equal(da*db, dab)
	}
}

func (s *PropertySuite) TestCloneIndependence() {
	for _, seed := range s.seeds {
		m := s.random(2, 2, seed)
		before := m.ToRows()
		cp := m.Clone()
		s.Require().NoError(cp.Set(1, 1, 1e6))
		CompareExact(s.T(), before, m)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
