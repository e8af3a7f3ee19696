// SPDX-License-Identifier: MIT

// Package activation provides the element-wise non-linearities of a dense
// layer forward pass, shaped for matrix.Apply, plus a row-wise softmax.
//
// Every function here is pure; none mutates its input.
package activation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matrixlab/matrix"
)

const opSoftmaxRows = "SoftmaxRows"

// ReLU returns max(0, x). NaN propagates.
func ReLU(x float64) float64 {
	if x < 0 {
		return 0
	}

	return x
}

// Sigmoid returns 1 / (1 + e^−x), evaluated without overflow for large |x|.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// SoftmaxRows normalizes every row of m into a probability distribution:
// out[i,j] = exp(m[i,j] − max_i) / Σ_k exp(m[i,k] − max_i).
//
// Implementation:
//   - Stage 1: validate m (non-nil).
//   - Stage 2: per row, subtract the row maximum before exponentiation so that
//     large logits cannot overflow; then divide by the row sum.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SoftmaxRows(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opSoftmaxRows, err)
	}

	rows := m.ToRows()
	for _, row := range rows {
		peak := math.Inf(-1)
		for _, v := range row {
			peak = math.Max(peak, v)
		}
		sum := 0.0
		for j, v := range row {
			row[j] = math.Exp(v - peak)
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
	}

	return matrix.FromRows(rows)
}
