// SPDX-License-Identifier: MIT

// Package matrix - operator forms.
//
// Go has no operator overloading, so the "+ - *" sugar is exposed as the
// methods Plus, Minus and Times taking an untyped operand. They are a thin
// dispatch layer over Add, Sub, Scale and Mul and never duplicate a loop.

package matrix

import "fmt"

const (
	opPlus  = "Plus"
	opMinus = "Minus"
	opTimes = "Times"
)

// Plus is the "+" operator form: m + operand.
// operand must be a *Dense with the same shape; any other type fails with
// ErrUnsupportedOperand.
func (m *Dense) Plus(operand any) (*Dense, error) {
	b, ok := operand.(*Dense)
	if !ok {
		return nil, matrixErrorf(opPlus, unsupportedOperand(operand))
	}

	return Add(m, b)
}

// Minus is the "-" operator form: m - operand.
// operand must be a *Dense with the same shape; any other type fails with
// ErrUnsupportedOperand.
func (m *Dense) Minus(operand any) (*Dense, error) {
	b, ok := operand.(*Dense)
	if !ok {
		return nil, matrixErrorf(opMinus, unsupportedOperand(operand))
	}

	return Sub(m, b)
}

// Times is the "*" operator form.
// MAIN DESCRIPTION:
//   - One multiply entry point dispatched by the kind of operand.
//
// Implementation:
//   - *Dense              → Mul(m, operand) (matrix product).
//   - any Go int/uint/float kind → Scale(m, float64(operand)).
//   - anything else       → ErrUnsupportedOperand.
//
// Errors:
//   - ErrUnsupportedOperand, plus whatever Mul/Scale report (ErrNilMatrix, ErrDimensionMismatch).
func (m *Dense) Times(operand any) (*Dense, error) {
	if b, ok := operand.(*Dense); ok {
		return Mul(m, b)
	}
	k, ok := scalarOf(operand)
	if !ok {
		return nil, matrixErrorf(opTimes, unsupportedOperand(operand))
	}

	return Scale(m, k)
}

// scalarOf converts any built-in numeric kind to float64.
func scalarOf(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func unsupportedOperand(v any) error {
	return fmt.Errorf("%T: %w", v, ErrUnsupportedOperand)
}
