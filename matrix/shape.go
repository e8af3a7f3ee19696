// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opReshape = "Reshape"

// Reshape returns a rows×cols matrix holding m's elements in the same
// row-major order; only the grouping into rows changes.
//
// Implementation:
//   - Stage 1: validate m, rows>0, cols>0 (product within int) and rows*cols == Rows(m)*Cols(m).
//   - Stage 2: copy the flat buffer (row-major flatten + refill is a straight copy).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrElementCountMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Reshape(m *Dense, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	// ValidateDims rejects products that overflow before they are compared.
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	if rows*cols != len(m.data) {
		return nil, matrixErrorf(opReshape,
			fmt.Errorf("%dx%d holds %d elements, target %dx%d holds %d: %w",
				m.r, m.c, len(m.data), rows, cols, rows*cols, ErrElementCountMismatch))
	}

	res := newDense(rows, cols)
	copy(res.data, m.data)

	return res, nil
}
