// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep  = "  "
	_fmtRowSep   = "\n"
	_fmtFloatFmt = "%.6f"
)

// String renders m as right-aligned columns.
// MAIN DESCRIPTION:
//   - Rows are joined by "\n" (no trailing newline), cells by two spaces.
//   - Every cell is right-aligned to the width of the widest rendered cell.
//   - Integral values render as plain integers ("4"), others with six decimals ("0.600000").
//
// Determinism:
//   - Fixed traversal order; output depends only on the element values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	cells := make([]string, len(m.data))
	width := 0
	for idx, v := range m.data {
		cells[idx] = formatCell(v)
		if len(cells[idx]) > width {
			width = len(cells[idx])
		}
	}

	var b strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtCellSep)
			}
			fmt.Fprintf(&b, "%*s", width, cells[i*m.c+j])
		}
	}

	return b.String()
}

// formatCell renders one element: integral finite values without decimals.
func formatCell(v float64) string {
	if !math.IsInf(v, 0) && v == math.Trunc(v) {
		if v == 0 {
			return "0" // drop the sign of -0
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return fmt.Sprintf(_fmtFloatFmt, v)
}
