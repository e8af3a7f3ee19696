// SPDX-License-Identifier: MIT

package worksheet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp is returned for a step whose op is not supported.
	ErrUnknownOp = errors.New("worksheet: unknown operation")
	// ErrUnknownMatrix is returned when a step references an undefined name.
	ErrUnknownMatrix = errors.New("worksheet: unknown matrix")
	// ErrArity is returned when a step has the wrong number of args.
	ErrArity = errors.New("worksheet: wrong number of arguments")
	// ErrMissingParam is returned when a required step parameter is absent.
	ErrMissingParam = errors.New("worksheet: missing parameter")
	// ErrTooLarge is returned by det/inverse for matrices above the size limit.
	ErrTooLarge = errors.New("worksheet: matrix too large")
	// ErrReservedName is returned when a document defines or saves "_".
	ErrReservedName = errors.New("worksheet: reserved name")
	// ErrNotScalar is returned by Result.Value for results that are not 1×1.
	ErrNotScalar = errors.New("worksheet: result is not a scalar")
)

// StepError reports the failing step of a worksheet run.
type StepError struct {
	Index int    // zero-based step index
	Op    string // op of the failing step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error { return e.Err }
