package bench

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecbench/kernel"
)

// Errors returned by Run and Verify.
var (
	// ErrInvalidOperation is kernel.ErrInvalidOperation, re-exported.
	ErrInvalidOperation = kernel.ErrInvalidOperation
	ErrInvalidSize      = errors.New("bench: size must be positive")
	ErrAllocation       = errors.New("bench: allocation failed")
	ErrMismatch         = errors.New("bench: result mismatch")
)

// AllocationError reports arrays that could not be allocated, either
// because they exceed the memory limit or because the runtime refused.
// It matches ErrAllocation with errors.Is.
type AllocationError struct {
	Elements int    // requested array length
	Bytes    uint64 // total bytes for all arrays of one run
	Limit    uint64 // memory limit in bytes, 0 if none applied
	Cause    error  // runtime failure, nil for a budget rejection
}

func (e *AllocationError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("bench: allocating %d elements (%d bytes): %v", e.Elements, e.Bytes, e.Cause)
	case e.Limit > 0:
		return fmt.Sprintf("bench: %d elements need %d bytes, over the %d byte limit", e.Elements, e.Bytes, e.Limit)
	default:
		return fmt.Sprintf("bench: %d elements cannot be addressed", e.Elements)
	}
}

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

func (e *AllocationError) Unwrap() error {
	return e.Cause
}

// MismatchError reports the first output element that differs from the
// reference value. It matches ErrMismatch with errors.Is.
type MismatchError struct {
	Index int
	Got   float32
	Want  float32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("bench: result mismatch at index %d: got %v, want %v", e.Index, e.Got, e.Want)
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
