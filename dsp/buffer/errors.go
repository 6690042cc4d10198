package buffer

import (
	"errors"
	"fmt"
)

// ErrAllocation is matched by every allocation failure of this package.
var ErrAllocation = errors.New("buffer: allocation failed")

var (
	errNegativeSize = errors.New("negative size")
	errTooLarge     = errors.New("size exceeds allocation limit")
)

// AllocationError describes a failed aligned allocation.
type AllocationError struct {
	Bytes int64
	Err   error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("buffer: cannot allocate %d bytes: %v", e.Bytes, e.Err)
}

// Unwrap exposes both ErrAllocation and the underlying cause.
func (e *AllocationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAllocation}
	}
	return []error{ErrAllocation, e.Err}
}
