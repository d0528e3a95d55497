package annotile

import "fmt"

// ErrBatchLengthMismatch indicates that a batch add was given a symbol slice
// whose length does not match the point slice.
type ErrBatchLengthMismatch struct {
	Points  int
	Symbols int
}

func (e *ErrBatchLengthMismatch) Error() string {
	return fmt.Sprintf("batch length mismatch: %d points, %d symbols", e.Points, e.Symbols)
}
