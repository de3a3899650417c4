package ds

import (
	"errors"
	"fmt"
)

// ErrPrecondition is matched by every error a container returns when an
// operation is called outside its precondition.
var ErrPrecondition = errors.New("ds: precondition violated")

var (
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrPrecondition)
	ErrCursorAtEnd     = fmt.Errorf("%w: cursor at end", ErrPrecondition)
	ErrEmptyQueue      = fmt.Errorf("%w: queue is empty", ErrPrecondition)
)

func indexError(i, size int) error {
	return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, size)
}
