package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is matched by every panic raised when an unchecked
	// accessor reads the branch an outcome does not hold.
	ErrInvalidState = errors.New("rop: invalid state")

	// ErrAmbiguous is returned by Of when a bare value could be either the
	// payload or the error.
	ErrAmbiguous = errors.New("rop: ambiguous value, tag it with AsSuccess or AsFailure")

	// ErrUnclassified is returned by Of when a bare value is neither the
	// payload type nor the error type.
	ErrUnclassified = errors.New("rop: value is neither payload nor error")
)

// InvalidStateError is the panic value of Data and Err on the wrong branch.
type InvalidStateError struct {
	Op  string
	Tag Tag
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("rop: %s called on %s outcome", e.Op, e.Tag)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

func invalidState(op string, failed bool) *InvalidStateError {
	return &InvalidStateError{Op: op, Tag: tagOf(failed)}
}
