package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned by Apply for an operation kind it does not handle.
var ErrUnknownOperation = errors.New("unknown operation")

// PreconditionError reports an operation invoked in the wrong lifecycle state:
// before the opening entry, or a second opening. The engine is left unchanged.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// DomainError reports a business-rule violation. The engine is left unchanged.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
