package investigation

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a hypothesis or evidence id is
	// unknown to the state document.
	ErrNotFound = errors.New("not found")

	// ErrTerminalCase is returned when an operation would mutate a case
	// in a terminal status.
	ErrTerminalCase = errors.New("case is in a terminal status")

	// ErrAlreadyInitialized is returned when initialization is
	// attempted on a case that already carries an investigation state.
	ErrAlreadyInitialized = errors.New("investigation already initialized")
)

// InvalidTransitionError reports a rejected case status transition.
// Fatal to the current operation; never swallowed.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s: %s", e.From, e.To, e.Reason)
}

// InvariantViolationError reports a programming error in the state
// document, such as a non-contiguous turn log. Callers abort the turn
// and surface it to operators.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Detail
}

// IsInvariantViolation checks whether err is an invariant violation.
func IsInvariantViolation(err error) bool {
	var ive *InvariantViolationError
	return errors.As(err, &ive)
}
