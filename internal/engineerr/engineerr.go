// Package engineerr defines the error taxonomy shared across the engine:
// an absent-result sentinel and a fatal invariant-violation type.
package engineerr

import (
	"errors"
	"fmt"
)

// ErrNoHeadingsFound means the engine produced no pattern above threshold.
// Callers treat this as an absent result, not a failure.
var ErrNoHeadingsFound = errors.New("no heading pattern found")

// InvariantError marks a defect that must abort the run rather than be
// recovered from: a non-finite score factor, or a prefix-path subset that
// came out smaller than the bucket that generated it.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation in %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Invariant builds an *InvariantError tagged with the operation that
// detected it.
func Invariant(op string, msg string) *InvariantError {
	return &InvariantError{Op: op, Err: errors.New(msg)}
}
