package harness

import (
	"errors"
	"fmt"
)

// ErrAssertion is matched by every assertion mismatch reported by a case.
var ErrAssertion = errors.New("assertion failed")

// AssertionError records the compared value and the value that was expected.
type AssertionError struct {
	Label string
	Got   string
	Want  string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: unexpected %s value: %s (expected %s)", ErrAssertion, e.Label, e.Got, e.Want)
}

func (e *AssertionError) Unwrap() error { return ErrAssertion }

// FaultError is an unexpected fault that escaped a case body.
// Value holds the recovered panic value; Stack is captured at recovery.
type FaultError struct {
	Value any
	Stack []byte
}

func (e *FaultError) Error() string {
	if err, ok := e.Value.(error); ok {
		return "unexpected fault: " + err.Error()
	}
	return fmt.Sprintf("unexpected fault: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *FaultError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Equal asserts that got equals want, labelling the mismatch with label.
func Equal(label string, got, want int) error {
	if got == want {
		return nil
	}
	return &AssertionError{
		Label: label,
		Got:   fmt.Sprintf("%d", got),
		Want:  fmt.Sprintf("%d", want),
	}
}

// IsFault reports whether err is, or wraps, an unexpected fault.
func IsFault(err error) bool {
	var fe *FaultError
	return errors.As(err, &fe)
}
