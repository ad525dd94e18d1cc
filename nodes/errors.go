package nodes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArity is matched by every *InvalidArityError.
	ErrInvalidArity = errors.New("invalid arity")
	// ErrInvalidOperator is matched by every *InvalidOperatorError.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrNilInput is returned when an expression input is nil.
	ErrNilInput = errors.New("nil input")
	// ErrUnsupportedInput is returned by Lift for values that cannot become a Symbol.
	ErrUnsupportedInput = errors.New("unsupported input")
	// ErrUnboundVariable is returned by Evaluate when a variable has no value.
	ErrUnboundVariable = errors.New("unbound variable")
	// ErrBlankName is returned by ValidateName for empty or whitespace names.
	ErrBlankName = errors.New("variable name must not be blank")
)

// InvalidArityError reports an expression built with the wrong number of
// inputs for its operator.
type InvalidArityError struct {
	Op       Operator
	Required string // "exactly 1" or "at least 2"
	Got      int
}

func (e *InvalidArityError) Error() string {
	noun := "inputs"
	if e.Required == "exactly 1" {
		noun = "input"
	}
	return fmt.Sprintf("%s operator: %s %s required, %d provided", e.Op, e.Required, noun, e.Got)
}

func (e *InvalidArityError) Is(target error) bool { return target == ErrInvalidArity }

// InvalidOperatorError reports an attempt to build an expression from a
// sentinel or unknown operator.
type InvalidOperatorError struct {
	Op Operator
}

func (e *InvalidOperatorError) Error() string {
	if e.Op == OpNone {
		return "NONE operator: cannot be instantiated"
	}
	return fmt.Sprintf("unknown operator %d: cannot be instantiated", int(e.Op))
}

func (e *InvalidOperatorError) Is(target error) bool { return target == ErrInvalidOperator }
