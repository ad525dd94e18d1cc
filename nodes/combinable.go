package nodes

import "fmt"

// Lift wraps a raw Go value into a Symbol. Strings become variables and
// bools become constants. If val already implements Symbol, it is returned
// as-is.
func Lift(val any) (Symbol, error) {
	switch v := val.(type) {
	case Symbol:
		if isNil(v) {
			return nil, ErrNilInput
		}
		return v, nil
	case string:
		return NewVariable(v), nil
	case bool:
		return NewConstant(v), nil
	case nil:
		return nil, ErrNilInput
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, val)
	}
}

func build(op Operator, inputs []any) (*Expression, error) {
	syms := make([]Symbol, len(inputs))
	for i, in := range inputs {
		s, err := Lift(in)
		if err != nil {
			return nil, fmt.Errorf("%s operator: input %d: %w", op, i, err)
		}
		syms[i] = s
	}
	return NewExpression(op, syms...)
}

// Not builds a NOT expression, lifting its input with Lift.
func Not(inputs ...any) (*Expression, error) { return build(OpNot, inputs) }

// And builds an AND expression, lifting each input with Lift.
func And(inputs ...any) (*Expression, error) { return build(OpAnd, inputs) }

// Or builds an OR expression, lifting each input with Lift.
func Or(inputs ...any) (*Expression, error) { return build(OpOr, inputs) }

// MustNot is like Not but panics on error.
func MustNot(inputs ...any) *Expression { return must(Not(inputs...)) }

// MustAnd is like And but panics on error.
func MustAnd(inputs ...any) *Expression { return must(And(inputs...)) }

// MustOr is like Or but panics on error.
func MustOr(inputs ...any) *Expression { return must(Or(inputs...)) }

func must(e *Expression, err error) *Expression {
	if err != nil {
		panic("gobool: " + err.Error())
	}
	return e
}
