package nodes

import "fmt"

// Assignment maps variable names to truth values.
type Assignment map[string]bool

// Evaluate computes the truth value of s under a. Every input of an AND or
// OR is evaluated, so an unbound variable is reported even when an earlier
// input already decides the result.
func Evaluate(s Symbol, a Assignment) (bool, error) {
	switch n := s.(type) {
	case *Constant:
		return n.value, nil
	case *Variable:
		v, ok := a[n.name]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnboundVariable, n.name)
		}
		return v, nil
	case *Expression:
		if n.op == OpNot {
			v, err := Evaluate(n.inputs[0], a)
			return !v, err
		}
		result := n.op == OpAnd
		for _, in := range n.inputs {
			v, err := Evaluate(in, a)
			if err != nil {
				return false, err
			}
			if n.op == OpAnd {
				result = result && v
			} else {
				result = result || v
			}
		}
		return result, nil
	}
	return false, ErrNilInput
}
