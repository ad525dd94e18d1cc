package nodes

import "fmt"

// Expression combines one or more input symbols under NOT, AND or OR.
// The operator and the order of the inputs are fixed at construction.
type Expression struct {
	op     Operator
	inputs []Symbol
}

// NewExpression validates op and the arity of inputs, then builds the
// expression. NOT takes exactly one input; AND and OR take at least two.
// The inputs slice is copied, so later changes to it do not affect the tree.
func NewExpression(op Operator, inputs ...Symbol) (*Expression, error) {
	if !op.Valid() {
		return nil, &InvalidOperatorError{Op: op}
	}
	if !op.acceptsArity(len(inputs)) {
		return nil, &InvalidArityError{Op: op, Required: op.requiredArity(), Got: len(inputs)}
	}
	owned := make([]Symbol, len(inputs))
	for i, in := range inputs {
		if isNil(in) {
			return nil, fmt.Errorf("%s operator: input %d: %w", op, i, ErrNilInput)
		}
		owned[i] = in
	}
	return &Expression{op: op, inputs: owned}, nil
}

// MustExpression is like NewExpression but panics on error.
func MustExpression(op Operator, inputs ...Symbol) *Expression {
	e, err := NewExpression(op, inputs...)
	if err != nil {
		panic("gobool: " + err.Error())
	}
	return e
}

// Op returns the operator.
func (n *Expression) Op() Operator { return n.op }

// Len returns the number of inputs.
func (n *Expression) Len() int { return len(n.inputs) }

// Input returns the i-th input.
func (n *Expression) Input(i int) Symbol { return n.inputs[i] }

// Inputs returns a copy of the inputs in stored order.
func (n *Expression) Inputs() []Symbol {
	out := make([]Symbol, len(n.inputs))
	copy(out, n.inputs)
	return out
}

// Operand returns the single input of a NOT expression, or nil otherwise.
func (n *Expression) Operand() Symbol {
	if n.op != OpNot {
		return nil
	}
	return n.inputs[0]
}

func (n *Expression) Accept(v Visitor) string { return v.VisitExpression(n) }
func (n *Expression) symbol()                 {}
