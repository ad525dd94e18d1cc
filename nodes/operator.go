package nodes

// Operator identifies the logical connective of an Expression.
// Operators declared later bind tighter: OR < AND < NOT.
type Operator int

const (
	// OpNone marks the absence of an operator, e.g. the parent context of a
	// root expression. It can never be used to construct an Expression.
	OpNone Operator = iota - 1
	OpOr
	OpAnd
	OpNot
)

// Valid reports whether op is one of NOT, AND or OR.
func (op Operator) Valid() bool {
	switch op {
	case OpOr, OpAnd, OpNot:
		return true
	}
	return false
}

// Precedence returns the binding strength of op. OpNone and unknown
// operators return -1, lower than every real operator.
func (op Operator) Precedence() int {
	if !op.Valid() {
		return -1
	}
	return int(op)
}

// String returns the display name of op.
func (op Operator) String() string {
	switch op {
	case OpOr:
		return "OR"
	case OpAnd:
		return "AND"
	case OpNot:
		return "NOT"
	default:
		return "NONE"
	}
}

// requiredArity describes the arity class for op, used in error messages.
func (op Operator) requiredArity() string {
	if op == OpNot {
		return "exactly 1"
	}
	return "at least 2"
}

// acceptsArity reports whether n inputs satisfy op's arity.
func (op Operator) acceptsArity(n int) bool {
	if op == OpNot {
		return n == 1
	}
	return n >= 2
}

// Dual returns the De Morgan dual of a binary operator (AND <-> OR).
// NOT and OpNone are returned unchanged.
func (op Operator) Dual() Operator {
	switch op {
	case OpAnd:
		return OpOr
	case OpOr:
		return OpAnd
	default:
		return op
	}
}
