package rewrite

import (
	"slices"

	"github.com/bawdo/gobool/nodes"
)

// negated returns the operand of s if s is a NOT expression.
func negated(s nodes.Symbol) (nodes.Symbol, bool) {
	e, ok := s.(*nodes.Expression)
	if !ok || e.Op() != nodes.OpNot {
		return nil, false
	}
	return e.Operand(), true
}

func constant(s nodes.Symbol) (*nodes.Constant, bool) {
	c, ok := s.(*nodes.Constant)
	return c, ok
}

func involution(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() != nodes.OpNot {
		return nil, "", false
	}
	inner, ok := negated(e.Operand())
	if !ok {
		return nil, "", false
	}
	return inner, "Involution: !!x = x", true
}

func constantNegation(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() != nodes.OpNot {
		return nil, "", false
	}
	c, ok := constant(e.Operand())
	if !ok {
		return nil, "", false
	}
	if c.Value() {
		return nodes.False(), "Constant negation: !1 = 0", true
	}
	return nodes.True(), "Constant negation: !0 = 1", true
}

func deMorgan(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() != nodes.OpNot {
		return nil, "", false
	}
	inner, ok := e.Operand().(*nodes.Expression)
	if !ok || inner.Op() == nodes.OpNot {
		return nil, "", false
	}
	terms := make([]nodes.Symbol, inner.Len())
	for i := range terms {
		terms[i] = nodes.MustExpression(nodes.OpNot, inner.Input(i))
	}
	why := "De Morgan: !(xy) = !x + !y"
	if inner.Op() == nodes.OpOr {
		why = "De Morgan: !(x + y) = !x!y"
	}
	return nodes.MustExpression(inner.Op().Dual(), terms...), why, true
}

func associativity(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	var flat []nodes.Symbol
	nested := false
	for _, in := range e.Inputs() {
		if sub, ok := in.(*nodes.Expression); ok && sub.Op() == e.Op() {
			flat = append(flat, sub.Inputs()...)
			nested = true
			continue
		}
		flat = append(flat, in)
	}
	if !nested {
		return nil, "", false
	}
	why := "Associativity: x(yz) = xyz"
	if e.Op() == nodes.OpOr {
		why = "Associativity: x + (y + z) = x + y + z"
	}
	return nodes.MustExpression(e.Op(), flat...), why, true
}

// annulment: x0 = 0 and x + 1 = 1.
func annulment(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	absorbing := e.Op() == nodes.OpOr
	for _, in := range e.Inputs() {
		if c, ok := constant(in); ok && c.Value() == absorbing {
			if absorbing {
				return nodes.True(), "Annulment: x + 1 = 1", true
			}
			return nodes.False(), "Annulment: x0 = 0", true
		}
	}
	return nil, "", false
}

// identity drops neutral constants: x1 = x and x + 0 = x.
func identity(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	neutral := e.Op() == nodes.OpAnd
	kept := slices.DeleteFunc(e.Inputs(), func(s nodes.Symbol) bool {
		c, ok := constant(s)
		return ok && c.Value() == neutral
	})
	if len(kept) == e.Len() {
		return nil, "", false
	}
	why := "Identity: x1 = x"
	if e.Op() == nodes.OpOr {
		why = "Identity: x + 0 = x"
	}
	return join(e.Op(), kept), why, true
}

func idempotence(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	var kept []nodes.Symbol
	for _, in := range e.Inputs() {
		if !slices.ContainsFunc(kept, func(k nodes.Symbol) bool { return nodes.Equal(k, in) }) {
			kept = append(kept, in)
		}
	}
	if len(kept) == e.Len() {
		return nil, "", false
	}
	why := "Idempotence: xx = x"
	if e.Op() == nodes.OpOr {
		why = "Idempotence: x + x = x"
	}
	return join(e.Op(), kept), why, true
}

// complement: x!x = 0 and x + !x = 1.
func complement(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	inputs := e.Inputs()
	for _, in := range inputs {
		inner, ok := negated(in)
		if !ok {
			continue
		}
		if slices.ContainsFunc(inputs, func(s nodes.Symbol) bool { return nodes.Equal(s, inner) }) {
			if e.Op() == nodes.OpOr {
				return nodes.True(), "Complement: x + !x = 1", true
			}
			return nodes.False(), "Complement: x!x = 0", true
		}
	}
	return nil, "", false
}

// absorption: x(x + y) = x and x + xy = x.
func absorption(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	inputs := e.Inputs()
	absorbed := func(i int) bool {
		sub, ok := inputs[i].(*nodes.Expression)
		if !ok || sub.Op() != e.Op().Dual() {
			return false
		}
		for j, other := range inputs {
			if j == i {
				continue
			}
			for _, term := range sub.Inputs() {
				if nodes.Equal(term, other) {
					return true
				}
			}
		}
		return false
	}

	var kept []nodes.Symbol
	for i := range inputs {
		if !absorbed(i) {
			kept = append(kept, inputs[i])
		}
	}
	if len(kept) == len(inputs) {
		return nil, "", false
	}
	why := "Absorption: x(x + y) = x"
	if e.Op() == nodes.OpOr {
		why = "Absorption: x + xy = x"
	}
	return join(e.Op(), kept), why, true
}

func commutativity(e *nodes.Expression) (nodes.Symbol, string, bool) {
	if e.Op() == nodes.OpNot {
		return nil, "", false
	}
	inputs := e.Inputs()
	if slices.IsSortedFunc(inputs, Compare) {
		return nil, "", false
	}
	slices.SortStableFunc(inputs, Compare)
	return nodes.MustExpression(e.Op(), inputs...), "Commutativity: reorder terms", true
}
