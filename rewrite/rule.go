// Package rewrite simplifies symbol trees by repeatedly applying the laws
// of Boolean algebra, recording each rewrite as a Step.
package rewrite

import "github.com/bawdo/gobool/nodes"

// Rule is one rewrite law. Apply inspects a single expression node (its
// inputs are already in their final form) and, if the law matches,
// returns the replacement and a justification for the trace.
type Rule interface {
	Law() string
	Apply(e *nodes.Expression) (result nodes.Symbol, justification string, ok bool)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	Name string
	Fn   func(e *nodes.Expression) (nodes.Symbol, string, bool)
}

func (r RuleFunc) Law() string { return r.Name }

func (r RuleFunc) Apply(e *nodes.Expression) (nodes.Symbol, string, bool) {
	return r.Fn(e)
}

// DefaultRules returns the standard laws in priority order. Rules earlier
// in the list win when several match the same node.
func DefaultRules() []Rule {
	return []Rule{
		RuleFunc{"involution", involution},
		RuleFunc{"constant negation", constantNegation},
		RuleFunc{"de morgan", deMorgan},
		RuleFunc{"associativity", associativity},
		RuleFunc{"annulment", annulment},
		RuleFunc{"identity", identity},
		RuleFunc{"idempotence", idempotence},
		RuleFunc{"complement", complement},
		RuleFunc{"absorption", absorption},
		RuleFunc{"commutativity", commutativity},
	}
}

// join builds op over inputs, collapsing degenerate arities: a single
// input stands for itself and no inputs is op's identity element.
func join(op nodes.Operator, inputs []nodes.Symbol) nodes.Symbol {
	switch len(inputs) {
	case 0:
		return nodes.NewConstant(op == nodes.OpAnd)
	case 1:
		return inputs[0]
	}
	return nodes.MustExpression(op, inputs...)
}
