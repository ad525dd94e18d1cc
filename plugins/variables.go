package plugins

import "github.com/bawdo/gobool/nodes"

// MapVariables returns s with every variable v replaced by fn(v). fn
// returns nil to keep a variable. Subtrees without replacements are shared
// with s rather than copied.
func MapVariables(s nodes.Symbol, fn func(v *nodes.Variable) nodes.Symbol) nodes.Symbol {
	switch n := s.(type) {
	case *nodes.Variable:
		if r := fn(n); r != nil {
			return r
		}
		return n
	case *nodes.Expression:
		inputs := n.Inputs()
		changed := false
		for i, in := range inputs {
			out := MapVariables(in, fn)
			if out != in {
				inputs[i] = out
				changed = true
			}
		}
		if !changed {
			return n
		}
		return nodes.MustExpression(n.Op(), inputs...)
	}
	return s
}
