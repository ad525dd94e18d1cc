package nodes

import "sort"

// Walk visits s and every descendant in pre-order, passing each symbol's
// depth (the root is 0). If fn returns false the children of that symbol
// are skipped.
func Walk(s Symbol, fn func(s Symbol, depth int) bool) {
	walk(s, 0, fn)
}

func walk(s Symbol, depth int, fn func(Symbol, int) bool) {
	if !fn(s, depth) {
		return
	}
	if e, ok := s.(*Expression); ok {
		for _, in := range e.inputs {
			walk(in, depth+1, fn)
		}
	}
}

// Size returns the number of symbols in the tree rooted at s.
func Size(s Symbol) int {
	n := 0
	Walk(s, func(Symbol, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the height of the tree rooted at s. A leaf has depth 0.
func Depth(s Symbol) int {
	deepest := 0
	Walk(s, func(_ Symbol, d int) bool {
		if d > deepest {
			deepest = d
		}
		return true
	})
	return deepest
}

// Variables returns the distinct variable names in s, sorted.
func Variables(s Symbol) []string {
	seen := make(map[string]bool)
	Walk(s, func(n Symbol, _ int) bool {
		if v, ok := n.(*Variable); ok {
			seen[v.name] = true
		}
		return true
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether a and b are structurally identical: same variants,
// same values or names, same operators and inputs in the same order.
func Equal(a, b Symbol) bool {
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.value == y.value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.name == y.name
	case *Expression:
		y, ok := b.(*Expression)
		if !ok || x.op != y.op || len(x.inputs) != len(y.inputs) {
			return false
		}
		for i := range x.inputs {
			if !Equal(x.inputs[i], y.inputs[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of s that shares no nodes with it.
func Clone(s Symbol) Symbol {
	switch n := s.(type) {
	case *Constant:
		return NewConstant(n.value)
	case *Variable:
		return NewVariable(n.name)
	case *Expression:
		inputs := make([]Symbol, len(n.inputs))
		for i, in := range n.inputs {
			inputs[i] = Clone(in)
		}
		return &Expression{op: n.op, inputs: inputs}
	}
	return nil
}
