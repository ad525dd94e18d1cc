package rewrite

import (
	"cmp"
	"strings"

	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/visitors"
)

// Term ranks: constants first, then literals, then compound terms.
const (
	rankConstant = iota
	rankLiteral
	rankCompound
)

type sortKey struct {
	rank    int
	name    string
	negated bool
}

func keyOf(s nodes.Symbol) sortKey {
	switch n := s.(type) {
	case *nodes.Constant:
		return sortKey{rank: rankConstant, name: n.Literal()}
	case *nodes.Variable:
		return sortKey{rank: rankLiteral, name: n.Name()}
	}
	if inner, ok := negated(s); ok {
		if v, ok := inner.(*nodes.Variable); ok {
			return sortKey{rank: rankLiteral, name: v.Name(), negated: true}
		}
	}
	return sortKey{rank: rankCompound, name: visitors.RenderDefault(s)}
}

// Compare orders terms canonically: constants, then variables by name with
// each negated variable right after its positive form, then compound terms
// by their default rendering.
func Compare(a, b nodes.Symbol) int {
	ka, kb := keyOf(a), keyOf(b)
	if c := cmp.Compare(ka.rank, kb.rank); c != 0 {
		return c
	}
	if c := strings.Compare(ka.name, kb.name); c != 0 {
		return c
	}
	switch {
	case ka.negated == kb.negated:
		return 0
	case ka.negated:
		return 1
	}
	return -1
}
