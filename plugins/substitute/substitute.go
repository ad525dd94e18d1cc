// Package substitute provides a Transformer that binds variables to
// constants, leaving every other variable free. Combined with the
// simplify plugin this performs partial evaluation.
//
// # Basic usage
//
//	sub := substitute.New(substitute.WithBinding("A", true))
//	m := managers.NewStackManager()
//	m.Use(sub)
//	// A && B  becomes  1 && B
//
// # Renaming
//
// Variables can also be renamed instead of bound:
//
//	sub := substitute.New(substitute.WithRename("A", "X"))
//	// A || B  becomes  X || B
//
// # REPL usage
//
//	gobool> plugin substitute A=1 B=0
//	gobool> plugin substitute A=X
//	gobool> plugin off substitute
//	gobool> plugins
package substitute

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/plugins"
)

// Substitute is a Transformer that replaces bound variables with
// constants and renamed variables with new ones.
type Substitute struct {
	plugins.BaseTransformer
	Bindings nodes.Assignment
	Renames  map[string]string // variable name → new name
}

// Option configures a Substitute transformer.
type Option func(*Substitute)

// WithBinding binds name to value.
func WithBinding(name string, value bool) Option {
	return func(s *Substitute) {
		if s.Bindings == nil {
			s.Bindings = nodes.Assignment{}
		}
		s.Bindings[name] = value
	}
}

// WithBindings binds every name in a.
func WithBindings(a nodes.Assignment) Option {
	return func(s *Substitute) {
		for name, v := range a {
			WithBinding(name, v)(s)
		}
	}
}

// WithRename renames from to to. A binding for from takes precedence.
func WithRename(from, to string) Option {
	return func(s *Substitute) {
		if s.Renames == nil {
			s.Renames = make(map[string]string)
		}
		s.Renames[from] = to
	}
}

// New creates a Substitute transformer with the given options.
func New(opts ...Option) *Substitute {
	s := &Substitute{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Transform returns s with bound and renamed variables replaced.
func (sub *Substitute) Transform(s nodes.Symbol) (nodes.Symbol, error) {
	for from, to := range sub.Renames {
		if err := nodes.ValidateName(to); err != nil {
			return nil, fmt.Errorf("rename %q: %w", from, err)
		}
	}
	return plugins.MapVariables(s, func(v *nodes.Variable) nodes.Symbol {
		if b, ok := sub.Bindings[v.Name()]; ok {
			return nodes.NewConstant(b)
		}
		if to, ok := sub.Renames[v.Name()]; ok {
			return nodes.NewVariable(to)
		}
		return nil
	}), nil
}

// String describes the bindings and renames in name order, e.g.
// "A=1, B=0, C→X".
func (sub *Substitute) String() string {
	var parts []string
	for name, v := range sub.Bindings {
		lit := "0"
		if v {
			lit = "1"
		}
		parts = append(parts, name+"="+lit)
	}
	for from, to := range sub.Renames {
		if _, bound := sub.Bindings[from]; !bound {
			parts = append(parts, from+"→"+to)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
