// Package simplify provides a Transformer that replaces a tree with its
// simplest form under the rewrite laws.
//
//	m := managers.NewStackManager()
//	m.Use(substitute.New(substitute.WithBinding("A", true)), simplify.New())
//	// A && B  becomes  B
package simplify

import (
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/plugins"
	"github.com/bawdo/gobool/rewrite"
)

// Simplify is a Transformer running a rewrite.Simplifier.
type Simplify struct {
	plugins.BaseTransformer
	simplifier *rewrite.Simplifier
}

// New creates a Simplify transformer; opts configure the simplifier.
func New(opts ...rewrite.Option) *Simplify {
	return &Simplify{simplifier: rewrite.New(opts...)}
}

// Transform returns the simplified form of s.
func (p *Simplify) Transform(s nodes.Symbol) (nodes.Symbol, error) {
	return p.simplifier.Simplified(s)
}
