// Package plugins defines the Transformer interface for tree middleware.
// Managers run their registered transformers over a tree before handing it
// to a renderer, evaluator or SQL visitor.
package plugins

import "github.com/bawdo/gobool/nodes"

// Transformer is the interface that tree transformation plugins implement.
// Transformers must not modify their input; they return a new tree, or the
// input itself when nothing changes.
type Transformer interface {
	Transform(s nodes.Symbol) (nodes.Symbol, error)
}

// BaseTransformer is a no-op Transformer. Plugins embed it when they only
// need to react to some trees.
type BaseTransformer struct{}

func (BaseTransformer) Transform(s nodes.Symbol) (nodes.Symbol, error) {
	return s, nil
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(s nodes.Symbol) (nodes.Symbol, error)

func (f TransformerFunc) Transform(s nodes.Symbol) (nodes.Symbol, error) {
	return f(s)
}

// Chain applies transformers in order, stopping at the first error.
func Chain(s nodes.Symbol, ts ...Transformer) (nodes.Symbol, error) {
	var err error
	for _, t := range ts {
		s, err = t.Transform(s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}
