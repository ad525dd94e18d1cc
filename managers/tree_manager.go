package managers

import (
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/plugins"
)

// treeManager is the shared base for manager types. It holds the
// transformer pipeline applied to a tree before output.
type treeManager struct {
	transformers []plugins.Transformer
}

// addTransformer appends a transformer plugin to the pipeline.
func (tm *treeManager) addTransformer(t plugins.Transformer) {
	tm.transformers = append(tm.transformers, t)
}

// Transformers returns the registered transformer pipeline.
func (tm *treeManager) Transformers() []plugins.Transformer {
	return tm.transformers
}

// transform runs the pipeline over s.
func (tm *treeManager) transform(s nodes.Symbol) (nodes.Symbol, error) {
	return plugins.Chain(s, tm.transformers...)
}
