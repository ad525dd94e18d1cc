// Package nodes defines the symbol tree used to represent boolean expressions.
package nodes

// Symbol is the interface that all tree nodes implement. The set of
// implementations is closed: *Constant, *Variable and *Expression.
type Symbol interface {
	Accept(visitor Visitor) string
	symbol()
}

// Visitor defines the interface for walking the tree and producing output.
// Concrete visitors (notation renderer, SQL dialects, DOT) implement this
// interface.
type Visitor interface {
	VisitConstant(node *Constant) string
	VisitVariable(node *Variable) string
	VisitExpression(node *Expression) string
}

// IsLeaf reports whether s is a Constant or a Variable.
func IsLeaf(s Symbol) bool {
	switch s.(type) {
	case *Constant, *Variable:
		return true
	}
	return false
}

// isNil reports whether s is a nil interface or a typed nil pointer.
func isNil(s Symbol) bool {
	switch n := s.(type) {
	case nil:
		return true
	case *Constant:
		return n == nil
	case *Variable:
		return n == nil
	case *Expression:
		return n == nil
	}
	return false
}
