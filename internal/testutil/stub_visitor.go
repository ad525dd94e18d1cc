// Package testutil provides shared test helpers for the gobool project.
package testutil

import (
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// StubVisitor implements nodes.Visitor with a fully bracketed prefix form,
// e.g. AND(A,NOT(B)). Useful for asserting tree shape independently of
// any notation or bracket policy.
type StubVisitor struct{}

var _ nodes.Visitor = StubVisitor{}

func (sv StubVisitor) VisitConstant(n *nodes.Constant) string { return n.Literal() }
func (sv StubVisitor) VisitVariable(n *nodes.Variable) string { return n.Name() }
func (sv StubVisitor) VisitExpression(n *nodes.Expression) string {
	parts := make([]string, n.Len())
	for i := range parts {
		parts[i] = n.Input(i).Accept(sv)
	}
	return n.Op().String() + "(" + strings.Join(parts, ",") + ")"
}

// Shape renders s with StubVisitor.
func Shape(s nodes.Symbol) string {
	return s.Accept(StubVisitor{})
}
