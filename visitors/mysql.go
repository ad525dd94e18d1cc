package visitors

import (
	"github.com/bawdo/gobool/internal/quoting"
	"github.com/bawdo/gobool/nodes"
)

// MySQLVisitor generates MySQL-dialect SQL.
// Identifiers are quoted with backticks: `A`.
type MySQLVisitor struct {
	*baseVisitor
}

var _ SQLVisitor = (*MySQLVisitor)(nil)

// NewMySQLVisitor creates a MySQLVisitor ready for use.
func NewMySQLVisitor() *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = newBaseVisitor("mysql", quoting.Backtick, func(_ int) string { return "?" })
	v.outer = v
	return v
}

// VisitConstant renders literals as 1/0; MySQL has no distinct boolean type
// and TRUE/FALSE are aliases for them.
func (v *MySQLVisitor) VisitConstant(n *nodes.Constant) string {
	return n.Literal()
}
