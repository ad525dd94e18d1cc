package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// ResultColumn is the alias of the evaluated expression in generated queries.
const ResultColumn = "result"

// bindingsTable is the alias of the derived table holding variable values.
const bindingsTable = "bindings"

// SQLVisitor renders symbols as SQL boolean expressions and builds the
// SELECT statements used to evaluate them on a database.
type SQLVisitor interface {
	nodes.Visitor
	// Select builds a statement returning one row: one column per variable
	// followed by the expression's value, aliased ResultColumn.
	Select(s nodes.Symbol, a nodes.Assignment) (string, []any, error)
	// Dialect returns the engine name: postgres, mysql or sqlite.
	Dialect() string
}

// baseVisitor implements the shared SQL generation logic used by all dialects.
// Dialect-specific visitors embed *baseVisitor and set the outer field to
// themselves, enabling correct virtual dispatch through the Visitor interface.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer nodes.Visitor

	// dialect is the engine name reported by Dialect.
	dialect string

	// quoteIdent quotes a SQL identifier (variable column, alias).
	quoteIdent func(string) string

	// placeholder returns the bind placeholder for a given parameter index.
	// PostgreSQL uses $1, $2; MySQL/SQLite use ?.
	placeholder func(int) string

	// bindCast is appended to each placeholder in the bindings table.
	bindCast string

	// parent is the operator of the expression currently being visited.
	parent nodes.Operator
}

func newBaseVisitor(dialect string, quote func(string) string, placeholder func(int) string) *baseVisitor {
	return &baseVisitor{
		dialect:     dialect,
		quoteIdent:  quote,
		placeholder: placeholder,
		parent:      nodes.OpNone,
	}
}

func (b *baseVisitor) Dialect() string { return b.dialect }

func (b *baseVisitor) VisitConstant(n *nodes.Constant) string {
	if n.Value() {
		return "TRUE"
	}
	return "FALSE"
}

func (b *baseVisitor) VisitVariable(n *nodes.Variable) string {
	return b.quoteIdent(n.Name())
}

func (b *baseVisitor) VisitExpression(n *nodes.Expression) string {
	op := n.Op()
	saved := b.parent
	b.parent = op
	var sb strings.Builder
	if op == nodes.OpNot {
		sb.WriteString("NOT ")
		sb.WriteString(n.Operand().Accept(b.outer))
	} else {
		sep := " AND "
		if op == nodes.OpOr {
			sep = " OR "
		}
		for i := 0; i < n.Len(); i++ {
			if i > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(n.Input(i).Accept(b.outer))
		}
	}
	b.parent = saved
	if needsBrackets(op, saved, PolicyPrecedence) {
		return "(" + sb.String() + ")"
	}
	return sb.String()
}

// expression renders s from the root context.
func (b *baseVisitor) expression(s nodes.Symbol) string {
	b.parent = nodes.OpNone
	return s.Accept(b.outer)
}

func (b *baseVisitor) Select(s nodes.Symbol, a nodes.Assignment) (string, []any, error) {
	names := nodes.Variables(s)
	params := make([]any, len(names))
	for i, name := range names {
		if err := nodes.ValidateName(name); err != nil {
			return "", nil, fmt.Errorf("variable %d: %w", i, err)
		}
		v, ok := a[name]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", nodes.ErrUnboundVariable, name)
		}
		params[i] = v
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	for _, name := range names {
		sb.WriteString(b.quoteIdent(name))
		sb.WriteString(", ")
	}
	sb.WriteString(b.expression(s))
	sb.WriteString(" AS ")
	sb.WriteString(b.quoteIdent(ResultColumn))

	if len(names) > 0 {
		cols := make([]string, len(names))
		for i, name := range names {
			cols[i] = b.placeholder(i+1) + b.bindCast + " AS " + b.quoteIdent(name)
		}
		sb.WriteString(" FROM (SELECT ")
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteString(") AS ")
		sb.WriteString(b.quoteIdent(bindingsTable))
	}
	return sb.String(), params, nil
}

// NewSQLVisitor returns the visitor for engine: postgres, mysql or sqlite.
func NewSQLVisitor(engine string) (SQLVisitor, error) {
	switch engine {
	case "postgres":
		return NewPostgresVisitor(), nil
	case "mysql":
		return NewMySQLVisitor(), nil
	case "sqlite":
		return NewSQLiteVisitor(), nil
	}
	return nil, fmt.Errorf("no SQL dialect for engine %q", engine)
}
