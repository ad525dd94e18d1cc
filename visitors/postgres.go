package visitors

import (
	"fmt"

	"github.com/bawdo/gobool/internal/quoting"
)

// PostgresVisitor generates PostgreSQL-dialect SQL.
// Identifiers are quoted with double quotes: "A".
type PostgresVisitor struct {
	*baseVisitor
}

var _ SQLVisitor = (*PostgresVisitor)(nil)

// NewPostgresVisitor creates a PostgresVisitor ready for use.
func NewPostgresVisitor() *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = newBaseVisitor("postgres", quoting.DoubleQuote, func(i int) string { return fmt.Sprintf("$%d", i) })
	// Untyped parameters in a derived table would default to text.
	v.bindCast = "::boolean"
	v.outer = v
	return v
}
