package visitors

import "github.com/bawdo/gobool/internal/quoting"

// SQLiteVisitor generates SQLite-dialect SQL.
// Identifiers are quoted with double quotes: "A" (ANSI SQL).
type SQLiteVisitor struct {
	*baseVisitor
}

var _ SQLVisitor = (*SQLiteVisitor)(nil)

// NewSQLiteVisitor creates a SQLiteVisitor ready for use.
func NewSQLiteVisitor() *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = newBaseVisitor("sqlite", quoting.DoubleQuote, func(_ int) string { return "?" })
	v.outer = v
	return v
}
