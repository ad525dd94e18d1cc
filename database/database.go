// Package database evaluates symbol trees on a SQL engine. It turns an
// expression plus variable bindings into a single SELECT via the dialect
// visitors and runs it over database/sql.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/visitors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var driverName = map[string]string{
	"postgres": "pgx",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

// MaxRows caps the rows Query displays.
const MaxRows = 1000

// ErrNoRows is returned when an evaluation query yields no result row.
var ErrNoRows = errors.New("evaluation returned no rows")

// Engines returns the supported engine names.
func Engines() []string {
	return []string{"mysql", "postgres", "sqlite"}
}

// IsValidEngine reports whether engine has a registered driver.
func IsValidEngine(engine string) bool {
	_, ok := driverName[engine]
	return ok
}

// Conn is an open database connection bound to one SQL dialect.
// It is safe for concurrent use.
type Conn struct {
	db     *sql.DB
	dsn    string
	engine string
}

// Open connects to dsn with the driver for engine and pings it.
func Open(ctx context.Context, engine, dsn string) (*Conn, error) {
	driver, ok := driverName[engine]
	if !ok {
		return nil, fmt.Errorf("no driver for engine %q", engine)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Conn{db: db, dsn: dsn, engine: engine}, nil
}

// Close closes the underlying pool.
func (c *Conn) Close() error {
	return c.db.Close()
}

// Engine returns the engine name.
func (c *Conn) Engine() string { return c.engine }

// DSN returns the connection string with any password masked.
func (c *Conn) DSN() string { return SanitizeDSN(c.dsn) }

// statement builds the evaluation SELECT with a fresh dialect visitor;
// visitors carry per-walk state and are not shared between goroutines.
func (c *Conn) statement(s nodes.Symbol, a nodes.Assignment) (string, []any, error) {
	v, err := visitors.NewSQLVisitor(c.engine)
	if err != nil {
		return "", nil, err
	}
	return v.Select(s, a)
}

// Evaluate computes the truth value of s under a on the database.
func (c *Conn) Evaluate(ctx context.Context, s nodes.Symbol, a nodes.Assignment) (bool, error) {
	columns, rows, err := c.query(ctx, s, a)
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, ErrNoRows
	}
	raw := rows[0][len(columns)-1]
	v, err := ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("result: %w", err)
	}
	return v, nil
}

// Table evaluates s under a and returns the bindings and result formatted
// as a text table.
func (c *Conn) Table(ctx context.Context, s nodes.Symbol, a nodes.Assignment) (string, error) {
	columns, rows, err := c.query(ctx, s, a)
	if err != nil {
		return "", err
	}
	return FormatTable(columns, rows), nil
}

// Query runs raw SQL and formats up to MaxRows result rows as a table.
func (c *Conn) Query(ctx context.Context, sqlStr string, params ...any) (string, error) {
	rows, err := c.db.QueryContext(ctx, sqlStr, params...)
	if err != nil {
		return "", fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, data, truncated, err := scanRows(rows, MaxRows)
	if err != nil {
		return "", err
	}
	result := FormatTable(columns, data)
	if truncated {
		result += fmt.Sprintf("(truncated at %d rows)\n", MaxRows)
	}
	return result, nil
}

func (c *Conn) query(ctx context.Context, s nodes.Symbol, a nodes.Assignment) ([]string, [][]string, error) {
	sqlStr, params, err := c.statement(s, a)
	if err != nil {
		return nil, nil, err
	}
	rows, err := c.db.QueryContext(ctx, sqlStr, params...)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()
	columns, data, _, err := scanRows(rows, 1)
	return columns, data, err
}

// scanRows reads at most limit rows as strings, NULL for SQL nulls.
func scanRows(rows *sql.Rows, limit int) (columns []string, data [][]string, truncated bool, err error) {
	columns, err = rows.Columns()
	if err != nil {
		return nil, nil, false, fmt.Errorf("columns: %w", err)
	}

	for rows.Next() {
		if len(data) >= limit {
			truncated = true
			break
		}
		vals := make([]*sql.NullString, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			vals[i] = &sql.NullString{}
			ptrs[i] = vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, false, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(columns))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, false, fmt.Errorf("rows: %w", err)
	}
	return columns, data, truncated, nil
}

// ParseBool interprets the textual forms engines use for booleans:
// 1/0, t/f, true/false.
func ParseBool(raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return false, fmt.Errorf("not a boolean: %q", raw)
	}
	return v, nil
}

// FormatTable renders columns and rows as a bordered text table.
func FormatTable(columns []string, rows [][]string) string {
	if len(columns) == 0 {
		return "(0 rows)\n"
	}

	// Calculate column widths.
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	sep := buildSeparator(widths)

	b.WriteString(sep)
	b.WriteByte('|')
	for i, c := range columns {
		fmt.Fprintf(&b, " %-*s |", widths[i], c)
	}
	b.WriteByte('\n')
	b.WriteString(sep)

	for _, row := range rows {
		b.WriteByte('|')
		for i, cell := range row {
			fmt.Fprintf(&b, " %-*s |", widths[i], cell)
		}
		b.WriteByte('\n')
	}

	b.WriteString(sep)

	n := len(rows)
	if n == 1 {
		b.WriteString("(1 row)\n")
	} else {
		fmt.Fprintf(&b, "(%d rows)\n", n)
	}

	return b.String()
}

func buildSeparator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

// SanitizeDSN masks the password in a postgres URL or MySQL DSN.
func SanitizeDSN(dsn string) string {
	// Try parsing as URL (postgres style).
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuild manually to avoid percent-encoding the mask.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// Try MySQL-style DSN: user:pass@tcp(host)/db
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}

	return dsn
}
