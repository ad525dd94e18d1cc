package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// maxTruthVars bounds truth tables to 4096 rows.
const maxTruthVars = 12

// literal formats a truth value the way constants render.
func literal(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// parseBool accepts 1/0, true/false, t/f, yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a truth value: %q", s)
}

// parseCount parses an optional operand count, returning def when empty.
func parseCount(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	return n, nil
}

// parseAssignment parses "A=1 B=0" or "A=1, B=0" into an Assignment.
func parseAssignment(s string) (nodes.Assignment, error) {
	a := nodes.Assignment{}
	for _, pair := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }) {
		name, val, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding %q (want name=0|1)", pair)
		}
		v, err := parseBool(val)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
		a[name] = v
	}
	return a, nil
}

// newLogger builds the diagnostic logger. level is a slog level name
// (debug, info, warn, error); an empty or unknown level means warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelWarn
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
