// Package visitors renders symbol trees: human-readable notations, SQL
// dialects for database evaluation, Graphviz DOT and indented outlines.
package visitors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// ErrDepthExceeded is matched by every *DepthExceededError.
var ErrDepthExceeded = errors.New("render depth exceeded")

// DepthExceededError reports a tree deeper than the renderer's limit.
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("render depth exceeded: limit %d", e.Limit)
}

func (e *DepthExceededError) Is(target error) bool { return target == ErrDepthExceeded }

// Policy selects how brackets are placed around nested expressions.
type Policy int

const (
	// PolicyPrecedence wraps an expression iff its precedence is not
	// strictly greater than its parent's. A NOT directly under a NOT is
	// never wrapped.
	PolicyPrecedence Policy = iota
	// PolicyExplicit additionally wraps an AND or OR nested under a
	// different AND or OR, e.g. A || (B && C).
	PolicyExplicit
)

func (p Policy) String() string {
	switch p {
	case PolicyPrecedence:
		return "precedence"
	case PolicyExplicit:
		return "explicit"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy resolves a policy by name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "precedence", "minimal", "":
		return PolicyPrecedence, nil
	case "explicit":
		return PolicyExplicit, nil
	}
	return PolicyPrecedence, fmt.Errorf("unknown bracket policy %q (want precedence or explicit)", name)
}

// needsBrackets returns true if an expression with operator op must be
// wrapped when it sits directly under parent.
func needsBrackets(op, parent nodes.Operator, policy Policy) bool {
	if parent == nodes.OpNone {
		return false
	}
	if op == nodes.OpNot && parent == nodes.OpNot {
		return false
	}
	if op.Precedence() <= parent.Precedence() {
		return true
	}
	return policy == PolicyExplicit && op != nodes.OpNot && parent != nodes.OpNot
}

// Option configures a Renderer at construction time.
type Option func(*Renderer)

// WithNotation sets the token set. The default is PresetDefault.
func WithNotation(n Notation) Option {
	return func(r *Renderer) {
		r.notation = n
	}
}

// WithPolicy sets the bracket policy. The default is PolicyPrecedence.
func WithPolicy(p Policy) Option {
	return func(r *Renderer) {
		r.policy = p
	}
}

// WithMaxDepth bounds the depth of trees Render accepts. Zero or a negative
// value disables the check.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) {
		r.maxDepth = depth
	}
}

// Renderer turns a symbol tree into a string under a notation, placing the
// minimal brackets its policy requires. A Renderer is immutable after
// construction and safe for concurrent use.
type Renderer struct {
	notation Notation
	policy   Policy
	maxDepth int
}

// NewRenderer creates a Renderer with the given options applied.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{notation: PresetDefault.Notation()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Notation returns the renderer's token set.
func (r *Renderer) Notation() Notation { return r.notation }

// Policy returns the renderer's bracket policy.
func (r *Renderer) Policy() Policy { return r.policy }

// Render renders s. It fails only when a max depth is configured and s is
// deeper than it.
func (r *Renderer) Render(s nodes.Symbol) (string, error) {
	var sb strings.Builder
	if err := r.render(&sb, s, nodes.OpNone, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) render(sb *strings.Builder, s nodes.Symbol, parent nodes.Operator, depth int) error {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return &DepthExceededError{Limit: r.maxDepth}
	}
	switch n := s.(type) {
	case *nodes.Constant:
		sb.WriteString(n.Literal())
	case *nodes.Variable:
		sb.WriteString(n.Name())
	case *nodes.Expression:
		return r.renderExpression(sb, n, parent, depth)
	}
	return nil
}

func (r *Renderer) renderExpression(sb *strings.Builder, n *nodes.Expression, parent nodes.Operator, depth int) error {
	op := n.Op()
	wrap := needsBrackets(op, parent, r.policy)
	if wrap {
		sb.WriteString(r.notation.Open)
	}

	if op == nodes.OpNot {
		sb.WriteString(r.notation.Not)
		if r.notation.encloseNot() {
			sb.WriteString(r.notation.NotOpen)
			if err := r.render(sb, n.Operand(), nodes.OpNone, depth+1); err != nil {
				return err
			}
			sb.WriteString(r.notation.NotClose)
		} else if err := r.render(sb, n.Operand(), op, depth+1); err != nil {
			return err
		}
	} else {
		sep := r.notation.infix(op)
		for i := 0; i < n.Len(); i++ {
			if i > 0 {
				sb.WriteString(sep)
			}
			if err := r.render(sb, n.Input(i), op, depth+1); err != nil {
				return err
			}
		}
	}

	if wrap {
		sb.WriteString(r.notation.Close)
	}
	return nil
}

// Render renders s under notation n with PolicyPrecedence. It never fails.
func Render(s nodes.Symbol, n Notation) string {
	out, _ := NewRenderer(WithNotation(n)).Render(s)
	return out
}

// RenderDefault renders s under PresetDefault.
func RenderDefault(s nodes.Symbol) string {
	return Render(s, PresetDefault.Notation())
}
