// Package managers provides high-level APIs for building symbol trees.
package managers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/plugins"
	"github.com/bawdo/gobool/visitors"
)

// ErrStackUnderflow is matched by every *StackUnderflowError.
var ErrStackUnderflow = errors.New("stack underflow")

// StackUnderflowError reports an operation needing more symbols than the
// stack holds.
type StackUnderflowError struct {
	Operation string
	Need      int
	Have      int
}

func (e *StackUnderflowError) Error() string {
	if e.Have == 0 {
		return e.Operation + ": stack is empty"
	}
	return fmt.Sprintf("%s: needs %d symbols, stack has %d", e.Operation, e.Need, e.Have)
}

func (e *StackUnderflowError) Is(target error) bool { return target == ErrStackUnderflow }

// StackManager builds trees in reverse Polish order: leaves are pushed and
// operators replace the top n symbols with one expression over them, the
// deepest of them becoming the first input.
//
//	m := NewStackManager()
//	m.Variable("A")
//	m.Variable("B")
//	m.Apply(nodes.OpAnd, 2) // stack: A && B
//
// Registered transformers run on the top of the stack whenever a result is
// taken with Result, Render or ToSQL; the stack itself keeps the trees as
// built.
type StackManager struct {
	treeManager
	stack []nodes.Symbol
}

// NewStackManager creates an empty StackManager.
func NewStackManager() *StackManager {
	return &StackManager{}
}

// Use registers transformer plugins to run before output.
func (m *StackManager) Use(ts ...plugins.Transformer) *StackManager {
	for _, t := range ts {
		m.addTransformer(t)
	}
	return m
}

// ClearTransformers removes every registered transformer.
func (m *StackManager) ClearTransformers() {
	m.transformers = nil
}

// Push pushes any symbol.
func (m *StackManager) Push(s nodes.Symbol) error {
	if s == nil {
		return nodes.ErrNilInput
	}
	m.stack = append(m.stack, s)
	return nil
}

// Variable pushes a variable. Blank names are rejected.
func (m *StackManager) Variable(name string) error {
	if err := nodes.ValidateName(name); err != nil {
		return err
	}
	m.stack = append(m.stack, nodes.NewVariable(name))
	return nil
}

// Constant pushes a constant.
func (m *StackManager) Constant(value bool) {
	m.stack = append(m.stack, nodes.NewConstant(value))
}

// Apply pops the top n symbols and pushes op over them. For NOT, n must
// be 1. On error the stack is unchanged.
func (m *StackManager) Apply(op nodes.Operator, n int) error {
	if n > len(m.stack) {
		return &StackUnderflowError{Operation: strings.ToLower(op.String()), Need: n, Have: len(m.stack)}
	}
	if n < 0 {
		n = 0
	}
	start := len(m.stack) - n
	e, err := nodes.NewExpression(op, m.stack[start:]...)
	if err != nil {
		return err
	}
	m.stack = append(m.stack[:start], e)
	return nil
}

// Not negates the top symbol.
func (m *StackManager) Not() error { return m.Apply(nodes.OpNot, 1) }

// And combines the top n symbols with AND.
func (m *StackManager) And(n int) error { return m.Apply(nodes.OpAnd, n) }

// Or combines the top n symbols with OR.
func (m *StackManager) Or(n int) error { return m.Apply(nodes.OpOr, n) }

// Pop removes and returns the top symbol.
func (m *StackManager) Pop() (nodes.Symbol, error) {
	top, err := m.top("pop")
	if err != nil {
		return nil, err
	}
	m.stack = m.stack[:len(m.stack)-1]
	return top, nil
}

// Peek returns the top symbol without removing it.
func (m *StackManager) Peek() (nodes.Symbol, error) {
	return m.top("peek")
}

func (m *StackManager) top(operation string) (nodes.Symbol, error) {
	if len(m.stack) == 0 {
		return nil, &StackUnderflowError{Operation: operation, Need: 1}
	}
	return m.stack[len(m.stack)-1], nil
}

// Dup pushes the top symbol again. Trees are immutable, so both entries
// share it.
func (m *StackManager) Dup() error {
	top, err := m.top("dup")
	if err != nil {
		return err
	}
	m.stack = append(m.stack, top)
	return nil
}

// Swap exchanges the top two symbols.
func (m *StackManager) Swap() error {
	n := len(m.stack)
	if n < 2 {
		return &StackUnderflowError{Operation: "swap", Need: 2, Have: n}
	}
	m.stack[n-1], m.stack[n-2] = m.stack[n-2], m.stack[n-1]
	return nil
}

// Clear empties the stack. Transformers stay registered.
func (m *StackManager) Clear() {
	m.stack = nil
}

// Len returns the stack size.
func (m *StackManager) Len() int { return len(m.stack) }

// Items returns a copy of the stack, bottom first.
func (m *StackManager) Items() []nodes.Symbol {
	out := make([]nodes.Symbol, len(m.stack))
	copy(out, m.stack)
	return out
}

// Result returns the top symbol after the transformer pipeline.
func (m *StackManager) Result() (nodes.Symbol, error) {
	top, err := m.top("result")
	if err != nil {
		return nil, err
	}
	return m.transform(top)
}

// Render renders Result with r.
func (m *StackManager) Render(r *visitors.Renderer) (string, error) {
	s, err := m.Result()
	if err != nil {
		return "", err
	}
	return r.Render(s)
}

// ToSQL builds the evaluation statement for Result under a.
func (m *StackManager) ToSQL(v visitors.SQLVisitor, a nodes.Assignment) (string, []any, error) {
	s, err := m.Result()
	if err != nil {
		return "", nil, err
	}
	return v.Select(s, a)
}
