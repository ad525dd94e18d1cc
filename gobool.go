// Package gobool builds Boolean expression trees and renders them under
// configurable notations.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/gobool/nodes (symbol trees)
//   - github.com/bawdo/gobool/visitors (notations, SQL, DOT)
//   - github.com/bawdo/gobool/rewrite (simplification)
//   - github.com/bawdo/gobool/managers (stack-based building)
//   - github.com/bawdo/gobool/plugins (tree transformers)
package gobool

import (
	"github.com/bawdo/gobool/managers"
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/rewrite"
	"github.com/bawdo/gobool/visitors"
)

// --- Core Types ---

// Symbol is a node of an expression tree.
type Symbol = nodes.Symbol

// Operator is one of OpNot, OpAnd, OpOr.
type Operator = nodes.Operator

// Assignment maps variable names to truth values.
type Assignment = nodes.Assignment

// Operators.
const (
	OpOr  = nodes.OpOr
	OpAnd = nodes.OpAnd
	OpNot = nodes.OpNot
)

// --- Constructors ---

// Var creates a variable.
func Var(name string) *nodes.Variable {
	return nodes.NewVariable(name)
}

// Const creates a constant.
func Const(value bool) *nodes.Constant {
	return nodes.NewConstant(value)
}

// Not negates its single input. Inputs may be Symbols, variable names
// (string) or constants (bool).
func Not(inputs ...any) (*nodes.Expression, error) {
	return nodes.Not(inputs...)
}

// And conjoins two or more inputs.
func And(inputs ...any) (*nodes.Expression, error) {
	return nodes.And(inputs...)
}

// Or disjoins two or more inputs.
func Or(inputs ...any) (*nodes.Expression, error) {
	return nodes.Or(inputs...)
}

// NewStack creates an empty StackManager.
func NewStack() *managers.StackManager {
	return managers.NewStackManager()
}

// --- Rendering ---

// Notation is a set of display tokens.
type Notation = visitors.Notation

// Render renders s under the default notation.
func Render(s nodes.Symbol) string {
	return visitors.RenderDefault(s)
}

// RenderWith renders s under the named preset notation.
func RenderWith(s nodes.Symbol, notation string) (string, error) {
	n, err := visitors.NotationByName(notation)
	if err != nil {
		return "", err
	}
	return visitors.Render(s, n), nil
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...visitors.Option) *visitors.Renderer {
	return visitors.NewRenderer(opts...)
}

// --- Algebra ---

// Evaluate computes the truth value of s under a.
func Evaluate(s nodes.Symbol, a nodes.Assignment) (bool, error) {
	return nodes.Evaluate(s, a)
}

// Simplify returns the rewrite steps leading to the simplified form of s.
func Simplify(s nodes.Symbol) ([]rewrite.Step, error) {
	return rewrite.Simplify(s)
}

// Simplified returns the simplified form of s.
func Simplified(s nodes.Symbol) (nodes.Symbol, error) {
	return rewrite.Simplified(s)
}
