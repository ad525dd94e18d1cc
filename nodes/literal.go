package nodes

import "strings"

// Constant is a boolean literal leaf.
type Constant struct {
	value bool
}

// NewConstant creates a Constant holding value.
func NewConstant(value bool) *Constant {
	return &Constant{value: value}
}

// True and False return fresh constants.
func True() *Constant  { return NewConstant(true) }
func False() *Constant { return NewConstant(false) }

// Value returns the literal value.
func (n *Constant) Value() bool { return n.value }

// Literal returns the canonical textual form: "1" or "0".
func (n *Constant) Literal() string {
	if n.value {
		return "1"
	}
	return "0"
}

func (n *Constant) Accept(v Visitor) string { return v.VisitConstant(n) }
func (n *Constant) symbol()                 {}

// Variable is a named leaf. Two variables with the same name are distinct
// objects but render identically and compare Equal.
type Variable struct {
	name string
}

// NewVariable creates a Variable. Any name is accepted, including empty
// ones; use ValidateName where a usable identifier is required.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the variable name.
func (n *Variable) Name() string { return n.name }

func (n *Variable) Accept(v Visitor) string { return v.VisitVariable(n) }
func (n *Variable) symbol()                 {}

// ValidateName rejects empty or whitespace-only variable names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return nil
}
