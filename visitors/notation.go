package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// Notation is the set of display tokens used when rendering. It carries no
// behaviour; any token set can be rendered without touching the renderer.
type Notation struct {
	Not   string // prefix for NOT
	Or    string // infix for OR
	And   string // infix for AND; empty means juxtaposition
	Open  string // opening bracket
	Close string // closing bracket

	// NotOpen and NotClose, when set, always enclose the operand of a NOT
	// in place of precedence brackets (e.g. LaTeX \overline{...}).
	NotOpen  string
	NotClose string
}

// NewNotation builds a custom notation from five explicit tokens.
func NewNotation(not, or, and, open, close string) Notation {
	return Notation{Not: not, Or: or, And: and, Open: open, Close: close}
}

// infix returns the padded infix token for op, or "" for NOT and for an
// empty token.
func (n Notation) infix(op nodes.Operator) string {
	var tok string
	switch op {
	case nodes.OpAnd:
		tok = n.And
	case nodes.OpOr:
		tok = n.Or
	}
	if tok == "" {
		return ""
	}
	return " " + tok + " "
}

// encloseNot reports whether NOT operands use the dedicated NOT brackets.
func (n Notation) encloseNot() bool {
	return n.NotOpen != "" || n.NotClose != ""
}

// Preset names one of the built-in notations.
type Preset int

const (
	PresetDefault Preset = iota
	PresetCStyle
	PresetWritten
	PresetMathematical
	PresetLaTeX
)

// Token tables for the built-in presets.
var presetNotations = [...]Notation{
	PresetDefault:      {Not: "!", Or: "+", And: "", Open: "(", Close: ")"},
	PresetCStyle:       {Not: "!", Or: "||", And: "&&", Open: "(", Close: ")"},
	PresetWritten:      {Not: "not", Or: "or", And: "and", Open: "(", Close: ")"},
	PresetMathematical: {Not: "¬", Or: "∨", And: "∧", Open: "(", Close: ")"},
	PresetLaTeX:        {Not: `\overline`, Or: "+", And: "", Open: "(", Close: ")", NotOpen: "{", NotClose: "}"},
}

var presetNames = [...]string{
	PresetDefault:      "default",
	PresetCStyle:       "cstyle",
	PresetWritten:      "written",
	PresetMathematical: "mathematical",
	PresetLaTeX:        "latex",
}

// presetAliases maps accepted spellings to presets.
var presetAliases = map[string]Preset{
	"default":      PresetDefault,
	"cstyle":       PresetCStyle,
	"c":            PresetCStyle,
	"c-style":      PresetCStyle,
	"written":      PresetWritten,
	"words":        PresetWritten,
	"mathematical": PresetMathematical,
	"math":         PresetMathematical,
	"latex":        PresetLaTeX,
}

// Presets returns every built-in preset in declaration order.
func Presets() []Preset {
	return []Preset{PresetDefault, PresetCStyle, PresetWritten, PresetMathematical, PresetLaTeX}
}

// Notation returns the token set for p. Unknown presets fall back to
// PresetDefault.
func (p Preset) Notation() Notation {
	if p < 0 || int(p) >= len(presetNotations) {
		return presetNotations[PresetDefault]
	}
	return presetNotations[p]
}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset resolves a preset by name, case-insensitively.
func ParsePreset(name string) (Preset, error) {
	p, ok := presetAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PresetDefault, fmt.Errorf("unknown notation %q (want one of default, cstyle, written, mathematical, latex)", name)
	}
	return p, nil
}

// NotationByName returns the token set of the named preset.
func NotationByName(name string) (Notation, error) {
	p, err := ParsePreset(name)
	if err != nil {
		return Notation{}, err
	}
	return p.Notation(), nil
}
