package visitors

import (
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// FormattingVisitor produces a human-readable multi-line outline of a tree,
// one symbol per line, indented by depth:
//
//	OR
//	├── C
//	└── NOT
//	    └── AND
//	        ├── B
//	        └── C
type FormattingVisitor struct {
	sb     strings.Builder
	prefix string
}

var _ nodes.Visitor = (*FormattingVisitor)(nil)

// NewFormattingVisitor constructs an empty FormattingVisitor.
func NewFormattingVisitor() *FormattingVisitor {
	return &FormattingVisitor{}
}

// String returns the outline accumulated so far.
func (f *FormattingVisitor) String() string {
	return f.sb.String()
}

func (f *FormattingVisitor) VisitConstant(n *nodes.Constant) string {
	f.line(n.Literal())
	return n.Literal()
}

func (f *FormattingVisitor) VisitVariable(n *nodes.Variable) string {
	f.line(n.Name())
	return n.Name()
}

func (f *FormattingVisitor) VisitExpression(n *nodes.Expression) string {
	f.line(n.Op().String())
	saved := f.prefix
	for i := 0; i < n.Len(); i++ {
		last := i == n.Len()-1
		branch, cont := "├── ", "│   "
		if last {
			branch, cont = "└── ", "    "
		}
		f.sb.WriteString(saved + branch)
		f.prefix = saved + cont
		n.Input(i).Accept(f)
	}
	f.prefix = saved
	return n.Op().String()
}

func (f *FormattingVisitor) line(label string) {
	f.sb.WriteString(label)
	f.sb.WriteByte('\n')
}

// Outline renders s as an indented tree.
func Outline(s nodes.Symbol) string {
	f := NewFormattingVisitor()
	s.Accept(f)
	return f.String()
}
