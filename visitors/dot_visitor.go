package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/gobool/internal/quoting"
	"github.com/bawdo/gobool/nodes"
)

// Color constants for DOT node categories.
const (
	colorNot      = "#FF6961" // NOT
	colorAnd      = "#FFEB80" // AND
	colorOr       = "#FFB347" // OR
	colorVariable = "#B0D4E8" // variables
	colorConstant = "#D3D3D3" // constants
)

// dotNode represents a single node in the DOT graph.
type dotNode struct {
	id    string
	label string
	color string
}

// dotEdge represents a directed edge between two nodes in the DOT graph.
type dotEdge struct {
	from  string
	to    string
	label string
}

// DotVisitor walks the tree and produces Graphviz DOT output.
// It implements nodes.Visitor.
type DotVisitor struct {
	nextID    int
	nodes     []dotNode
	edges     []dotEdge
	parentID  string
	edgeLabel string
	renderer  *Renderer
}

var _ nodes.Visitor = (*DotVisitor)(nil)

// NewDotVisitor creates a new DotVisitor ready to walk a tree. Expression
// nodes are labelled with their operator and their rendering by r, so the
// labels follow its notation and bracket policy. A nil r uses NewRenderer().
func NewDotVisitor(r *Renderer) *DotVisitor {
	if r == nil {
		r = NewRenderer()
	}
	return &DotVisitor{renderer: r}
}

// addNode creates a new DOT node with the given label and color, returning its ID.
func (dv *DotVisitor) addNode(label, color string) string {
	id := fmt.Sprintf("n%d", dv.nextID)
	dv.nextID++
	dv.nodes = append(dv.nodes, dotNode{id: id, label: label, color: color})
	return id
}

// addEdge records a directed edge from one node to another.
func (dv *DotVisitor) addEdge(from, to, label string) {
	dv.edges = append(dv.edges, dotEdge{from: from, to: to, label: label})
}

// visitChild saves and restores the parent context, sets the edge label,
// and calls child.Accept to recursively visit the child node.
func (dv *DotVisitor) visitChild(parentID, label string, child nodes.Symbol) string {
	savedParent := dv.parentID
	savedLabel := dv.edgeLabel
	dv.parentID = parentID
	dv.edgeLabel = label
	result := child.Accept(dv)
	dv.parentID = savedParent
	dv.edgeLabel = savedLabel
	return result
}

// connectToParent adds an edge from the current parentID to nodeID if a parent exists.
func (dv *DotVisitor) connectToParent(nodeID string) {
	if dv.parentID != "" {
		dv.addEdge(dv.parentID, nodeID, dv.edgeLabel)
	}
}

// NodeCount returns the number of nodes accumulated so far.
func (dv *DotVisitor) NodeCount() int {
	return len(dv.nodes)
}

// ToDot generates the complete DOT graph text.
func (dv *DotVisitor) ToDot() string {
	var sb strings.Builder

	sb.WriteString("digraph Expression {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")

	for _, n := range dv.nodes {
		fmt.Fprintf(&sb, "  %s [label=\"%s\", fillcolor=\"%s\"];\n", n.id, n.label, n.color)
	}
	for _, e := range dv.edges {
		if e.label != "" {
			fmt.Fprintf(&sb, "  %s -> %s [label=\"%s\"];\n", e.from, e.to, e.label)
		} else {
			fmt.Fprintf(&sb, "  %s -> %s;\n", e.from, e.to)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// ToDot renders s as a standalone DOT graph labelled by r.
func ToDot(s nodes.Symbol, r *Renderer) string {
	dv := NewDotVisitor(r)
	s.Accept(dv)
	return dv.ToDot()
}

// --- Visitor interface implementation ---

func (dv *DotVisitor) VisitConstant(n *nodes.Constant) string {
	id := dv.addNode("Constant\\n"+n.Literal(), colorConstant)
	dv.connectToParent(id)
	return id
}

func (dv *DotVisitor) VisitVariable(n *nodes.Variable) string {
	id := dv.addNode("Variable\\n"+quoting.DotLabel(n.Name()), colorVariable)
	dv.connectToParent(id)
	return id
}

func (dv *DotVisitor) VisitExpression(n *nodes.Expression) string {
	color := colorAnd
	switch n.Op() {
	case nodes.OpNot:
		color = colorNot
	case nodes.OpOr:
		color = colorOr
	}
	label := n.Op().String()
	// Subtrees past the renderer's depth limit are labelled by operator only.
	if text, err := dv.renderer.Render(n); err == nil {
		label += "\\n" + quoting.DotLabel(text)
	}
	id := dv.addNode(label, color)
	dv.connectToParent(id)
	for i := 0; i < n.Len(); i++ {
		dv.visitChild(id, fmt.Sprintf("%d", i), n.Input(i))
	}
	return id
}
