package visitors

import (
	"testing"

	"github.com/bawdo/gobool/internal/testutil"
	"github.com/bawdo/gobool/nodes"
)

func TestOutline(t *testing.T) {
	t.Parallel()
	want := "OR\n" +
		"├── C\n" +
		"└── NOT\n" +
		"    └── AND\n" +
		"        ├── B\n" +
		"        └── C\n"
	testutil.AssertEqual(t, Outline(example2()), want)
}

func TestOutlineLeaf(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, Outline(nodes.True()), "1\n")
}

func TestOutlineNestedSiblings(t *testing.T) {
	t.Parallel()
	s := nodes.MustAnd(nodes.MustOr("A", "B"), "C")
	want := "AND\n" +
		"├── OR\n" +
		"│   ├── A\n" +
		"│   └── B\n" +
		"└── C\n"
	testutil.AssertEqual(t, Outline(s), want)
}
