package rewrite

import (
	"fmt"
	"slices"
	"testing"

	"github.com/bawdo/gobool/internal/testutil"
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/visitors"
)

func cstyle(s nodes.Symbol) string {
	return visitors.Render(s, visitors.PresetCStyle.Notation())
}

func laws(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Law
	}
	return out
}

func TestLaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   nodes.Symbol
		want nodes.Symbol
		laws []string
	}{
		{"reorder and", nodes.MustAnd("D", "B", "C"), nodes.MustAnd("B", "C", "D"), []string{"commutativity"}},
		{"reorder or", nodes.MustOr("D", "B", "C"), nodes.MustOr("B", "C", "D"), []string{"commutativity"}},
		{"annulment and", nodes.MustAnd("B", "C", false), nodes.False(), []string{"annulment"}},
		{"annulment or", nodes.MustOr("B", "C", true), nodes.True(), []string{"annulment"}},
		{"identity and", nodes.MustAnd("C", "B", true), nodes.MustAnd("B", "C"), []string{"identity", "commutativity"}},
		{"identity or", nodes.MustOr("C", "B", false), nodes.MustOr("B", "C"), []string{"identity", "commutativity"}},
		{"identity collapses", nodes.MustAnd(true, true), nodes.True(), []string{"identity"}},
		{"complement and", nodes.MustAnd("B", "C", nodes.MustNot("B")), nodes.False(), []string{"complement"}},
		{"complement or", nodes.MustOr("B", "C", nodes.MustNot("B")), nodes.True(), []string{"complement"}},
		{"involution", nodes.MustNot(nodes.MustNot("A")), nodes.NewVariable("A"), []string{"involution"}},
		{"idempotence and", nodes.MustAnd("A", "A"), nodes.NewVariable("A"), []string{"idempotence"}},
		{"idempotence or", nodes.MustOr("A", "A"), nodes.NewVariable("A"), []string{"idempotence"}},
		{"constant negation", nodes.MustNot(false), nodes.True(), []string{"constant negation"}},
		{"associativity", nodes.MustAnd("A", nodes.MustAnd("B", "C")), nodes.MustAnd("A", "B", "C"), []string{"associativity"}},
		{"absorption and", nodes.MustAnd("A", nodes.MustOr("A", "B")), nodes.NewVariable("A"), []string{"absorption"}},
		{"absorption or", nodes.MustOr("A", nodes.MustAnd("A", "B")), nodes.NewVariable("A"), []string{"absorption"}},
		{
			"de morgan",
			nodes.MustNot(nodes.MustOr("A", "B")),
			nodes.MustAnd(nodes.MustNot("A"), nodes.MustNot("B")),
			[]string{"de morgan"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			steps, err := Simplify(tt.in)
			testutil.AssertNoError(t, err)
			if len(steps) == 0 {
				t.Fatal("expected at least one step")
			}
			testutil.AssertSymbol(t, steps[len(steps)-1].Result, tt.want, cstyle)
			testutil.AssertDeepEqual(t, laws(steps), tt.laws)
		})
	}
}

func TestWorkedExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   nodes.Symbol
		want string
		laws []string
	}{
		{
			nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C", true))),
			"!A && (!B || !C)",
			[]string{"identity", "de morgan", "de morgan"},
		},
		{
			nodes.MustOr("C", nodes.MustNot(nodes.MustAnd("B", "C"))),
			"1",
			[]string{"de morgan", "associativity", "complement"},
		},
		{
			nodes.MustNot(true),
			"0",
			[]string{"constant negation"},
		},
		{
			nodes.MustAnd(
				nodes.MustNot(nodes.MustAnd("A", "B")),
				nodes.MustOr(nodes.MustNot("A"), "B"),
				nodes.MustOr(nodes.MustNot("B"), "B"),
			),
			"(!A || !B) && (!A || B)",
			[]string{"de morgan", "complement", "identity"},
		},
	}

	for _, tt := range tests {
		steps, err := Simplify(tt.in)
		testutil.AssertNoError(t, err)
		testutil.AssertDeepEqual(t, laws(steps), tt.laws)
		final, err := Simplified(tt.in)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, cstyle(final), tt.want)
	}
}

func TestStepTraceIsWholeTree(t *testing.T) {
	t.Parallel()

	in := nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C", true)))
	steps, err := Simplify(in)
	testutil.AssertNoError(t, err)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	testutil.AssertEqual(t, cstyle(steps[0].Result), "!(A || B && C)")
	testutil.AssertEqual(t, cstyle(steps[1].Result), "!A && !(B && C)")
	testutil.AssertEqual(t, cstyle(steps[2].Result), "!A && (!B || !C)")
	// The input is never modified.
	testutil.AssertEqual(t, cstyle(in), "!(A || B && C && 1)")
}

func TestStepString(t *testing.T) {
	t.Parallel()

	s := Step{Result: nodes.MustAnd("B", "C"), Law: "commutativity", Justification: "Commutativity: reorder terms"}
	testutil.AssertEqual(t, s.String(), fmt.Sprintf("%-20s%s", "BC", "Commutativity: reorder terms"))
}

func TestStepFormatUsesRenderer(t *testing.T) {
	t.Parallel()

	s := Step{Result: nodes.MustAnd("B", nodes.MustOr("C", "D")), Law: "commutativity", Justification: "Commutativity: reorder terms"}
	r := visitors.NewRenderer(
		visitors.WithNotation(visitors.PresetCStyle.Notation()),
		visitors.WithPolicy(visitors.PolicyExplicit),
	)
	got, err := s.Format(r, 16)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "B && (C || D)    Commutativity: reorder terms")

	_, err = s.Format(visitors.NewRenderer(visitors.WithMaxDepth(1)), 0)
	testutil.AssertErrorIs(t, err, visitors.ErrDepthExceeded)
}

func TestAlreadySimplified(t *testing.T) {
	t.Parallel()

	for _, s := range []nodes.Symbol{nodes.NewVariable("A"), nodes.True(), nodes.MustAnd("A", "B")} {
		steps, err := Simplify(s)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(steps), 0)
		got, err := Simplified(s)
		testutil.AssertNoError(t, err)
		if got != s {
			t.Errorf("expected the input returned unchanged, got %s", cstyle(got))
		}
	}
}

func TestSimplifyNil(t *testing.T) {
	t.Parallel()

	_, err := Simplify(nil)
	testutil.AssertErrorIs(t, err, nodes.ErrNilInput)
}

func TestNoConvergence(t *testing.T) {
	t.Parallel()

	flip := RuleFunc{Name: "flip", Fn: func(e *nodes.Expression) (nodes.Symbol, string, bool) {
		if e.Op() == nodes.OpNot {
			return nil, "", false
		}
		in := e.Inputs()
		slices.Reverse(in)
		return nodes.MustExpression(e.Op(), in...), "flip", true
	}}
	s := New(WithRules(flip), WithMaxSteps(5))
	steps, err := s.Simplify(nodes.MustAnd("A", "B"))
	testutil.AssertErrorIs(t, err, ErrNoConvergence)
	testutil.AssertEqual(t, len(steps), 5)

	_, err = s.Simplified(nodes.MustAnd("A", "B"))
	testutil.AssertErrorIs(t, err, ErrNoConvergence)
}

func TestWithRules(t *testing.T) {
	t.Parallel()

	s := New(WithRules(RuleFunc{Name: "commutativity", Fn: commutativity}))
	got, err := s.Simplified(nodes.MustAnd("C", "B", true))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cstyle(got), "1 && B && C")
}

func TestCompare(t *testing.T) {
	t.Parallel()

	terms := []nodes.Symbol{
		nodes.MustAnd("A", "B"),
		nodes.MustNot("B"),
		nodes.NewVariable("B"),
		nodes.MustNot("A"),
		nodes.True(),
		nodes.NewVariable("A"),
	}
	slices.SortStableFunc(terms, Compare)
	got := make([]string, len(terms))
	for i, s := range terms {
		got[i] = cstyle(s)
	}
	testutil.AssertDeepEqual(t, got, []string{"1", "A", "!A", "B", "!B", "A && B"})
}

// assignments enumerates every assignment of names.
func assignments(names []string) []nodes.Assignment {
	out := make([]nodes.Assignment, 0, 1<<len(names))
	for mask := 0; mask < 1<<len(names); mask++ {
		a := nodes.Assignment{}
		for i, name := range names {
			a[name] = mask&(1<<i) != 0
		}
		out = append(out, a)
	}
	return out
}

func TestSimplificationPreservesTruth(t *testing.T) {
	t.Parallel()

	exprs := []nodes.Symbol{
		nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C", true))),
		nodes.MustOr("C", nodes.MustNot(nodes.MustAnd("B", "C"))),
		nodes.MustAnd(
			nodes.MustNot(nodes.MustAnd("A", "B")),
			nodes.MustOr(nodes.MustNot("A"), "B"),
			nodes.MustOr(nodes.MustNot("B"), "B"),
		),
		nodes.MustOr(nodes.MustAnd("A", nodes.MustOr("A", "C")), nodes.MustNot(nodes.MustNot("B")), false),
		nodes.MustAnd(nodes.MustOr("D", "A"), nodes.MustOr("A", "D"), nodes.MustNot(nodes.MustOr("C", nodes.MustNot("C")))),
	}
	for _, s := range exprs {
		final, err := Simplified(s)
		testutil.AssertNoError(t, err)
		for _, a := range assignments(nodes.Variables(s)) {
			want, err := nodes.Evaluate(s, a)
			testutil.AssertNoError(t, err)
			got, err := nodes.Evaluate(final, a)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want, "%s vs %s under %v", cstyle(s), cstyle(final), a)
		}
	}
}
