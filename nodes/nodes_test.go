package nodes

import (
	"errors"
	"strings"
	"testing"
)

// --- Leaf construction ---

func TestConstantValueAndLiteral(t *testing.T) {
	t.Parallel()
	if !True().Value() || False().Value() {
		t.Fatal("expected True/False helpers to carry their values")
	}
	if got := NewConstant(true).Literal(); got != "1" {
		t.Errorf("expected %q, got %q", "1", got)
	}
	if got := NewConstant(false).Literal(); got != "0" {
		t.Errorf("expected %q, got %q", "0", got)
	}
}

func TestVariablesAreNotInterned(t *testing.T) {
	t.Parallel()
	a1 := NewVariable("A")
	a2 := NewVariable("A")
	if a1 == a2 {
		t.Error("expected distinct Variable instances")
	}
	if !Equal(a1, a2) {
		t.Error("expected same-named variables to compare Equal")
	}
}

func TestVariableAcceptsBlankNames(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"", " ", "\t"} {
		if v := NewVariable(name); v.Name() != name {
			t.Errorf("expected name %q to be kept, got %q", name, v.Name())
		}
		if err := ValidateName(name); !errors.Is(err, ErrBlankName) {
			t.Errorf("expected ValidateName(%q) to fail with ErrBlankName, got %v", name, err)
		}
	}
	if err := ValidateName("A"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// --- Expression validation ---

func TestArityEnforcement(t *testing.T) {
	t.Parallel()
	leaves := func(n int) []Symbol {
		out := make([]Symbol, n)
		for i := range out {
			out[i] = NewVariable(string(rune('A' + i)))
		}
		return out
	}

	tests := []struct {
		name     string
		op       Operator
		count    int
		wantErr  bool
		required string
	}{
		{"NOT with 0", OpNot, 0, true, "exactly 1"},
		{"NOT with 1", OpNot, 1, false, ""},
		{"NOT with 2", OpNot, 2, true, "exactly 1"},
		{"NOT with 3", OpNot, 3, true, "exactly 1"},
		{"AND with 0", OpAnd, 0, true, "at least 2"},
		{"AND with 1", OpAnd, 1, true, "at least 2"},
		{"AND with 2", OpAnd, 2, false, ""},
		{"AND with 5", OpAnd, 5, false, ""},
		{"OR with 0", OpOr, 0, true, "at least 2"},
		{"OR with 1", OpOr, 1, true, "at least 2"},
		{"OR with 3", OpOr, 3, false, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewExpression(tt.op, leaves(tt.count)...)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if e.Len() != tt.count || e.Op() != tt.op {
					t.Errorf("expected %s with %d inputs, got %s with %d", tt.op, tt.count, e.Op(), e.Len())
				}
				return
			}
			if e != nil {
				t.Error("expected nil expression on error")
			}
			if !errors.Is(err, ErrInvalidArity) {
				t.Fatalf("expected ErrInvalidArity, got %v", err)
			}
			var arity *InvalidArityError
			if !errors.As(err, &arity) {
				t.Fatalf("expected *InvalidArityError, got %T", err)
			}
			if arity.Op != tt.op || arity.Required != tt.required || arity.Got != tt.count {
				t.Errorf("unexpected error fields: %+v", arity)
			}
		})
	}
}

func TestArityErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := NewExpression(OpNot, NewVariable("A"), NewVariable("B"))
	want := "NOT operator: exactly 1 input required, 2 provided"
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}
	_, err = NewExpression(OpOr, NewVariable("A"))
	want = "OR operator: at least 2 inputs required, 1 provided"
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}
}

func TestInvalidOperator(t *testing.T) {
	t.Parallel()
	for _, op := range []Operator{OpNone, Operator(7), Operator(-5)} {
		_, err := NewExpression(op, NewVariable("A"), NewVariable("B"))
		if !errors.Is(err, ErrInvalidOperator) {
			t.Errorf("operator %d: expected ErrInvalidOperator, got %v", int(op), err)
		}
		if errors.Is(err, ErrInvalidArity) {
			t.Errorf("operator %d: did not expect ErrInvalidArity", int(op))
		}
	}
	_, err := NewExpression(OpNone)
	if !errors.Is(err, ErrInvalidOperator) {
		t.Errorf("expected operator check before arity check, got %v", err)
	}
}

func TestNilInputRejected(t *testing.T) {
	t.Parallel()
	var v *Variable
	if _, err := NewExpression(OpAnd, NewVariable("A"), v); !errors.Is(err, ErrNilInput) {
		t.Errorf("expected ErrNilInput for typed nil, got %v", err)
	}
	if _, err := NewExpression(OpNot, nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("expected ErrNilInput for nil, got %v", err)
	}
}

func TestExpressionCopiesInputs(t *testing.T) {
	t.Parallel()
	inputs := []Symbol{NewVariable("A"), NewVariable("B")}
	e, err := NewExpression(OpAnd, inputs...)
	if err != nil {
		t.Fatal(err)
	}
	inputs[0] = NewVariable("Z")
	if e.Input(0).(*Variable).Name() != "A" {
		t.Error("expected expression to be unaffected by caller slice mutation")
	}
	got := e.Inputs()
	got[1] = NewVariable("Y")
	if e.Input(1).(*Variable).Name() != "B" {
		t.Error("expected Inputs() to return a copy")
	}
}

func TestOperand(t *testing.T) {
	t.Parallel()
	a := NewVariable("A")
	if MustNot(a).Operand() != a {
		t.Error("expected NOT operand to be the input")
	}
	if MustAnd("A", "B").Operand() != nil {
		t.Error("expected nil operand for AND")
	}
}

// --- Operators ---

func TestOperatorPrecedenceOrdering(t *testing.T) {
	t.Parallel()
	if !(OpNone.Precedence() < OpOr.Precedence() &&
		OpOr.Precedence() < OpAnd.Precedence() &&
		OpAnd.Precedence() < OpNot.Precedence()) {
		t.Error("expected NONE < OR < AND < NOT")
	}
	if Operator(42).Precedence() != -1 {
		t.Error("expected unknown operators to have precedence -1")
	}
}

func TestOperatorStrings(t *testing.T) {
	t.Parallel()
	tests := map[Operator]string{OpNot: "NOT", OpAnd: "AND", OpOr: "OR", OpNone: "NONE", Operator(9): "NONE"}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestOperatorDual(t *testing.T) {
	t.Parallel()
	if OpAnd.Dual() != OpOr || OpOr.Dual() != OpAnd || OpNot.Dual() != OpNot {
		t.Error("unexpected dual mapping")
	}
}

// --- Lift ---

func TestLift(t *testing.T) {
	t.Parallel()
	s, err := Lift("A")
	if err != nil || s.(*Variable).Name() != "A" {
		t.Errorf("expected string to lift to Variable, got %v (%v)", s, err)
	}
	s, err = Lift(true)
	if err != nil || !s.(*Constant).Value() {
		t.Errorf("expected bool to lift to Constant, got %v (%v)", s, err)
	}
	v := NewVariable("B")
	if s, _ := Lift(v); s != v {
		t.Error("expected Lift to pass through an existing Symbol")
	}
	if _, err := Lift(42); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("expected ErrUnsupportedInput, got %v", err)
	}
	if _, err := Lift(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("expected ErrNilInput, got %v", err)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()
	e, err := And("B", "C", false)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(e, MustExpression(OpAnd, NewVariable("B"), NewVariable("C"), NewConstant(false))) {
		t.Error("expected lifted AND to equal the explicit construction")
	}
	if _, err := Or("A"); !errors.Is(err, ErrInvalidArity) {
		t.Errorf("expected ErrInvalidArity, got %v", err)
	}
	if _, err := Not(3.5); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("expected ErrUnsupportedInput, got %v", err)
	}
}

func TestMustPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "NOT operator") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()
	MustNot("A", "B")
}

// --- Equality ---

func TestEqualIsOrderSensitive(t *testing.T) {
	t.Parallel()
	if !Equal(MustAnd("B", "C", false), MustAnd("B", "C", false)) {
		t.Error("expected identical trees to be Equal")
	}
	if Equal(MustAnd("B", "C", false), MustAnd(false, "B", "C")) {
		t.Error("expected reordered inputs to differ")
	}
	if Equal(MustAnd("A", "B"), MustOr("A", "B")) {
		t.Error("expected different operators to differ")
	}
	if Equal(NewVariable("1"), NewConstant(true)) {
		t.Error("expected variable and constant to differ")
	}
}

// --- Tree ownership and traversal ---

func sampleTree() *Expression {
	return MustNot(MustOr("A", MustAnd("B", "C", true)))
}

func TestWalkVisitsEachNodeOnce(t *testing.T) {
	t.Parallel()
	tree := sampleTree()
	seen := make(map[Symbol]int)
	Walk(tree, func(s Symbol, _ int) bool {
		seen[s]++
		return true
	})
	if len(seen) != 7 {
		t.Errorf("expected 7 distinct nodes, got %d", len(seen))
	}
	for s, n := range seen {
		if n != 1 {
			t.Errorf("node %T visited %d times", s, n)
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()
	count := 0
	Walk(sampleTree(), func(s Symbol, depth int) bool {
		count++
		return depth < 1
	})
	if count != 2 {
		t.Errorf("expected 2 visits, got %d", count)
	}
}

func TestSizeDepthVariables(t *testing.T) {
	t.Parallel()
	tree := sampleTree()
	if Size(tree) != 7 {
		t.Errorf("expected size 7, got %d", Size(tree))
	}
	if Depth(tree) != 3 {
		t.Errorf("expected depth 3, got %d", Depth(tree))
	}
	if Depth(NewVariable("A")) != 0 {
		t.Error("expected leaf depth 0")
	}
	got := strings.Join(Variables(MustOr("C", MustAnd("A", "C"), "B")), ",")
	if got != "A,B,C" {
		t.Errorf("expected A,B,C got %s", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	tree := sampleTree()
	cp := Clone(tree)
	if !Equal(tree, cp) {
		t.Fatal("expected clone to be Equal")
	}
	original := make(map[Symbol]bool)
	Walk(tree, func(s Symbol, _ int) bool {
		original[s] = true
		return true
	})
	Walk(cp, func(s Symbol, _ int) bool {
		if original[s] {
			t.Errorf("clone shares node %T with the original", s)
		}
		return true
	})
}

func TestDeepTree(t *testing.T) {
	t.Parallel()
	var s Symbol = NewVariable("A")
	for i := 0; i < 10000; i++ {
		s = MustNot(s)
	}
	if Depth(s) != 10000 || Size(s) != 10001 {
		t.Errorf("unexpected depth %d size %d", Depth(s), Size(s))
	}
}

func TestIsLeaf(t *testing.T) {
	t.Parallel()
	if !IsLeaf(NewVariable("A")) || !IsLeaf(True()) || IsLeaf(MustNot("A")) {
		t.Error("unexpected IsLeaf result")
	}
}

// --- Evaluation ---

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tree := sampleTree() // !(A + BC1)
	tests := []struct {
		a    Assignment
		want bool
	}{
		{Assignment{"A": false, "B": false, "C": true}, true},
		{Assignment{"A": true, "B": false, "C": false}, false},
		{Assignment{"A": false, "B": true, "C": true}, false},
	}
	for _, tt := range tests {
		got, err := Evaluate(tree, tt.a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.a, tt.want, got)
		}
	}
}

func TestEvaluateUnbound(t *testing.T) {
	t.Parallel()
	_, err := Evaluate(MustAnd(false, "Q"), Assignment{})
	if !errors.Is(err, ErrUnboundVariable) {
		t.Errorf("expected ErrUnboundVariable, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Q"`) {
		t.Errorf("expected variable name in error: %v", err)
	}
}
