package substitute

import (
	"errors"
	"testing"

	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/visitors"
)

func render(s nodes.Symbol) string {
	return visitors.Render(s, visitors.PresetCStyle.Notation())
}

// --- Bindings ---

func TestBindingReplacesVariable(t *testing.T) {
	t.Parallel()
	sub := New(WithBinding("A", true))
	got, err := sub.Transform(nodes.MustAnd("A", "B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "1 && B"
	if render(got) != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, render(got))
	}
}

func TestBindingsReplaceEveryOccurrence(t *testing.T) {
	t.Parallel()
	sub := New(WithBindings(nodes.Assignment{"A": false, "C": true}))
	in := nodes.MustOr("A", nodes.MustNot(nodes.MustAnd("A", "B", "C")))
	got, err := sub.Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "0 || !(0 && B && 1)"
	if render(got) != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, render(got))
	}
	if render(in) != "A || !(A && B && C)" {
		t.Error("input tree was modified")
	}
}

func TestNoBindingsReturnsInput(t *testing.T) {
	t.Parallel()
	in := nodes.MustAnd("A", "B")
	got, err := New().Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nodes.Symbol(in) {
		t.Error("expected input returned unchanged")
	}
}

// --- Renames ---

func TestRename(t *testing.T) {
	t.Parallel()
	sub := New(WithRename("A", "X"))
	got, err := sub.Transform(nodes.MustOr("A", "B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if render(got) != "X || B" {
		t.Errorf("got %s", render(got))
	}
}

func TestBindingWinsOverRename(t *testing.T) {
	t.Parallel()
	sub := New(WithRename("A", "X"), WithBinding("A", false))
	got, err := sub.Transform(nodes.NewVariable("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if render(got) != "0" {
		t.Errorf("got %s", render(got))
	}
}

func TestRenameToBlankRejected(t *testing.T) {
	t.Parallel()
	sub := New(WithRename("A", " "))
	_, err := sub.Transform(nodes.NewVariable("A"))
	if !errors.Is(err, nodes.ErrBlankName) {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
}

// --- String ---

func TestString(t *testing.T) {
	t.Parallel()
	sub := New(WithBinding("B", false), WithBinding("A", true), WithRename("C", "X"))
	expected := "A=1, B=0, C→X"
	if sub.String() != expected {
		t.Errorf("expected %q, got %q", expected, sub.String())
	}
}
