package rewrite

import (
	"errors"
	"fmt"

	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/visitors"
)

// DefaultMaxSteps bounds a simplification run.
const DefaultMaxSteps = 1000

// ErrNoConvergence is returned when the step limit is reached while rules
// still apply.
var ErrNoConvergence = errors.New("simplification did not converge")

// Step is one rewrite: the whole tree after the rewrite, the law applied
// and a human-readable justification.
type Step struct {
	Result        nodes.Symbol
	Law           string
	Justification string
}

func (s Step) String() string {
	return fmt.Sprintf("%-20s%s", visitors.RenderDefault(s.Result), s.Justification)
}

// Format renders the step like String, with the result rendered by r and
// padded to width columns.
func (s Step) Format(r *visitors.Renderer, width int) (string, error) {
	out, err := r.Render(s.Result)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%-*s %s", width, out, s.Justification), nil
}

// Option configures a Simplifier.
type Option func(*Simplifier)

// WithRules replaces the rule set.
func WithRules(rules ...Rule) Option {
	return func(s *Simplifier) {
		s.rules = rules
	}
}

// WithMaxSteps sets the step limit. Values below 1 keep the default.
func WithMaxSteps(n int) Option {
	return func(s *Simplifier) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// Simplifier rewrites trees one node at a time. Each step rewrites the
// first node, in post-order, that some rule matches.
type Simplifier struct {
	rules    []Rule
	maxSteps int
}

// New creates a Simplifier with DefaultRules and DefaultMaxSteps unless
// overridden.
func New(opts ...Option) *Simplifier {
	s := &Simplifier{rules: DefaultRules(), maxSteps: DefaultMaxSteps}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Simplify returns the trace of rewrites from sym to its simplest form.
// An empty trace means sym is already simplified. On ErrNoConvergence the
// steps taken so far are returned with the error.
func (s *Simplifier) Simplify(sym nodes.Symbol) ([]Step, error) {
	if sym == nil {
		return nil, nodes.ErrNilInput
	}
	var steps []Step
	cur := sym
	for len(steps) < s.maxSteps {
		next, law, why, ok := s.step(cur)
		if !ok {
			return steps, nil
		}
		steps = append(steps, Step{Result: next, Law: law, Justification: why})
		cur = next
	}
	if _, _, _, ok := s.step(cur); !ok {
		return steps, nil
	}
	return steps, fmt.Errorf("%w after %d steps", ErrNoConvergence, s.maxSteps)
}

// Simplified returns the final form of sym.
func (s *Simplifier) Simplified(sym nodes.Symbol) (nodes.Symbol, error) {
	steps, err := s.Simplify(sym)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return sym, nil
	}
	return steps[len(steps)-1].Result, nil
}

func (s *Simplifier) step(sym nodes.Symbol) (nodes.Symbol, string, string, bool) {
	e, ok := sym.(*nodes.Expression)
	if !ok {
		return sym, "", "", false
	}
	for i := 0; i < e.Len(); i++ {
		child, law, why, ok := s.step(e.Input(i))
		if ok {
			inputs := e.Inputs()
			inputs[i] = child
			return nodes.MustExpression(e.Op(), inputs...), law, why, true
		}
	}
	for _, r := range s.rules {
		if out, why, ok := r.Apply(e); ok {
			return out, r.Law(), why, true
		}
	}
	return sym, "", "", false
}

var defaultSimplifier = New()

// Simplify runs the default Simplifier.
func Simplify(sym nodes.Symbol) ([]Step, error) {
	return defaultSimplifier.Simplify(sym)
}

// Simplified runs the default Simplifier and returns the final form.
func Simplified(sym nodes.Symbol) (nodes.Symbol, error) {
	return defaultSimplifier.Simplified(sym)
}
