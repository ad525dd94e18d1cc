package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bawdo/gobool/nodes"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want, got, msgAndArgs...)
}

// AssertDeepEqual is AssertEqual for slices, maps and structs.
func AssertDeepEqual(t *testing.T, got, want any, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want, got, msgAndArgs...)
}

// AssertAccept accepts a visitor and symbol, renders it, and compares it with the expected string.
func AssertAccept(t *testing.T, v nodes.Visitor, s nodes.Symbol, expected string) {
	t.Helper()
	assert.Equal(t, expected, s.Accept(v))
}

// AssertSymbol fails the test if got is not structurally equal to want.
// render formats both sides for the failure message.
func AssertSymbol(t *testing.T, got, want nodes.Symbol, render func(nodes.Symbol) string) {
	t.Helper()
	if !nodes.Equal(got, want) {
		t.Errorf("expected:\n  %s\ngot:\n  %s", render(want), render(got))
	}
}

// AssertContains fails the test if s does not contain sub.
func AssertContains(t *testing.T, s, sub string) {
	t.Helper()
	assert.Contains(t, s, sub)
}

// AssertNoError stops the test if err is non-nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertError stops the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
}

// AssertErrorIs stops the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
}
