package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/peanoprove/pkg/match"
	"github.com/gitrdm/peanoprove/pkg/term"
)

func TestMatchSoundness(t *testing.T) {
	x := term.NumericVar("x")
	pattern := term.Equals(x, x)
	target := term.Equals(term.Zero, term.Zero)

	bindings, ok := match.Match(pattern, target)
	require.True(t, ok)
	assert.True(t, term.Equal(target, match.Apply(pattern, bindings)))
}

func TestMatchLogicVariableAcceptsCompoundFormula(t *testing.T) {
	A := term.LogicVar("A")
	target := term.Implies(term.Equals(term.Zero, term.Zero), term.Not(term.Equals(term.Zero, term.Zero)))

	bindings, ok := match.Match(A, target)
	require.True(t, ok)
	assert.True(t, term.Equal(target, bindings["A"]))
}

func TestMatchNumericVariableRejectsLogicTarget(t *testing.T) {
	x := term.NumericVar("x")
	target := term.Equals(term.Zero, term.Zero) // a logic expression

	_, ok := match.Match(x, target)
	assert.False(t, ok)
}

func TestMatchBindingConsistency(t *testing.T) {
	x := term.NumericVar("x")
	pattern := term.Equals(x, x)

	_, ok := match.Match(pattern, term.Equals(term.Zero, term.Successor(term.Zero)))
	assert.False(t, ok, "x cannot bind to both 0 and S(0)")
}

func TestMatchForallBindsQuantifierVariableName(t *testing.T) {
	x, y := term.NumericVar("x"), term.NumericVar("y")
	pattern := term.Forall(x, term.Equals(x, x))
	target := term.Forall(y, term.Equals(y, y))

	bindings, ok := match.Match(pattern, target)
	require.True(t, ok)
	assert.True(t, term.Equal(y, bindings["x"]))
}

func TestMatchFailsOnVariantMismatch(t *testing.T) {
	_, ok := match.Match(term.Zero, term.Successor(term.Zero))
	assert.False(t, ok)
}

func TestApplySequentialSubstitution(t *testing.T) {
	x, y := term.NumericVar("x"), term.NumericVar("y")
	pattern := term.Equals(x, y)
	bindings := match.Bindings{"x": term.Zero, "y": term.Successor(term.Zero)}

	result := match.Apply(pattern, bindings)
	want := term.Equals(term.Zero, term.Successor(term.Zero))
	assert.True(t, term.Equal(want, result))
}
