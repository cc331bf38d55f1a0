package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/peanoprove/pkg/term"
)

func TestEqualStructural(t *testing.T) {
	a := term.Add(term.NumericVar("x"), term.Zero)
	b := term.Add(term.NumericVar("x"), term.Zero)
	assert.True(t, term.Equal(a, b))

	c := term.Add(term.NumericVar("y"), term.Zero)
	assert.False(t, term.Equal(a, c))
}

func TestFreeVariablesForallExcludesBound(t *testing.T) {
	x := term.NumericVar("x")
	body := term.Equals(x, x)
	forall := term.Forall(x, body)

	_, bound := forall.FreeVariables()["x"]
	assert.False(t, bound, "x must not be free in ∀x(x=x)")
}

func TestFreeVariablesAddUnion(t *testing.T) {
	free := term.Add(term.NumericVar("x"), term.NumericVar("y")).FreeVariables()
	require.Len(t, free, 2)
	_, hasX := free["x"]
	_, hasY := free["y"]
	assert.True(t, hasX)
	assert.True(t, hasY)
}

func TestSubstituteShadowingUnderForall(t *testing.T) {
	x := term.NumericVar("x")
	forall := term.Forall(x, term.Equals(x, x))

	result := forall.Substitute("x", term.Zero)
	assert.True(t, term.Equal(forall, result), "substituting the bound name must be identity")
}

func TestSubstituteNestingInsideForall(t *testing.T) {
	x, y := term.NumericVar("x"), term.NumericVar("y")
	forall := term.Forall(x, term.Equals(x, y))

	result := forall.Substitute("y", term.Successor(term.Zero))
	want := term.Forall(x, term.Equals(x, term.Successor(term.Zero)))
	assert.True(t, term.Equal(want, result))
}

func TestConstructorSortViolationPanics(t *testing.T) {
	assert.Panics(t, func() {
		// Equals requires two numeric children; LogicVar is not numeric.
		term.Equals(term.LogicVar("P"), term.Zero)
	})
}

func TestComplexityCountsNodes(t *testing.T) {
	assert.Equal(t, 1, term.Complexity(term.NumericVar("x")))
	assert.Equal(t, 3, term.Complexity(term.Equals(term.NumericVar("x"), term.NumericVar("y"))))
}

func TestIsVarAndVarName(t *testing.T) {
	assert.True(t, term.IsVar(term.NumericVar("x")))
	assert.True(t, term.IsVar(term.LogicVar("P")))
	assert.False(t, term.IsVar(term.Zero))

	name, ok := term.VarName(term.LogicVar("P"))
	require.True(t, ok)
	assert.Equal(t, "P", name)
}

func TestStringRendering(t *testing.T) {
	x := term.NumericVar("x")
	f := term.Forall(x, term.Implies(term.Equals(x, term.Zero), term.Not(term.Equals(x, x))))
	assert.Equal(t, "∀x((x=0→¬x=x))", f.String())
}

func TestSurfaceRenderingUsesAsciiTokens(t *testing.T) {
	x := term.NumericVar("x")
	f := term.Forall(x, term.Implies(term.Equals(x, term.Zero), term.Not(term.Equals(x, x))))
	assert.Equal(t, "!x((x=0->~x=x))", term.Surface(f))

	product := term.Equals(term.Multiply(term.NumericVar("x"), term.NumericVar("y")), term.Zero)
	assert.Equal(t, "(x*y)=0", term.Surface(product))
}
