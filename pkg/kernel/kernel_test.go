package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/kernel"
	"github.com/gitrdm/peanoprove/pkg/term"
)

func newKernel() (*kernel.Kernel, *kb.Store) {
	store := kb.New(nil)
	return kernel.New(store, nil), store
}

func TestModusPonensClosure(t *testing.T) {
	k, store := newKernel()
	p := store.Intern(term.LogicVar("P"))
	q := store.Intern(term.LogicVar("Q"))
	implication := store.Intern(term.Implies(p, q))

	store.MarkProven(implication, kb.Provenance{Method: "test"})
	store.MarkProven(p, kb.Provenance{Method: "test"})

	result, err := k.ModusPonens(implication, p)
	require.NoError(t, err)
	assert.True(t, term.Equal(q, result))
	assert.True(t, store.IsProven(q))

	prov, ok := store.GetProvenance(q)
	require.True(t, ok)
	assert.Equal(t, "Modus Ponens", prov.Method)
	require.Len(t, prov.Dependencies, 2)
}

func TestModusPonensRejectsUnprovenAntecedent(t *testing.T) {
	k, store := newKernel()
	p := store.Intern(term.LogicVar("P"))
	q := store.Intern(term.LogicVar("Q"))
	implication := store.Intern(term.Implies(p, q))
	store.MarkProven(implication, kb.Provenance{Method: "test"})

	_, err := k.ModusPonens(implication, p)
	require.Error(t, err)
	var pe *kernel.PreconditionError
	assert.ErrorAs(t, err, &pe)
}

func TestModusPonensRejectsMismatchedAntecedent(t *testing.T) {
	k, store := newKernel()
	p := store.Intern(term.LogicVar("P"))
	q := store.Intern(term.LogicVar("Q"))
	other := store.Intern(term.LogicVar("R"))
	implication := store.Intern(term.Implies(p, q))
	store.MarkProven(implication, kb.Provenance{Method: "test"})
	store.MarkProven(other, kb.Provenance{Method: "test"})

	_, err := k.ModusPonens(implication, other)
	require.Error(t, err)
}

func TestUniversalGeneralization(t *testing.T) {
	k, store := newKernel()
	x := term.NumericVar("x")
	q := store.Intern(term.Equals(x, x))
	store.MarkProven(q, kb.Provenance{Method: "test"})

	result, err := k.UniversalGeneralization(q, x)
	require.NoError(t, err)
	assert.Equal(t, "∀x(x=x)", result.String())
	assert.True(t, store.IsProven(result))
}

func TestVacuousGeneralizationRejectsFreeVariable(t *testing.T) {
	k, _ := newKernel()
	x := term.NumericVar("x")
	predicate := term.Equals(x, term.Zero)

	_, err := k.VacuousGeneralization(x, predicate)
	require.Error(t, err)
}

func TestVacuousGeneralizationAcceptsFreshVariable(t *testing.T) {
	k, store := newKernel()
	x := term.NumericVar("x")
	y := term.NumericVar("y")
	predicate := store.Intern(term.Equals(y, term.Zero))

	axiom, err := k.VacuousGeneralization(x, predicate)
	require.NoError(t, err)
	assert.Equal(t, "(y=0→∀x(y=0))", axiom.String())
}

func TestInductionInstance(t *testing.T) {
	k, _ := newKernel()
	x := term.NumericVar("X")
	predicate := term.Equals(term.Add(x, term.Zero), x)

	axiom := k.Induction(x, predicate)
	want := "((0+0)=0→(∀X(((X+0)=X→(S(X)+0)=S(X)))→∀X((X+0)=X)))"
	assert.Equal(t, want, axiom.String())
}

func TestInstantiationRejectsNonNumericReplacement(t *testing.T) {
	k, store := newKernel()
	x := term.NumericVar("x")
	predicate := store.Intern(term.Equals(x, x))

	_, err := k.Instantiation(x, predicate, term.LogicVar("P"))
	require.Error(t, err)
}

func TestPeanoP7MatchesReflexivityTransport(t *testing.T) {
	k, store := newKernel()
	zero := store.Intern(term.Zero)
	axiom := k.PeanoP7(zero)
	assert.Equal(t, "0=0", axiom.String())
	assert.True(t, store.IsProven(axiom))
}

func TestIdentityProofViaLogicAxioms(t *testing.T) {
	k, store := newKernel()
	p := store.Intern(term.LogicVar("P"))

	step1 := k.LogicL1(p, p) // P -> (P -> P)
	step2 := k.LogicL1(p, store.Intern(term.Implies(p, p))) // P -> ((P->P) -> P)
	step3 := k.LogicL2(p, store.Intern(term.Implies(p, p)), p)

	mid, err := k.ModusPonens(step3, step2)
	require.NoError(t, err)

	result, err := k.ModusPonens(mid, step1)
	require.NoError(t, err)

	assert.Equal(t, "(P→P)", result.String())
	assert.True(t, store.IsProven(result))
}
