package kb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/term"
)

func TestInternReturnsCanonicalRepresentative(t *testing.T) {
	store := kb.New(nil)

	a := store.Intern(term.Equals(term.NumericVar("x"), term.Zero))
	b := store.Intern(term.Equals(term.NumericVar("x"), term.Zero))

	assert.Equal(t, 1, store.Len())
	assert.True(t, term.Equal(a, b))
}

func TestMarkProvenIsFirstProofWins(t *testing.T) {
	store := kb.New(nil)
	sentence := store.Intern(term.Equals(term.Zero, term.Zero))

	store.MarkProven(sentence, kb.Provenance{Method: "Peano Axiom"})
	store.MarkProven(sentence, kb.Provenance{Method: "Modus Ponens"})

	prov, ok := store.GetProvenance(sentence)
	require.True(t, ok)
	assert.Equal(t, "Peano Axiom", prov.Method)
}

func TestProvenTermsReturnsInsertionOrderNotAlphabetical(t *testing.T) {
	store := kb.New(nil)

	zebra := store.Intern(term.LogicVar("Zebra"))
	apple := store.Intern(term.LogicVar("Apple"))
	mango := store.Intern(term.LogicVar("Mango"))

	store.MarkProven(zebra, kb.Provenance{Method: "Logic Axiom"})
	store.MarkProven(apple, kb.Provenance{Method: "Logic Axiom"})
	store.MarkProven(mango, kb.Provenance{Method: "Logic Axiom"})

	got := store.ProvenTerms()
	require.Len(t, got, 3)
	assert.True(t, term.Equal(zebra, got[0]))
	assert.True(t, term.Equal(apple, got[1]))
	assert.True(t, term.Equal(mango, got[2]))
}
