package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/peanoprove/internal/render"
	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/term"
)

func TestExplainOrdersDependenciesFirst(t *testing.T) {
	store := kb.New(nil)
	p := store.Intern(term.LogicVar("P"))
	q := store.Intern(term.LogicVar("Q"))
	implication := store.Intern(term.Implies(p, q))

	store.MarkProven(p, kb.Provenance{Method: "Logic L1"})
	store.MarkProven(implication, kb.Provenance{Method: "Logic L1"})
	store.MarkProven(q, kb.Provenance{Method: "Modus Ponens", Dependencies: []term.Term{implication, p}})

	steps := render.Explain(store, q)
	require.Len(t, steps, 3)
	assert.Equal(t, q.String(), steps[2].Term.String())
	assert.Contains(t, steps[2].Reason, "Modus Ponens using")
}

func TestExplainReturnsNilForUnprovenTerm(t *testing.T) {
	store := kb.New(nil)
	goal := term.LogicVar("Unproven")
	assert.Nil(t, render.Explain(store, goal))
}

func TestStringFormatsSteps(t *testing.T) {
	store := kb.New(nil)
	p := store.Intern(term.LogicVar("P"))
	store.MarkProven(p, kb.Provenance{Method: "Logic L1"})

	steps := render.Explain(store, p)
	out := render.String(steps)
	assert.Contains(t, out, "1. P")
	assert.Contains(t, out, "Reason: Logic L1")
}
