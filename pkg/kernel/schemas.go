package kernel

import (
	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/term"
)

// Each schema constructor below builds a canonical axiom instance and
// marks it proven directly — schemas carry no dependencies, they are
// axiomatic by construction.

// LogicL1 builds A -> (B -> A).
func (k *Kernel) LogicL1(a, b term.Term) term.Term {
	axiom := k.store.Intern(term.Implies(a, term.Implies(b, a)))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Logic Axiom", Metadata: map[string]string{"schema": "L1", "A": a.String(), "B": b.String()}})
	return axiom
}

// LogicL2 builds (A -> (B -> C)) -> ((A -> B) -> (A -> C)).
func (k *Kernel) LogicL2(a, b, c term.Term) term.Term {
	left := term.Implies(a, term.Implies(b, c))
	right := term.Implies(term.Implies(a, b), term.Implies(a, c))
	axiom := k.store.Intern(term.Implies(left, right))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Logic Axiom", Metadata: map[string]string{"schema": "L2", "A": a.String(), "B": b.String(), "C": c.String()}})
	return axiom
}

// LogicL3 builds (¬A -> ¬B) -> (B -> A).
func (k *Kernel) LogicL3(a, b term.Term) term.Term {
	left := term.Implies(term.Not(a), term.Not(b))
	right := term.Implies(b, a)
	axiom := k.store.Intern(term.Implies(left, right))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Logic Axiom", Metadata: map[string]string{"schema": "L3", "A": a.String(), "B": b.String()}})
	return axiom
}

// PeanoP1 builds ¬(0 = S(x)).
func (k *Kernel) PeanoP1(x term.Term) term.Term {
	axiom := k.store.Intern(term.Not(term.Equals(term.Zero, term.Successor(x))))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P1", "x": x.String()}})
	return axiom
}

// PeanoP2 builds S(x) = S(y) -> x = y.
func (k *Kernel) PeanoP2(x, y term.Term) term.Term {
	axiom := k.store.Intern(term.Implies(
		term.Equals(term.Successor(x), term.Successor(y)),
		term.Equals(x, y),
	))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P2", "x": x.String(), "y": y.String()}})
	return axiom
}

// PeanoP3 builds x + 0 = x.
func (k *Kernel) PeanoP3(x term.Term) term.Term {
	axiom := k.store.Intern(term.Equals(term.Add(x, term.Zero), x))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P3", "x": x.String()}})
	return axiom
}

// PeanoP4 builds x + S(y) = S(x + y).
func (k *Kernel) PeanoP4(x, y term.Term) term.Term {
	axiom := k.store.Intern(term.Equals(
		term.Add(x, term.Successor(y)),
		term.Successor(term.Add(x, y)),
	))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P4", "x": x.String(), "y": y.String()}})
	return axiom
}

// PeanoP5 builds x * 0 = 0.
func (k *Kernel) PeanoP5(x term.Term) term.Term {
	axiom := k.store.Intern(term.Equals(term.Multiply(x, term.Zero), term.Zero))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P5", "x": x.String()}})
	return axiom
}

// PeanoP6 builds x * S(y) = (x * y) + x.
func (k *Kernel) PeanoP6(x, y term.Term) term.Term {
	axiom := k.store.Intern(term.Equals(
		term.Multiply(x, term.Successor(y)),
		term.Add(term.Multiply(x, y), x),
	))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P6", "x": x.String(), "y": y.String()}})
	return axiom
}

// PeanoP7 builds x = x.
func (k *Kernel) PeanoP7(x term.Term) term.Term {
	axiom := k.store.Intern(term.Equals(x, x))
	k.store.MarkProven(axiom, kb.Provenance{Method: "Peano Axiom", Metadata: map[string]string{"schema": "P7", "x": x.String()}})
	return axiom
}

// Induction builds the induction axiom for v and predicate:
// predicate[v/0] -> ((forall v (predicate -> predicate[v/S(v)])) -> forall v predicate)
func (k *Kernel) Induction(v term.NumericVarTerm, predicate term.Term) term.Term {
	baseCase := k.store.Intern(predicate.Substitute(v.Name, term.Zero))
	inductiveStep := predicate.Substitute(v.Name, term.Successor(v))
	stepImplication := k.store.Intern(term.Implies(predicate, inductiveStep))
	quantifiedStep := k.store.Intern(term.Forall(v, stepImplication))
	conclusion := k.store.Intern(term.Forall(v, predicate))
	stepToConclusion := k.store.Intern(term.Implies(quantifiedStep, conclusion))
	axiom := k.store.Intern(term.Implies(baseCase, stepToConclusion))

	k.store.MarkProven(axiom, kb.Provenance{
		Method:   "Induction Schema",
		Metadata: map[string]string{"var": v.Name, "predicate": predicate.String()},
	})
	return axiom
}

// Instantiation builds forall v (predicate) -> predicate[v/replacement],
// replacement is required to be a numeric term. The free variables of
// replacement are not checked against quantifiers inside predicate, so a
// quantifier there can capture them.
func (k *Kernel) Instantiation(v term.NumericVarTerm, predicate term.Term, replacement term.Term) (term.Term, error) {
	if replacement.Sort() != term.Numeric {
		return nil, fail("Instantiation", "replacement must be numeric, got %s", term.Kind(replacement))
	}

	quantified := k.store.Intern(term.Forall(v, predicate))
	substituted := k.store.Intern(predicate.Substitute(v.Name, replacement))
	axiom := k.store.Intern(term.Implies(quantified, substituted))

	k.store.MarkProven(axiom, kb.Provenance{
		Method: "Instantiation Schema",
		Metadata: map[string]string{
			"var":         v.Name,
			"predicate":   predicate.String(),
			"replacement": replacement.String(),
		},
	})
	return axiom, nil
}

// VacuousGeneralization builds predicate -> forall v (predicate),
// requiring v is not free in predicate.
func (k *Kernel) VacuousGeneralization(v term.NumericVarTerm, predicate term.Term) (term.Term, error) {
	if _, free := predicate.FreeVariables()[v.Name]; free {
		return nil, fail("Vacuous Generalization", "%s is free in %s", v.Name, predicate)
	}

	quantified := k.store.Intern(term.Forall(v, predicate))
	axiom := k.store.Intern(term.Implies(predicate, quantified))

	k.store.MarkProven(axiom, kb.Provenance{
		Method:   "Vacuous Generalization Schema",
		Metadata: map[string]string{"var": v.Name, "predicate": predicate.String()},
	})
	return axiom, nil
}

// Distribution builds forall v (P -> Q) -> (forall v P -> forall v Q).
func (k *Kernel) Distribution(v term.NumericVarTerm, p, q term.Term) term.Term {
	pImpliesQ := k.store.Intern(term.Implies(p, q))
	quantifiedImplication := k.store.Intern(term.Forall(v, pImpliesQ))
	forallP := k.store.Intern(term.Forall(v, p))
	forallQ := k.store.Intern(term.Forall(v, q))
	conclusion := k.store.Intern(term.Implies(forallP, forallQ))
	axiom := k.store.Intern(term.Implies(quantifiedImplication, conclusion))

	k.store.MarkProven(axiom, kb.Provenance{
		Method:   "Distribution Schema",
		Metadata: map[string]string{"var": v.Name, "P": p.String(), "Q": q.String()},
	})
	return axiom
}

// Indiscernability builds x = y -> (predicate -> predicate[x/y]).
func (k *Kernel) Indiscernability(x, y term.NumericVarTerm, predicate term.Term) term.Term {
	eq := k.store.Intern(term.Equals(x, y))
	substituted := k.store.Intern(predicate.Substitute(x.Name, y))
	implication := k.store.Intern(term.Implies(predicate, substituted))
	axiom := k.store.Intern(term.Implies(eq, implication))

	k.store.MarkProven(axiom, kb.Provenance{
		Method:   "Indiscernability Schema",
		Metadata: map[string]string{"x": x.Name, "y": y.Name, "P": predicate.String()},
	})
	return axiom
}
