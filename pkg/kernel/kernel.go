// Package kernel implements the Hilbert-style inference rules and axiom
// schemas: Modus Ponens, Universal Generalization, Substitution, and the
// fifteen axiom constructors (three propositional, seven Peano, plus
// Induction, Instantiation, Vacuous Generalization, Distribution, and
// Indiscernability). Every operation validates its preconditions against
// a kb.Store before recording provenance — nothing here mutates the
// store without first confirming the derivation is licensed.
package kernel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/term"
)

// PreconditionError reports a violated inference precondition: a
// mismatched antecedent, an unproven premise, a non-fresh generalization
// variable. Driver code is expected to catch these and move on to the
// next candidate rather than treating them as fatal.
type PreconditionError struct {
	Op      string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func fail(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// Kernel bundles a knowledge-base store with a logger, mirroring the
// teacher's convention of small structs that carry shared collaborators
// rather than free functions taking the store as their first argument.
type Kernel struct {
	store *kb.Store
	log   *zap.Logger
}

// New creates a Kernel over store. A nil logger is replaced with a no-op
// logger.
func New(store *kb.Store, logger *zap.Logger) *Kernel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Kernel{store: store, log: logger}
}

// ModusPonens derives Q from a proven P->Q and a proven P.
func (k *Kernel) ModusPonens(implication, antecedent term.Term) (term.Term, error) {
	impl, ok := implication.(term.ImpliesTerm)
	if !ok {
		return nil, fail("Modus Ponens", "first argument must be an implication, got %s", term.Kind(implication))
	}

	implication = k.store.Intern(implication)
	antecedent = k.store.Intern(antecedent)
	impl = implication.(term.ImpliesTerm)

	if !term.Equal(impl.Left, antecedent) {
		return nil, fail("Modus Ponens", "antecedent %s does not match LHS of %s", antecedent, implication)
	}
	if !k.store.IsProven(implication) {
		return nil, fail("Modus Ponens", "implication %s is not proven", implication)
	}
	if !k.store.IsProven(antecedent) {
		return nil, fail("Modus Ponens", "antecedent %s is not proven", antecedent)
	}

	consequent := impl.Right
	k.store.MarkProven(consequent, kb.Provenance{
		Method:       "Modus Ponens",
		Dependencies: []term.Term{implication, antecedent},
	})
	k.log.Debug("modus ponens", zap.String("implication", implication.String()), zap.String("result", consequent.String()))
	return consequent, nil
}

// UniversalGeneralization derives Forall(v, sentence) from a proven
// sentence. The kernel does not enforce the Hilbert eigenvariable side
// condition (spec's documented open question) — callers must only
// generalize over variables that were not free hypotheses.
func (k *Kernel) UniversalGeneralization(sentence term.Term, v term.NumericVarTerm) (term.Term, error) {
	sentence = k.store.Intern(sentence)
	if !k.store.IsProven(sentence) {
		return nil, fail("Universal Generalization", "%s is not proven", sentence)
	}

	quantified := k.store.Intern(term.Forall(v, sentence))
	k.store.MarkProven(quantified, kb.Provenance{
		Method:       "Universal Generalization",
		Dependencies: []term.Term{sentence},
		Metadata:     map[string]string{"var": v.Name},
	})
	return quantified, nil
}

// Substitution derives expression with every named free variable in
// bindings replaced, applied sequentially in the order given — adequate
// for the schema instances this kernel produces, where binding names
// never reoccur in another binding's replacement.
func (k *Kernel) Substitution(expression term.Term, bindings map[string]term.Term, order []string) (term.Term, error) {
	expression = k.store.Intern(expression)
	if !k.store.IsProven(expression) {
		return nil, fail("Substitution", "%s is not proven", expression)
	}

	substituted := expression
	meta := make(map[string]string, len(order))
	for _, name := range order {
		replacement, ok := bindings[name]
		if !ok {
			continue
		}
		substituted = substituted.Substitute(name, replacement)
		meta[name] = replacement.String()
	}
	substituted = k.store.Intern(substituted)

	k.store.MarkProven(substituted, kb.Provenance{
		Method:       "Substitution",
		Dependencies: []term.Term{expression},
		Metadata:     meta,
	})
	return substituted, nil
}
