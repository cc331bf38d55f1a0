// Package search implements the proof search driver: a synchronous,
// round-based loop that alternates direct-inference checks, matching
// against already-proven facts, backward chaining over implications,
// and (optionally) forward chaining via substitution and Modus Ponens.
// There is no goroutine/channel machinery here — the originating system
// is explicitly a single synchronous loop, so cancellation is expressed with plain context.Context polling at
// round boundaries and a coarse in-loop check during forward chaining.
package search

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/kernel"
	"github.com/gitrdm/peanoprove/pkg/match"
	"github.com/gitrdm/peanoprove/pkg/term"
)

// Limits on guess-queue growth, tuned to keep the backward/forward
// chaining passes from exploding combinatorially on anything but the
// smallest goals.
const (
	maxNewGuessesPerRound    = 20
	maxTotalGuesses          = 50
	maxGuessesPerImplication = 3
	forwardTimeoutCheckEvery = 100
)

// Result is the outcome of a Prove call.
type Result struct {
	Proved bool
	Rounds int
	// Reason is set when Proved is false: "timeout" or "max_rounds".
	Reason string
}

// Driver runs proof search over a shared store and kernel.
type Driver struct {
	store  *kb.Store
	kernel *kernel.Kernel
	log    *zap.Logger
}

// New creates a Driver. A nil logger is replaced with a no-op logger.
func New(store *kb.Store, k *kernel.Kernel, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{store: store, kernel: k, log: logger}
}

// Prove searches for a derivation of goal, running at most maxRounds
// rounds or until ctx is cancelled/its deadline elapses. enableForward
// toggles the forward-chaining pass; disabling it yields a strictly
// backward-only search.
func (d *Driver) Prove(ctx context.Context, goal term.Term, maxRounds int, enableForward bool) Result {
	goal = d.store.Intern(goal)

	guesses := []term.Term{goal}
	history := map[string]struct{}{goal.String(): {}}

	for round := 0; round < maxRounds; round++ {
		select {
		case <-ctx.Done():
			return Result{Proved: false, Rounds: round, Reason: "timeout"}
		default:
		}

		if d.store.IsProven(goal) {
			d.log.Debug("goal proven", zap.String("goal", goal.String()), zap.Int("round", round))
			return Result{Proved: true, Rounds: round}
		}

		d.log.Debug("round start", zap.Int("round", round), zap.Int("guesses", len(guesses)))

		pending := guesses
		guesses = nil
		var nextGuesses []term.Term

		for _, g := range pending {
			if d.store.IsProven(g) {
				continue
			}
			guesses = append(guesses, g)

			if d.checkInferenceRules(g) {
				d.log.Debug("proven by direct inference", zap.String("term", g.String()))
				if term.Equal(g, goal) {
					return Result{Proved: true, Rounds: round}
				}
				continue
			}

			if proved := d.matchAgainstProven(g, goal); proved {
				return Result{Proved: true, Rounds: round}
			}

			nextGuesses = append(nextGuesses, d.backwardChain(g, history)...)
		}

		if enableForward {
			if proved, timedOut := d.forwardChain(ctx, goal); proved {
				return Result{Proved: true, Rounds: round}
			} else if timedOut {
				return Result{Proved: false, Rounds: round, Reason: "timeout"}
			}
		}

		if len(nextGuesses) > maxNewGuessesPerRound {
			nextGuesses = sampleByComplexity(nextGuesses, maxNewGuessesPerRound)
		}
		guesses = append(guesses, nextGuesses...)
		if len(guesses) > maxTotalGuesses {
			guesses = sampleByComplexity(guesses, maxTotalGuesses)
		}
	}

	return Result{Proved: false, Rounds: maxRounds, Reason: "max_rounds"}
}

// checkInferenceRules looks for a one-step derivation of goal: either a
// proven P->goal with P also proven (Modus Ponens), or goal itself a
// Forall whose body is already proven (Universal Generalization).
func (d *Driver) checkInferenceRules(goal term.Term) bool {
	for _, proven := range d.store.ProvenTerms() {
		impl, ok := proven.(term.ImpliesTerm)
		if !ok {
			continue
		}
		if term.Equal(impl.Right, goal) && d.store.IsProven(impl.Left) {
			if _, err := d.kernel.ModusPonens(impl, impl.Left); err == nil {
				return true
			}
		}
	}

	if forall, ok := goal.(term.ForallTerm); ok {
		if d.store.IsProven(forall.Body) {
			if _, err := d.kernel.UniversalGeneralization(forall.Body, forall.Var); err == nil {
				return true
			}
		}
	}
	return false
}

// matchAgainstProven tries every proven fact as a one-sided pattern
// against goal; a match means an instance of that fact proves goal
// directly (e.g. proven "x=x" matches goal "0=0" with x -> 0).
func (d *Driver) matchAgainstProven(g, topGoal term.Term) bool {
	for _, proven := range d.store.ProvenTerms() {
		bindings, ok := match.Match(proven, g)
		if !ok {
			continue
		}
		instantiated := d.store.Intern(match.Apply(proven, bindings))
		parent, _ := d.store.GetProvenance(proven)
		d.store.MarkProven(instantiated, kb.Provenance{
			Method:       fmt.Sprintf("Instance of %s", parent.Method),
			Dependencies: []term.Term{proven},
		})
		d.log.Debug("proven by match", zap.String("term", instantiated.String()), zap.String("pattern", proven.String()))
		if term.Equal(instantiated, topGoal) {
			return true
		}
	}
	return false
}

// backwardChain looks for proven implications whose consequent matches
// g; an instance of such an implication proves a new sub-goal (its
// antecedent) worth adding to the guess queue.
func (d *Driver) backwardChain(g term.Term, history map[string]struct{}) []term.Term {
	var fresh []term.Term
	countPerImplication := make(map[string]int)

	for _, proven := range d.store.ProvenTerms() {
		impl, ok := proven.(term.ImpliesTerm)
		if !ok {
			continue
		}
		key := impl.String()
		if countPerImplication[key] >= maxGuessesPerImplication {
			continue
		}

		bindings, ok := match.Match(impl.Right, g)
		if !ok {
			continue
		}
		instantiated := d.store.Intern(match.Apply(impl, bindings))
		instantiatedImpl, ok := instantiated.(term.ImpliesTerm)
		if !ok {
			continue
		}

		parent, _ := d.store.GetProvenance(proven)
		if !isSchemaOrAxiom(parent.Method) {
			continue
		}

		d.store.MarkProven(instantiated, kb.Provenance{
			Method:       fmt.Sprintf("Instance of %s", parent.Method),
			Dependencies: []term.Term{proven},
		})

		antecedent := instantiatedImpl.Left
		if _, seen := history[antecedent.String()]; seen {
			continue
		}
		history[antecedent.String()] = struct{}{}
		countPerImplication[key]++
		fresh = append(fresh, antecedent)
		d.log.Debug("backward guess", zap.String("antecedent", antecedent.String()), zap.String("from", proven.String()))
	}
	return fresh
}

// forwardChain tries every (proven implication, proven fact) pair: if
// the implication's antecedent matches the fact under some binding,
// substituting that binding through the whole implication and applying
// Modus Ponens may derive a new theorem. Returns (proved, timedOut).
func (d *Driver) forwardChain(ctx context.Context, goal term.Term) (bool, bool) {
	facts := d.store.ProvenTerms()
	var implications []term.ImpliesTerm
	for _, f := range facts {
		if impl, ok := f.(term.ImpliesTerm); ok {
			implications = append(implications, impl)
		}
	}

	iterations := 0
	for _, imp := range implications {
		for _, fact := range facts {
			iterations++
			if iterations%forwardTimeoutCheckEvery == 0 {
				select {
				case <-ctx.Done():
					return false, true
				default:
				}
			}

			bindings, ok := match.Match(imp.Left, fact)
			if !ok {
				continue
			}
			substituted := match.Apply(imp, bindings)
			substitutedImpl, ok := substituted.(term.ImpliesTerm)
			if !ok || !term.Equal(substitutedImpl.Left, fact) {
				continue
			}

			substitutedImpl = d.store.Intern(substitutedImpl).(term.ImpliesTerm)
			consequent, err := d.kernel.ModusPonens(substitutedImpl, fact)
			if err != nil {
				continue
			}
			d.log.Debug("forward derived", zap.String("term", consequent.String()))
			if term.Equal(consequent, goal) {
				return true, false
			}
		}
	}
	return false, false
}

func isSchemaOrAxiom(method string) bool {
	return containsSubstring(method, "Axiom") || containsSubstring(method, "Schema")
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// sampleByComplexity keeps the max simplest guesses, biasing the search
// toward smaller goals first (the originating driver's tie-breaking
// heuristic for bounding queue growth).
func sampleByComplexity(guesses []term.Term, max int) []term.Term {
	if len(guesses) <= max {
		return guesses
	}
	sorted := make([]term.Term, len(guesses))
	copy(sorted, guesses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return term.Complexity(sorted[i]) < term.Complexity(sorted[j])
	})
	return sorted[:max]
}
