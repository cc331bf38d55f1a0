// Package match implements one-sided first-order matching of a pattern
// term against a ground target term: pattern variables bind freely, the
// target is treated as ground for the purposes of the match.
//
// This is deliberately not unification — the target never contributes
// bindings, and no occurs-check is needed because a target can never
// introduce a variable-for-variable cycle. See recursiveMatch for the two
// places this asymmetry matters (logic-variable schemas binding to whole
// compound formulas, numeric variables restricted to numeric targets).
package match

import (
	"fmt"
	"sort"

	"github.com/gitrdm/peanoprove/pkg/term"
)

// Bindings maps pattern variable names to the terms they matched.
type Bindings map[string]term.Term

// Match attempts to match pattern against target. It returns the
// resulting bindings and true on success, or (nil, false) on any
// mismatch. Match never panics on a mismatch — sort violations in a new
// binding are ordinary match failures, not errors (spec §4.1, §7).
func Match(pattern, target term.Term) (Bindings, bool) {
	bindings := Bindings{}
	if recursiveMatch(pattern, target, bindings) {
		return bindings, true
	}
	return nil, false
}

func recursiveMatch(p, t term.Term, bindings Bindings) bool {
	if name, ok := term.VarName(p); ok {
		if existing, bound := bindings[name]; bound {
			return term.Equal(existing, t)
		}
		switch p.(type) {
		case term.NumericVarTerm:
			if t.Sort() != term.Numeric {
				return false
			}
		case term.LogicVarTerm:
			// A logic-variable pattern accepts any logical expression,
			// including compound formulas — this is what makes axiom
			// schemas instantiable against arbitrary proven sentences.
			if t.Sort() != term.Logic {
				return false
			}
		}
		bindings[name] = t
		return true
	}

	switch pn := p.(type) {
	case term.ZeroTerm:
		_, ok := t.(term.ZeroTerm)
		return ok
	case term.SuccessorTerm:
		tn, ok := t.(term.SuccessorTerm)
		return ok && recursiveMatch(pn.Operand, tn.Operand, bindings)
	case term.AddTerm:
		tn, ok := t.(term.AddTerm)
		return ok && recursiveMatch(pn.Left, tn.Left, bindings) && recursiveMatch(pn.Right, tn.Right, bindings)
	case term.MultiplyTerm:
		tn, ok := t.(term.MultiplyTerm)
		return ok && recursiveMatch(pn.Left, tn.Left, bindings) && recursiveMatch(pn.Right, tn.Right, bindings)
	case term.EqualsTerm:
		tn, ok := t.(term.EqualsTerm)
		return ok && recursiveMatch(pn.Left, tn.Left, bindings) && recursiveMatch(pn.Right, tn.Right, bindings)
	case term.NotTerm:
		tn, ok := t.(term.NotTerm)
		return ok && recursiveMatch(pn.Operand, tn.Operand, bindings)
	case term.ImpliesTerm:
		tn, ok := t.(term.ImpliesTerm)
		return ok && recursiveMatch(pn.Left, tn.Left, bindings) && recursiveMatch(pn.Right, tn.Right, bindings)
	case term.ForallTerm:
		tn, ok := t.(term.ForallTerm)
		if !ok {
			return false
		}
		// The pattern's quantifier variable is matched as an ordinary
		// pattern variable, binding its name to the target's bound
		// variable. This is convenient but not capture-safe under
		// substitution; callers that instantiate bindings obtained
		// this way must treat the result conservatively (see spec's
		// Open Questions).
		if !recursiveMatch(pn.Var, tn.Var, bindings) {
			return false
		}
		return recursiveMatch(pn.Body, tn.Body, bindings)
	default:
		return false
	}
}

// Apply substitutes every binding into pattern, one name at a time in
// sorted name order. Each bound name is first replaced by a placeholder
// variable and each placeholder then by its binding, so the result
// equals simultaneous substitution: a replacement that mentions another
// bound name is not rewritten again.
func Apply(pattern term.Term, bindings Bindings) term.Term {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	holeName := func(i int) string { return fmt.Sprintf("\x00%d", i) }
	current := pattern
	for i, name := range names {
		var hole term.Term = term.NumericVar(holeName(i))
		if bindings[name].Sort() == term.Logic {
			hole = term.LogicVar(holeName(i))
		}
		current = current.Substitute(name, hole)
	}
	for i, name := range names {
		current = current.Substitute(holeName(i), bindings[name])
	}
	return current
}
