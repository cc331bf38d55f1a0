// Package render formats proven terms as numbered derivations: a
// topologically sorted, dependency-first listing with each step's
// proof method and any step it was derived from cross-referenced by
// number rather than by repeating the dependency's full text.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/term"
)

// Step is one numbered line of a rendered derivation.
type Step struct {
	Number int
	Term   term.Term
	Reason string
}

// Explain builds the dependency-ordered derivation of target, or nil if
// target is not proven in store.
func Explain(store *kb.Store, target term.Term) []Step {
	if !store.IsProven(target) {
		return nil
	}

	order := topologicalSort(store, target)
	stepNumber := make(map[string]int, len(order))
	for i, node := range order {
		stepNumber[node.String()] = i + 1
	}

	steps := make([]Step, 0, len(order))
	for i, node := range order {
		prov, ok := store.GetProvenance(node)
		reason := "Unknown Origin"
		if ok {
			reason = formatReason(prov, stepNumber)
		}
		steps = append(steps, Step{Number: i + 1, Term: node, Reason: reason})
	}
	return steps
}

// String renders steps the way the originating explain utility prints
// to the console: "N. term\n   Reason: ...".
func String(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", s.Number, s.Term)
		fmt.Fprintf(&b, "   Reason: %s\n\n", s.Reason)
	}
	return b.String()
}

func formatReason(prov kb.Provenance, stepNumber map[string]int) string {
	reason := prov.Method

	if len(prov.Dependencies) > 0 {
		refs := make([]string, len(prov.Dependencies))
		for i, dep := range prov.Dependencies {
			if n, ok := stepNumber[dep.String()]; ok {
				refs[i] = fmt.Sprintf("#%d", n)
			} else {
				refs[i] = dep.String()
			}
		}
		reason += fmt.Sprintf(" using %s", strings.Join(refs, ", "))
	}

	if len(prov.Metadata) > 0 {
		keys := make([]string, 0, len(prov.Metadata))
		for k := range prov.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		formatted := make([]string, len(keys))
		for i, k := range keys {
			formatted[i] = fmt.Sprintf("%s: %s", k, prov.Metadata[k])
		}
		reason += fmt.Sprintf(" [%s]", strings.Join(formatted, ", "))
	}

	return reason
}

// topologicalSort walks target's provenance dependencies depth-first,
// emitting each node only after all of its dependencies, matching the
// reference explain utility's traversal order exactly (dependencies in
// their recorded order, current node appended after they return).
func topologicalSort(store *kb.Store, target term.Term) []term.Term {
	visited := make(map[string]struct{})
	var order []term.Term

	var visit func(node term.Term)
	visit = func(node term.Term) {
		key := node.String()
		if _, ok := visited[key]; ok {
			return
		}
		visited[key] = struct{}{}

		if prov, ok := store.GetProvenance(node); ok {
			for _, dep := range prov.Dependencies {
				visit(dep)
			}
		}
		order = append(order, node)
	}

	visit(target)
	return order
}
