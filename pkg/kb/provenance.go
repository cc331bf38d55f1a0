package kb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/peanoprove/pkg/term"
)

// Provenance records why a term is proven: the inference method that
// produced it, the interned terms it depends on, and optional auxiliary
// metadata (bound variables, substitution replacements, and so on).
//
// ProofID is additive to the logical contract in spec.md: a stable UUID
// stamped at assertion time and persisted with the proven row. The
// explain and inspect output do not show it; explain cross-references
// steps by number.
type Provenance struct {
	Method       string
	Dependencies []term.Term
	Metadata     map[string]string
	ProofID      string
}

// String renders a provenance the way the originating system does:
// "method(dep1, dep2, key=value, ...)", omitting the parenthesized part
// entirely when there are neither dependencies nor metadata.
func (p Provenance) String() string {
	var parts []string
	if len(p.Dependencies) > 0 {
		deps := make([]string, len(p.Dependencies))
		for i, d := range p.Dependencies {
			deps[i] = d.String()
		}
		parts = append(parts, strings.Join(deps, ", "))
	}
	if len(p.Metadata) > 0 {
		keys := sortedKeys(p.Metadata)
		meta := make([]string, len(keys))
		for i, k := range keys {
			meta[i] = fmt.Sprintf("%s=%s", k, p.Metadata[k])
		}
		parts = append(parts, strings.Join(meta, ", "))
	}
	if len(parts) == 0 {
		return p.Method
	}
	return fmt.Sprintf("%s(%s)", p.Method, strings.Join(parts, ", "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
