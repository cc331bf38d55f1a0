// Package kb implements the knowledge base: a hash-consing interning
// store for terms plus a monotone, first-proof-wins proven set with
// recorded provenance, and durable save/load to a sqlite-backed file.
package kb

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gitrdm/peanoprove/pkg/term"
)

// Store is the content-addressed term store and proven-sentence map
// described in spec §3.4/§3.5. All terms that enter the kernel or the
// search driver are interned through it first, which is what lets
// pointer/identity comparisons on string-rendered keys stand in for
// full structural equality.
//
// Store is safe for concurrent use: callers that build a multi-threaded
// driver on top of it (spec §5's "single-writer, multi-reader lock" note)
// get that for free from the embedded RWMutex, mirroring the locking
// discipline the teacher package applies to every shared structure.
type Store struct {
	mu          sync.RWMutex
	nodes       map[string]term.Term // rendering -> canonical term
	proven      map[string]Provenance
	provenOrder []string // keys in first-proof order, for ProvenTerms
	log         *zap.Logger
}

// New creates an empty Store. A nil logger is replaced with a no-op
// logger, matching the ambient-logging convention used across this
// module's packages.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		nodes:  make(map[string]term.Term),
		proven: make(map[string]Provenance),
		log:    logger,
	}
}

// renderKey is the hash-cons key: two structurally equal terms always
// render identically (term.Surface is a pure function of structure), so
// the ASCII surface rendering doubles as the canonical content address
// without a separate hashing scheme. Surface (not the display-oriented
// String) is used here so the same key also round-trips through
// internal/parser when persisted — see persist.go.
func renderKey(t term.Term) string {
	return term.Surface(t)
}

// Intern returns the canonical representative for t, inserting it if
// this is the first time an structurally-equal term has been seen.
func (s *Store) Intern(t term.Term) term.Term {
	key := renderKey(t)

	s.mu.RLock()
	if canonical, ok := s.nodes[key]; ok {
		s.mu.RUnlock()
		return canonical
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if canonical, ok := s.nodes[key]; ok {
		return canonical
	}
	s.nodes[key] = t
	return t
}

// MarkProven records t as proven with the given provenance, interning t
// first. First-proof-wins: if t is already proven, the call is a no-op
// and the original provenance is kept (spec §3.5).
//
// MarkProven does not itself check that every dependency in provenance
// is already proven — that precondition is left to the callers that
// construct the provenance: the kernel operations (see pkg/kernel), the
// search driver when it records instances of proven facts, load, and the
// init commands.
func (s *Store) MarkProven(t term.Term, provenance Provenance) term.Term {
	canonical := s.Intern(t)
	key := renderKey(canonical)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, already := s.proven[key]; already {
		s.log.Debug("mark-proven ignored: already proven", zap.String("term", key))
		return canonical
	}
	if provenance.ProofID == "" {
		provenance.ProofID = uuid.NewString()
	}
	s.proven[key] = provenance
	s.provenOrder = append(s.provenOrder, key)
	s.log.Debug("marked proven",
		zap.String("term", key),
		zap.String("method", provenance.Method),
		zap.String("proof_id", provenance.ProofID),
	)
	return canonical
}

// IsProven reports whether t (or its structural equal) is proven.
func (s *Store) IsProven(t term.Term) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.proven[renderKey(t)]
	return ok
}

// GetProvenance returns the provenance recorded for t, if any.
func (s *Store) GetProvenance(t term.Term) (Provenance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.proven[renderKey(t)]
	return p, ok
}

// ProvenTerms returns every proven term in insertion order — the order
// each was first marked proven — for callers that need a deterministic
// snapshot to iterate over without racing a concurrent MarkProven (spec
// §4.3's "iteration over the proven set uses a deterministic order
// (insertion order)", matching the originating implementation's
// insertion-ordered dict). This order, not an alphabetical one, is what
// the search driver's round/guess-queue caps rely on for reproducible
// results.
func (s *Store) ProvenTerms() []term.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]term.Term, 0, len(s.provenOrder))
	for _, key := range s.provenOrder {
		out = append(out, s.nodes[key])
	}
	return out
}

// Len reports how many distinct terms have been interned.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// ProvenCount reports how many terms are proven.
func (s *Store) ProvenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.proven)
}

// lookupByRendering finds a previously interned term by its rendering.
// Nothing in this package calls it; load in persist.go
// resolves dependencies through its own term_id map. Returns an error
// rather than (nil, false) because a
// missing dependency at load time indicates a corrupt or hand-edited KB
// file, which is a storage I/O-adjacent error per spec §7, not a normal
// lookup miss.
func (s *Store) lookupByRendering(rendering string) (term.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.nodes[rendering]
	if !ok {
		return nil, fmt.Errorf("kb: no interned term renders as %q", rendering)
	}
	return t, nil
}
