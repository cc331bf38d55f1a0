package kb

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gitrdm/peanoprove/internal/parser"
	"github.com/gitrdm/peanoprove/pkg/term"
)

const schema = `
CREATE TABLE IF NOT EXISTS terms (
	id   INTEGER PRIMARY KEY,
	text TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS proven (
	term_id      INTEGER PRIMARY KEY REFERENCES terms(id),
	method       TEXT NOT NULL,
	dependencies TEXT NOT NULL,
	metadata     TEXT NOT NULL,
	proof_id     TEXT NOT NULL,
	seq          INTEGER NOT NULL
);
`

// Open opens (creating if necessary) a sqlite-backed knowledge base file
// at path and loads its contents into a fresh Store. Passing ":memory:"
// gives an ephemeral database, used by this package's tests.
func Open(path string, logger *zap.Logger) (*Store, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("kb: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("kb: create schema: %w", err)
	}
	if err := migrateLegacy(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("kb: legacy migration: %w", err)
	}

	store := New(logger)
	if err := load(db, store); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("kb: load: %w", err)
	}
	return store, db, nil
}

// load reads every row of terms and proven back into store, in two
// passes: terms first (so dependency term_ids resolve), then proven
// rows (so MarkProven sees already-interned dependency terms).
func load(db *sql.DB, store *Store) error {
	idToTerm := make(map[int64]term.Term)

	rows, err := db.Query(`SELECT id, text FROM terms`)
	if err != nil {
		return err
	}
	func() {
		defer rows.Close()
		for rows.Next() {
			var id int64
			var text string
			if err := rows.Scan(&id, &text); err != nil {
				continue
			}
			t, perr := parser.Parse(text)
			if perr != nil {
				continue
			}
			idToTerm[id] = store.Intern(t)
		}
	}()

	// Ordered by seq, not term_id (term_id is the rowid and sorts
	// numerically, which is unrelated to proof order): this is what lets
	// store.MarkProven calls below rebuild provenOrder in the exact order
	// the sentences were originally proven, so search results stay
	// reproducible across a save/reload cycle (spec §4.3).
	provenRows, err := db.Query(`SELECT term_id, method, dependencies, metadata, proof_id FROM proven ORDER BY seq`)
	if err != nil {
		return err
	}
	defer provenRows.Close()
	for provenRows.Next() {
		var termID int64
		var method, depsJSON, metaJSON, proofID string
		if err := provenRows.Scan(&termID, &method, &depsJSON, &metaJSON, &proofID); err != nil {
			return err
		}
		t, ok := idToTerm[termID]
		if !ok {
			return fmt.Errorf("proven row references unknown term_id %d", termID)
		}

		var depIDs []int64
		if err := json.Unmarshal([]byte(depsJSON), &depIDs); err != nil {
			return fmt.Errorf("decode dependencies for term_id %d: %w", termID, err)
		}
		deps := make([]term.Term, 0, len(depIDs))
		for _, depID := range depIDs {
			dep, ok := idToTerm[depID]
			if !ok {
				return fmt.Errorf("dependency term_id %d not found", depID)
			}
			deps = append(deps, dep)
		}

		var metadata map[string]string
		if err := json.Unmarshal([]byte(metaJSON), &metadata); err != nil {
			return fmt.Errorf("decode metadata for term_id %d: %w", termID, err)
		}

		store.MarkProven(t, Provenance{
			Method:       method,
			Dependencies: deps,
			Metadata:     metadata,
			ProofID:      proofID,
		})
	}
	return nil
}

// Save writes the entire contents of store to db, overwriting existing
// rows. This is a full dump rather than an incremental write: proof
// sessions are short-lived CLI invocations (spec §1's driver is a single
// synchronous loop, not a long-running server), so a full rewrite on
// exit is simple and cheap enough.
func Save(db *sql.DB, store *Store) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM proven`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM terms`); err != nil {
		return err
	}

	store.mu.RLock()
	nodes := make(map[string]term.Term, len(store.nodes))
	for k, v := range store.nodes {
		nodes[k] = v
	}
	proven := make(map[string]Provenance, len(store.proven))
	for k, v := range store.proven {
		proven[k] = v
	}
	provenOrder := make([]string, len(store.provenOrder))
	copy(provenOrder, store.provenOrder)
	store.mu.RUnlock()

	termID := make(map[string]int64, len(nodes))
	insertTerm, err := tx.Prepare(`INSERT INTO terms(text) VALUES (?)`)
	if err != nil {
		return err
	}
	for key, t := range nodes {
		// term.Surface, not String: the stored text must round-trip
		// through internal/parser.Parse on load, and only the ASCII
		// surface rendering does (String's unicode math notation is
		// display-only and the parser does not accept it).
		surface := term.Surface(t)
		res, err := insertTerm.Exec(surface)
		if err != nil {
			return fmt.Errorf("insert term %q: %w", surface, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		termID[key] = id
	}

	insertProven, err := tx.Prepare(`INSERT INTO proven(term_id, method, dependencies, metadata, proof_id, seq) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	for seq, key := range provenOrder {
		p, ok := proven[key]
		if !ok {
			continue
		}
		id, ok := termID[key]
		if !ok {
			return fmt.Errorf("proven term %q was never interned", key)
		}

		depIDs := make([]int64, 0, len(p.Dependencies))
		for _, dep := range p.Dependencies {
			depKey := renderKey(dep)
			depID, ok := termID[depKey]
			if !ok {
				return fmt.Errorf("dependency %q of proven term %q was never interned", depKey, key)
			}
			depIDs = append(depIDs, depID)
		}
		depsJSON, err := json.Marshal(depIDs)
		if err != nil {
			return err
		}
		if p.Metadata == nil {
			p.Metadata = map[string]string{}
		}
		metaJSON, err := json.Marshal(p.Metadata)
		if err != nil {
			return err
		}

		if _, err := insertProven.Exec(id, p.Method, string(depsJSON), string(metaJSON), p.ProofID, seq); err != nil {
			return fmt.Errorf("insert proven row for %q: %w", key, err)
		}
	}

	return tx.Commit()
}

// migrateLegacy upgrades a KB file created before provenance tracking
// existed: a bare legacy_proven(term_id) table with no method/dependency
// information. Every entry becomes a "Legacy Axiom" with no recorded
// dependencies, matching spec §6's migration rule.
func migrateLegacy(db *sql.DB) error {
	var exists int
	err := db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='legacy_proven'`).Scan(&exists)
	if err != nil || exists == 0 {
		return nil
	}

	var provenExists int
	if err := db.QueryRow(`SELECT count(*) FROM proven`).Scan(&provenExists); err != nil {
		return err
	}
	if provenExists > 0 {
		return nil
	}

	rows, err := db.Query(`SELECT term_id FROM legacy_proven`)
	if err != nil {
		return err
	}
	defer rows.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert, err := tx.Prepare(`INSERT INTO proven(term_id, method, dependencies, metadata, proof_id, seq) VALUES (?, 'Legacy Axiom', '[]', '{}', ?, ?)`)
	if err != nil {
		return err
	}
	seq := 0
	for rows.Next() {
		var termID int64
		if err := rows.Scan(&termID); err != nil {
			return err
		}
		if _, err := insert.Exec(termID, uuid.NewString(), seq); err != nil {
			return err
		}
		seq++
	}
	if _, err := tx.Exec(`DROP TABLE legacy_proven`); err != nil {
		return err
	}
	return tx.Commit()
}
