package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newHarness returns the --db/--config flag pair for a fresh database and
// config file rooted under t.TempDir(), so each test gets an isolated store.
func newHarness(t *testing.T) []string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "kb.sqlite")
	cfgPath := filepath.Join(t.TempDir(), "peanoprove.yaml")
	return []string{"--db", dbPath, "--config", cfgPath}
}

// runCLI executes rootCmd with args appended to base, returning what
// cobra itself wrote (usage and error text). The subcommands print their
// results with fmt to the process's stdout, which is not captured here.
func runCLI(t *testing.T, base []string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(append([]string{}, base...), args...))

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestEndToEndInitLogicThenProveIdentity(t *testing.T) {
	base := newHarness(t)

	runCLI(t, base, "init", "logic")
	runCLI(t, base, "prove", "P->P", "--max-rounds", "10")
}

func TestEndToEndInitPeanoThenExplainReflexivity(t *testing.T) {
	base := newHarness(t)

	runCLI(t, base, "init", "peano")
	runCLI(t, base, "prove", "0=0", "--max-rounds", "5")
	runCLI(t, base, "explain", "0=0")
}

func TestEndToEndResetClearsAndReinitializes(t *testing.T) {
	base := newHarness(t)

	runCLI(t, base, "init", "logic")
	runCLI(t, base, "reset")
	runCLI(t, base, "inspect")
}
