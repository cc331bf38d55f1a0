package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/term"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Assert a family of axioms into the knowledge base",
}

var initLogicCmd = &cobra.Command{
	Use:   "logic",
	Short: "Assert the Logic L1-L3 axiom schemas over variables A, B, C",
	RunE:  runInitLogic,
}

var initPeanoCmd = &cobra.Command{
	Use:   "peano",
	Short: "Assert the Peano P1-P7 axiom schemas over variables X, Y",
	RunE:  runInitPeano,
}

func init() {
	initCmd.AddCommand(initLogicCmd)
	initCmd.AddCommand(initPeanoCmd)
	rootCmd.AddCommand(initCmd)
}

func runInitLogic(cmd *cobra.Command, args []string) error {
	store, db, err := kb.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	a := store.Intern(term.LogicVar("A"))
	b := store.Intern(term.LogicVar("B"))
	c := store.Intern(term.LogicVar("C"))

	ax1 := store.Intern(term.Implies(a, store.Intern(term.Implies(b, a))))
	aImpliesB := store.Intern(term.Implies(a, b))
	aImpliesC := store.Intern(term.Implies(a, c))
	bImpliesC := store.Intern(term.Implies(b, c))
	aImpliesBtC := store.Intern(term.Implies(a, bImpliesC))
	ax2 := store.Intern(term.Implies(aImpliesBtC, store.Intern(term.Implies(aImpliesB, aImpliesC))))
	notA := store.Intern(term.Not(a))
	notB := store.Intern(term.Not(b))
	notAImpliesNotB := store.Intern(term.Implies(notA, notB))
	bImpliesA := store.Intern(term.Implies(b, a))
	ax3 := store.Intern(term.Implies(notAImpliesNotB, bImpliesA))

	fmt.Println("Marking axioms as proven...")
	for i, ax := range []term.Term{ax1, ax2, ax3} {
		fmt.Printf("%d. %s\n", i+1, ax)
		store.MarkProven(ax, kb.Provenance{Method: "Logic Axiom"})
	}

	return kb.Save(db, store)
}

func runInitPeano(cmd *cobra.Command, args []string) error {
	store, db, err := kb.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	x := store.Intern(term.NumericVar("X"))
	y := store.Intern(term.NumericVar("Y"))
	sx := store.Intern(term.Successor(x))
	sy := store.Intern(term.Successor(y))

	ax1 := store.Intern(term.Not(store.Intern(term.Equals(term.Zero, sx))))
	ax2 := store.Intern(term.Implies(store.Intern(term.Equals(sx, sy)), store.Intern(term.Equals(x, y))))
	ax3 := store.Intern(term.Equals(store.Intern(term.Add(x, term.Zero)), x))
	ax4 := store.Intern(term.Equals(store.Intern(term.Add(x, sy)), store.Intern(term.Successor(store.Intern(term.Add(x, y))))))
	ax5 := store.Intern(term.Equals(store.Intern(term.Multiply(x, term.Zero)), term.Zero))
	ax6 := store.Intern(term.Equals(store.Intern(term.Multiply(x, sy)), store.Intern(term.Add(store.Intern(term.Multiply(x, y)), x))))
	ax7 := store.Intern(term.Equals(x, x))

	fmt.Println("Marking Peano axioms as proven...")
	for i, ax := range []term.Term{ax1, ax2, ax3, ax4, ax5, ax6, ax7} {
		fmt.Printf("%d. %s\n", i+1, ax)
		store.MarkProven(ax, kb.Provenance{Method: "Peano Axiom"})
	}

	return kb.Save(db, store)
}
