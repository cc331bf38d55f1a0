package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/peanoprove/internal/parser"
	"github.com/gitrdm/peanoprove/internal/render"
	"github.com/gitrdm/peanoprove/pkg/kb"
)

var explainCmd = &cobra.Command{
	Use:   "explain <formula>",
	Short: "Print the dependency-ordered derivation of a proven formula",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	target, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	store, db, err := kb.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	target = store.Intern(target)
	if !store.IsProven(target) {
		fmt.Printf("Sentence %q is NOT proven in the current knowledge base.\n", target)
		fmt.Println("Try running 'peanoprove prove' first.")
		return nil
	}

	fmt.Printf("Proof Explanation for: %s\n\n", target)
	steps := render.Explain(store, target)
	fmt.Print(render.String(steps))
	return nil
}
