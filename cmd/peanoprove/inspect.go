package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/peanoprove/pkg/kb"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List every proven sentence in the knowledge base with its provenance",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	store, db, err := kb.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("--- Proven Sentences ---")
	for _, sentence := range store.ProvenTerms() {
		prov, _ := store.GetProvenance(sentence)
		fmt.Printf("[%s] %s\n", prov, sentence)
	}
	return nil
}
