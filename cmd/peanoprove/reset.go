package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the knowledge base file and re-assert the Logic and Peano axioms",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Resetting knowledge base ===")

	if _, err := os.Stat(cfg.Database.Path); err == nil {
		fmt.Printf("Deleting existing database: %s\n", cfg.Database.Path)
		if err := os.Remove(cfg.Database.Path); err != nil {
			return fmt.Errorf("removing database: %w", err)
		}
	} else {
		fmt.Println("No existing database found")
	}

	fmt.Println("\nInitializing Logic Axioms...")
	if err := runInitLogic(cmd, nil); err != nil {
		return err
	}

	fmt.Println("\nInitializing Peano Axioms...")
	if err := runInitPeano(cmd, nil); err != nil {
		return err
	}

	fmt.Println("\nDatabase reset complete.")
	return nil
}
