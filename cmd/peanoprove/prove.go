package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/peanoprove/internal/parser"
	"github.com/gitrdm/peanoprove/pkg/kb"
	"github.com/gitrdm/peanoprove/pkg/kernel"
	"github.com/gitrdm/peanoprove/pkg/search"
)

var (
	proveMaxRounds int
	proveNoForward bool
)

var proveCmd = &cobra.Command{
	Use:   "prove <formula>",
	Short: "Attempt to prove a formula against the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE:  runProve,
}

func init() {
	proveCmd.Flags().IntVar(&proveMaxRounds, "max-rounds", 0, "override the configured max search rounds")
	proveCmd.Flags().BoolVar(&proveNoForward, "no-forward", false, "disable forward chaining (backward-only search)")
	rootCmd.AddCommand(proveCmd)
}

func runProve(cmd *cobra.Command, args []string) error {
	goal, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	store, db, err := kb.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	k := kernel.New(store, logger)
	driver := search.New(store, k, logger)

	maxRounds := cfg.Search.MaxRounds
	if proveMaxRounds > 0 {
		maxRounds = proveMaxRounds
	}
	enableForward := cfg.Search.EnableForward && !proveNoForward

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SearchTimeout())
	defer cancel()

	fmt.Printf("Goal: %s\n", goal)
	result := driver.Prove(ctx, goal, maxRounds, enableForward)
	if result.Proved {
		fmt.Printf("Success! Goal proven after %d round(s).\n", result.Rounds+1)
	} else {
		fmt.Printf("Failed to prove goal (%s) after %d round(s).\n", result.Reason, result.Rounds)
	}

	if err := kb.Save(db, store); err != nil {
		return fmt.Errorf("saving knowledge base: %w", err)
	}

	logger.Debug("prove finished", zap.Bool("proved", result.Proved), zap.Int("rounds", result.Rounds))
	return nil
}
