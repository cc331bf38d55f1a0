// Command peanoprove is a CLI front end for the term algebra, matcher,
// inference kernel, and proof search driver in this module: parse a
// formula, try to prove it against a durable knowledge base, and
// explain or inspect the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gitrdm/peanoprove/internal/config"
)

var (
	verbose  bool
	dbPath   string
	cfgPath  string
	cfg      *config.Config
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "peanoprove",
	Short: "An automated proof assistant for first-order logic over Peano arithmetic",
	Long: `peanoprove builds terms over a typed algebra (numeric expressions and
logic formulas), matches them one-sidedly against a knowledge base, and
searches for Hilbert-style derivations using Modus Ponens, Universal
Generalization, Substitution, and the Logic/Peano axiom schemas.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.Logging.Verbose {
			zapCfg.Level.SetLevel(zapcore.DebugLevel)
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the knowledge base file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "peanoprove.yaml", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
