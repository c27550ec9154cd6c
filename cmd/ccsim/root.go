package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccplag/ccsim/internal/config"
	"github.com/ccplag/ccsim/internal/logging"
)

var (
	cfgFile      string
	libclangFlag string
	ccflagsFlag  string
	verbose      bool
	workers      int

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ccsim",
	Short: "Structural similarity detector for C++ function bodies",
	Long: `ccsim compares C++ function bodies for structural similarity using a
normalized AST model and a weighted, coercion-aware comparison: useful for
spotting copy-paste reuse across a corpus, not for semantic equivalence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}

		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if libclangFlag != "" {
			cfg.SetLibclangPath(libclangFlag)
		}
		if ccflagsFlag != "" {
			cfg.SetCompileArgs(strings.Fields(ccflagsFlag))
		}
		if workers > 0 {
			cfg.SetWorkers(workers)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to .ccsim.yaml")
	rootCmd.PersistentFlags().StringVar(&libclangFlag, "libclang", "", "Path to libclang shared library (overrides LIBCLANG)")
	rootCmd.PersistentFlags().StringVar(&ccflagsFlag, "ccflags", "", "Space-separated Clang compile flags (overrides CCFLAGS)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker count for compare mode (0 = config default)")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(compareCmd)
}
