package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/brownian/pkg/config"
)

var (
	// Global flags
	stageDir string
	workers  int
	seed     uint64
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gbm",
	Short: "Geometric Brownian Motion price path simulator",
	Long: `gbm simulates a single asset price path under Geometric Brownian Motion.

Three stages, each a separate run, exchange plain-text artifacts:
  1. generate  standard-normal variates          → RNG.txt
  2. scan      parallel prefix sum (Wiener path) → RNG2.txt
  3. evaluate  closed-form GBM price path        → StockPrice.txt

Usage:
  gbm [command]

Examples:
  echo 252 | gbm generate
  gbm scan
  gbm evaluate --drift 10 --volatility 20 --s0 100
  gbm pipeline --len 252 --drift 10 --volatility 20 --s0 100
  gbm inspect StockPrice.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		NewPrinter(cmd.ErrOrStderr()).Error(err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stageDir, "stage-dir", "", "directory for staging artifacts (default $GBM_STAGE_DIR or .)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "fork-join worker count (default $GBM_WORKERS or NumCPU)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "generator base seed, 0 = wall clock (default $GBM_SEED)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the environment and applies explicitly set global flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("stage-dir") {
		cfg.Simulation.StageDir = stageDir
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers = workers
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
