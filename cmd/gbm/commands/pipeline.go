package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/brownian/internal/gbm"
)

var (
	// pipeline flags
	pipelineLen        int
	pipelineDrift      float64
	pipelineVolatility float64
	pipelineS0         float64
)

// pipelineCmd runs the three stages back to back
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run all three stages (generate → scan → evaluate)",
	Long: `Runs the three stages in order without prompting.

Stages still communicate only through RNG.txt and RNG2.txt; each stage reads
the artifact the previous one wrote, and a failing stage stops the pipeline.

Example:
  gbm pipeline --len 252 --drift 10 --volatility 20 --s0 100
  gbm pipeline --len 1000 --drift 5 --volatility 15 --s0 50 --seed 7 --stage-dir ./run1`,
	Args: cobra.NoArgs,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)

	pipelineCmd.Flags().IntVar(&pipelineLen, "len", 0, "number of simulated days (1-100000)")
	pipelineCmd.Flags().Float64Var(&pipelineDrift, "drift", 0, "yearly drift in percent")
	pipelineCmd.Flags().Float64Var(&pipelineVolatility, "volatility", 0, "yearly volatility in percent")
	pipelineCmd.Flags().Float64Var(&pipelineS0, "s0", 0, "initial price")

	for _, name := range []string{"len", "drift", "volatility", "s0"} {
		_ = pipelineCmd.MarkFlagRequired(name)
	}
}

func runPipeline(cmd *cobra.Command, args []string) error {
	env, err := newSharedEnv(cmd)
	if err != nil {
		return err
	}

	started := time.Now()

	if err := generateStage(env, pipelineLen); err != nil {
		return err
	}
	if err := scanStage(env); err != nil {
		return err
	}
	params := gbm.Parameters{
		DriftYear:      pipelineDrift,
		VolatilityYear: pipelineVolatility,
		S0:             pipelineS0,
	}
	if err := evaluateStage(env, params); err != nil {
		return err
	}

	env.out.println()
	env.out.Separator()
	env.out.Success("Pipeline completed in " + time.Since(started).Round(time.Millisecond).String())
	return nil
}
