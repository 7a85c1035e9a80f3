package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/stats"
	"github.com/wonny/brownian/internal/variate"
)

var generateLen int

// variateHeadRows is how many variates stage 1 echoes before "... (N more)"
const variateHeadRows = 10

// generateCmd represents stage 1
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Stage 1: generate standard-normal variates into RNG.txt",
	Long: `Draws len independent standard-normal variates in parallel.

Each worker owns its own pseudo-random stream. Raw draws are rescaled to (0,1),
clamped into [0.0001, 0.9999] and mapped through the inverse normal CDF.
Without --seed (or GBM_SEED) every run produces a different series.

The length is read from standard input unless --len is given.

Example:
  echo 1000 | gbm generate
  gbm generate --len 252 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateLen, "len", 0, "number of variates (1-100000), read from stdin when omitted")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	env, err := newSharedEnv(cmd)
	if err != nil {
		return err
	}

	n := generateLen
	if !cmd.Flags().Changed("len") {
		env.out.Prompt("Enter length : ")
		if n, err = readInt(env.in, "length"); err != nil {
			return err
		}
	}

	return generateStage(env, n)
}

func generateStage(env *sharedEnv, n int) error {
	r := env.begin(1, "generate")

	if err := contracts.ValidateLength(n); err != nil {
		return r.end(0, err)
	}

	gen := variate.NewGenerator(variate.Config{
		Workers: r.cfg.Simulation.Workers,
		Seed:    r.cfg.Simulation.Seed,
	}, r.log)

	series, err := gen.Generate(n)
	if err != nil {
		return r.end(0, err)
	}

	r.out.Head("Generated random numbers", series, variateHeadRows, func(i int, v float64) string {
		return fmt.Sprintf("[%d]: %.6f", i, v)
	})

	if err := r.store.Write(contracts.ArtifactVariates, series); err != nil {
		return r.end(0, err)
	}

	r.out.Summary(stats.Summarize(series))
	r.out.println()
	r.out.Success(fmt.Sprintf("Generated %s random numbers and saved to %s",
		humanize.Comma(int64(n)), r.store.Path(contracts.ArtifactVariates)))
	r.out.Info("File format: one number per line (scientific notation)")

	return r.end(n, nil)
}
