package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/scan"
	"github.com/wonny/brownian/internal/stats"
)

// scanCmd represents stage 2
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Stage 2: prefix-sum RNG.txt into the Wiener path RNG2.txt",
	Long: `Computes the inclusive prefix sum of the variates with a double-buffered,
log-depth parallel scan. Every pass is separated from the next by a barrier.

Requires RNG.txt from "gbm generate".

Example:
  gbm scan
  gbm scan --stage-dir ./run1 --workers 8`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	env, err := newSharedEnv(cmd)
	if err != nil {
		return err
	}
	return scanStage(env)
}

func scanStage(env *sharedEnv) error {
	r := env.begin(2, "scan")

	variates, err := r.store.Read(contracts.ArtifactVariates)
	if err != nil {
		return r.end(0, err)
	}
	r.out.Info(fmt.Sprintf("Read %s numbers from %s",
		humanize.Comma(int64(len(variates))), contracts.ArtifactVariates.Name))

	scanner := scan.NewScanner(r.cfg.Simulation.Workers, r.log)
	wiener, err := scanner.Scan(variates)
	if err != nil {
		return r.end(0, err)
	}

	r.out.Series("Computed prefix sums", wiener, r.cfg.Simulation.Preview, func(i int, v float64) string {
		return fmt.Sprintf("[%d]: %.12e", i, v)
	})

	if err := r.store.Write(contracts.ArtifactWiener, wiener); err != nil {
		return r.end(0, err)
	}

	r.out.Summary(stats.Summarize(wiener))
	r.out.println()
	r.out.Success(fmt.Sprintf("Computed prefix sums (%d passes) and saved to %s",
		scan.Passes(len(wiener)), r.store.Path(contracts.ArtifactWiener)))

	return r.end(len(wiener), nil)
}
