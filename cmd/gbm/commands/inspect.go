package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/staging"
	"github.com/wonny/brownian/internal/stats"
)

// inspectCmd summarises staging artifacts
var inspectCmd = &cobra.Command{
	Use:   "inspect [artifact...]",
	Short: "Summarise staging artifacts",
	Long: `Reads staging artifacts and prints count, size and summary statistics.
Without arguments all three artifacts are inspected; missing ones are listed
with the stage that produces them.

Example:
  gbm inspect
  gbm inspect StockPrice.txt --stage-dir ./run1`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	env, err := newSharedEnv(cmd)
	if err != nil {
		return err
	}

	artifacts := contracts.Artifacts()
	if len(args) > 0 {
		artifacts = nil
		for _, name := range args {
			a, ok := contracts.LookupArtifact(name)
			if !ok {
				return fmt.Errorf("%w: unknown artifact %q (want RNG.txt, RNG2.txt or StockPrice.txt)",
					contracts.ErrInvalidInput, name)
			}
			artifacts = append(artifacts, a)
		}
	}

	store := staging.NewStore(env.cfg.Simulation.StageDir, env.log)
	widths := []int{15, 14, 9, 9, 14, 14, 14}

	env.out.println()
	env.out.TableHeader([]string{"Artifact", "Content", "Count", "Size", "Min", "Max", "Last"}, widths)

	var errs []error
	for _, a := range artifacts {
		if !store.Exists(a) {
			env.out.TableRow([]string{a.Name, a.Content, "-", "-", "missing, run \"gbm " + a.Producer + "\""}, widths[:5])
			continue
		}

		values, err := store.Read(a)
		if err != nil {
			env.out.TableRow([]string{a.Name, a.Content, "-", "-", "invalid"}, widths[:5])
			errs = append(errs, err)
			continue
		}

		size := "-"
		if info, err := os.Stat(store.Path(a)); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}

		s := stats.Summarize(values)
		env.out.TableRow([]string{
			a.Name,
			a.Content,
			humanize.Comma(int64(s.Count)),
			size,
			fmt.Sprintf("%.6e", s.Min),
			fmt.Sprintf("%.6e", s.Max),
			fmt.Sprintf("%.6e", s.Last),
		}, widths)
	}

	return errors.Join(errs...)
}
