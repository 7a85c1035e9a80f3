package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/gbm"
	"github.com/wonny/brownian/internal/stats"
)

var (
	// evaluate flags
	evalDrift      float64
	evalVolatility float64
	evalS0         float64
)

// evaluateCmd represents stage 3
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Stage 3: evaluate the GBM price path from RNG2.txt into StockPrice.txt",
	Long: `Evaluates S(t) = S0 · exp(drift_mean·t + volatility_day·W(t)) for every day.

Yearly drift and volatility are percentages:
  drift_day      = drift / (100·252)
  volatility_day = volatility / (100·√252)
  drift_mean     = drift_day − volatility_day²/2

Values not given as flags are read from standard input in the order
drift, volatility, initial price. Requires RNG2.txt from "gbm scan".

Example:
  printf '10\n20\n100\n' | gbm evaluate
  gbm evaluate --drift 10 --volatility 20 --s0 100`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().Float64Var(&evalDrift, "drift", 0, "yearly drift in percent")
	evaluateCmd.Flags().Float64Var(&evalVolatility, "volatility", 0, "yearly volatility in percent")
	evaluateCmd.Flags().Float64Var(&evalS0, "s0", 0, "initial price")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	env, err := newSharedEnv(cmd)
	if err != nil {
		return err
	}

	params := gbm.Parameters{
		DriftYear:      evalDrift,
		VolatilityYear: evalVolatility,
		S0:             evalS0,
	}

	// Only values not given as flags are read from stdin, in order
	inputs := []struct {
		flag   string
		prompt string
		dst    *float64
	}{
		{"drift", "Enter the yearly drift in percentage : ", &params.DriftYear},
		{"volatility", "Enter the yearly volatility in percentage : ", &params.VolatilityYear},
		{"s0", "Enter initial stock price : $", &params.S0},
	}

	for _, input := range inputs {
		if cmd.Flags().Changed(input.flag) {
			continue
		}
		env.out.Prompt(input.prompt)
		if *input.dst, err = readFloat(env.in, input.flag); err != nil {
			return err
		}
	}

	return evaluateStage(env, params)
}

func evaluateStage(env *sharedEnv, params gbm.Parameters) error {
	r := env.begin(3, "evaluate")

	r.out.println()
	r.out.println("Input values received:")
	r.out.KeyValue("Yearly drift", fmt.Sprintf("%.2f%%", params.DriftYear), 19)
	r.out.KeyValue("Yearly volatility", fmt.Sprintf("%.2f%%", params.VolatilityYear), 19)
	r.out.KeyValue("Initial stock price", fmt.Sprintf("$%.2f", params.S0), 19)

	if err := params.Validate(); err != nil {
		return r.end(0, err)
	}
	if params.NegativeVolatility() {
		r.out.Warning("Negative volatility has no economic meaning; the Wiener path is mirrored")
	}

	wiener, err := r.store.Read(contracts.ArtifactWiener)
	if err != nil {
		return r.end(0, err)
	}
	r.out.Info(fmt.Sprintf("Read %s prefix sum values from %s",
		humanize.Comma(int64(len(wiener))), contracts.ArtifactWiener.Name))

	d := params.Derive()
	r.out.KeyValue("Daily drift", fmt.Sprintf("%.6e", d.DriftDay), 19)
	r.out.KeyValue("Daily volatility", fmt.Sprintf("%.6e", d.VolatilityDay), 19)
	r.out.KeyValue("Adjusted drift mean", fmt.Sprintf("%.6e", d.DriftMean), 19)

	evaluator := gbm.NewEvaluator(r.cfg.Simulation.Workers, r.log)
	prices, err := evaluator.Evaluate(params, wiener)
	if err != nil {
		return r.end(0, err)
	}

	r.out.Series("Stock prices", prices, r.cfg.Simulation.Preview, func(i int, v float64) string {
		return fmt.Sprintf("Day %d: $%.2f", i, v)
	})

	if err := r.store.Write(contracts.ArtifactPrices, prices); err != nil {
		return r.end(0, err)
	}

	summary := stats.Summarize(prices)
	r.out.Summary(summary)
	r.out.KeyValue("Return", fmt.Sprintf("%.2f%%", summary.Return()*100), 8)
	r.out.println()
	r.out.Success(fmt.Sprintf("Stock prices calculated and saved to %s", r.store.Path(contracts.ArtifactPrices)))
	r.out.Info(fmt.Sprintf("Total days: %s", humanize.Comma(int64(len(prices)))))

	return r.end(len(prices), nil)
}
