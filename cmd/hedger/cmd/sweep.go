package cmd

import (
	"fmt"

	"github.com/rustyeddy/hedger/hedge"
	"github.com/rustyeddy/hedger/report"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare hedged and unhedged value over a range of exit rates",
	Long: `Hold the investment and entry rate fixed and evaluate every exit rate
from --from to --to in --step increments. The hedge size does not change
across the sweep; only the futures P&L does.

Without --from/--to the sweep covers the entry rate plus or minus 5.

Examples:
  hedger sweep --amount 10000000 --entry 85
  hedger sweep -a 5000000 -e 83 --from 78 --to 92 --step 1`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

var (
	sweepAmount float64
	sweepEntry  float64
	sweepFrom   float64
	sweepTo     float64
	sweepStep   float64
)

func init() {
	rootCmd.AddCommand(sweepCmd)

	f := sweepCmd.Flags()
	f.Float64VarP(&sweepAmount, "amount", "a", 0, "INR investment amount")
	f.Float64VarP(&sweepEntry, "entry", "e", 0, "USDINR rate at entry")
	f.Float64Var(&sweepFrom, "from", 0, "first exit rate")
	f.Float64Var(&sweepTo, "to", 0, "last exit rate")
	f.Float64Var(&sweepStep, "step", 0.5, "exit rate increment")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := cfg.Inputs()
	f := cmd.Flags()
	if f.Changed("amount") {
		in.InvestmentAmount = sweepAmount
	}
	if f.Changed("entry") {
		in.EntryRate = sweepEntry
	}

	from, to := in.EntryRate-5, in.EntryRate+5
	if f.Changed("from") {
		from = sweepFrom
	}
	if f.Changed("to") {
		to = sweepTo
	}

	rates, err := hedge.RateRange(from, to, sweepStep)
	if err != nil {
		return err
	}
	for _, exit := range []float64{from, to} {
		if err := cfg.Bounds.Check(in.InvestmentAmount, in.EntryRate, exit); err != nil {
			return err
		}
	}

	scenarios, err := hedge.Sweep(in, rates)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s sweep: INR %s at entry %s, %d lots\n\n",
		cfg.Contract.Pair,
		report.Amount(in.InvestmentAmount, 0),
		report.Amount(in.EntryRate, 4),
		scenarios[0].Result.LotsNeeded)
	return report.WriteSweep(w, scenarios)
}
