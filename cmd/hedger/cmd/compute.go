package cmd

import (
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rustyeddy/hedger/config"
	"github.com/rustyeddy/hedger/hedge"
	"github.com/rustyeddy/hedger/journal"
	"github.com/rustyeddy/hedger/pkg/id"
	"github.com/rustyeddy/hedger/report"
	"github.com/spf13/cobra"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the hedged and unhedged outcome of one scenario",
	Long: `Convert an INR investment into USD exposure, size the hedge in whole
futures lots (rounding half to even), and compare the USD value at the exit
rate with and without the futures P&L.

Values not given on the command line come from the config file.

Examples:
  hedger compute --amount 10000000 --entry 85 --exit 90
  hedger compute -a 2500000 -e 83.5 -x 80 --format org
  hedger compute --config hedger.yaml --record`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

var (
	computeAmount  float64
	computeEntry   float64
	computeExit    float64
	computeLotSize int64
	computeMargin  float64
	computeFormat  string
	computeRecord  bool
	computeBars    bool
)

func init() {
	rootCmd.AddCommand(computeCmd)

	f := computeCmd.Flags()
	f.Float64VarP(&computeAmount, "amount", "a", 0, "INR investment amount")
	f.Float64VarP(&computeEntry, "entry", "e", 0, "USDINR rate at entry")
	f.Float64VarP(&computeExit, "exit", "x", 0, "USDINR rate at exit")
	f.Int64Var(&computeLotSize, "lot-size", 0, "USD per futures lot")
	f.Float64Var(&computeMargin, "margin", 0, "INR margin per lot")
	f.StringVarP(&computeFormat, "format", "f", "text", "output format: text, org or json")
	f.BoolVar(&computeRecord, "record", false, "record the scenario to the configured journal")
	f.BoolVar(&computeBars, "bars", true, "draw the comparison bars (text format)")
}

// scenarioInputs merges explicitly set flags over the config scenario.
func scenarioInputs(cmd *cobra.Command, cfg *config.Config) hedge.Inputs {
	in := cfg.Inputs()
	f := cmd.Flags()
	if f.Changed("amount") {
		in.InvestmentAmount = computeAmount
	}
	if f.Changed("entry") {
		in.EntryRate = computeEntry
	}
	if f.Changed("exit") {
		in.ExitRate = computeExit
	}
	if f.Changed("lot-size") {
		in.LotSize = computeLotSize
	}
	if f.Changed("margin") {
		in.MarginPerLot = computeMargin
	}
	return in
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := scenarioInputs(cmd, cfg)
	if err := in.Validate(); err != nil {
		return err
	}
	if err := cfg.Bounds.Check(in.InvestmentAmount, in.EntryRate, in.ExitRate); err != nil {
		return err
	}

	res, err := hedge.Compute(in)
	if err != nil {
		return err
	}

	rec := journal.ScenarioRecord{
		ID:     id.New(),
		Time:   time.Now(),
		Pair:   cfg.Contract.Pair,
		Inputs: in,
		Result: res,
	}

	if computeRecord {
		if err := recordScenario(cfg, rec); err != nil {
			return err
		}
	}

	return writeScenario(cmd.OutOrStdout(), computeFormat, rec, computeBars)
}

func recordScenario(cfg *config.Config, rec journal.ScenarioRecord) error {
	if cfg.Journal.Type == "none" {
		return fmt.Errorf("--record needs journal.type csv or sqlite in the config")
	}
	j, err := journal.Open(cfg.Journal.Type, cfg.Journal.Path())
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if err := j.RecordScenario(rec); err != nil {
		_ = j.Close()
		return fmt.Errorf("record scenario: %w", err)
	}
	return j.Close()
}

func writeScenario(w io.Writer, format string, rec journal.ScenarioRecord, bars bool) error {
	switch format {
	case "text":
		if err := report.WriteSummary(w, rec.Pair, rec.Inputs, rec.Result); err != nil {
			return err
		}
		if bars {
			fmt.Fprintln(w)
			if err := report.WriteBars(w, rec.Result, 0); err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
		return report.WriteTip(w)
	case "org":
		_, err := fmt.Fprintln(w, journal.FormatScenarioOrg(rec))
		return err
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(struct {
			ID     string       `json:"id"`
			Pair   string       `json:"pair"`
			Inputs hedge.Inputs `json:"inputs"`
			Result hedge.Result `json:"result"`
		}{rec.ID, rec.Pair, rec.Inputs, rec.Result}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, org or json)", format)
	}
}
