package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "time", "pair",
	"investment_amount", "entry_rate", "exit_rate", "lot_size", "margin_per_lot",
	"usd_exposure", "lots_needed", "total_margin",
	"usd_value_unhedged", "futures_pnl_inr", "inr_after_hedge", "usd_value_hedged",
}

// CSV appends scenarios to a single file, writing the header only when the
// file is new.
type CSV struct {
	w    *csv.Writer
	file *os.File
}

func NewCSV(path string) (*CSV, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	w := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = file.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return &CSV{w: w, file: file}, nil
}

func (j *CSV) RecordScenario(s ScenarioRecord) error {
	in, r := s.Inputs, s.Result
	err := j.w.Write([]string{
		s.ID,
		s.Time.UTC().Format(time.RFC3339),
		s.Pair,
		f(in.InvestmentAmount),
		f(in.EntryRate),
		f(in.ExitRate),
		strconv.FormatInt(in.LotSize, 10),
		f(in.MarginPerLot),
		f(r.USDExposure),
		strconv.FormatInt(r.LotsNeeded, 10),
		f(r.TotalMargin),
		f(r.USDValueUnhedged),
		f(r.FuturesPnLINR),
		f(r.INRAfterHedge),
		f(r.USDValueHedged),
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.file.Close()
		return err
	}
	return j.file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
