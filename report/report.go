// Package report renders hedge results for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/hedger/hedge"
)

const defaultBarWidth = 40

// WriteSummary prints exposure and sizing, then the unhedged and hedged
// outcomes side by side with their change against the initial exposure.
func WriteSummary(w io.Writer, pair string, in hedge.Inputs, r hedge.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s Bond FX Hedge ===\n\n", pair)
	fmt.Fprintf(&b, "Investment:        INR %s\n", Amount(in.InvestmentAmount, 2))
	fmt.Fprintf(&b, "Entry rate:        %s\n", Amount(in.EntryRate, 4))
	fmt.Fprintf(&b, "Exit rate:         %s\n\n", Amount(in.ExitRate, 4))

	fmt.Fprintf(&b, "USD exposure:      $%s\n", Amount(r.USDExposure, 2))
	fmt.Fprintf(&b, "Hedge lots:        %d x %d USD\n", r.LotsNeeded, in.LotSize)
	fmt.Fprintf(&b, "Margin required:   INR %s\n\n", Amount(r.TotalMargin, 0))

	fmt.Fprintf(&b, "%-18s %18s %18s\n", "", "Unhedged", "Hedged")
	fmt.Fprintf(&b, "%-18s %18s %18s\n", "Futures P&L (INR)", "-", Signed(r.FuturesPnLINR, 0))
	fmt.Fprintf(&b, "%-18s %18s %18s\n", "INR at exit", Amount(in.InvestmentAmount, 0), Amount(r.INRAfterHedge, 0))
	fmt.Fprintf(&b, "%-18s %18s %18s\n", "USD value", "$"+Amount(r.USDValueUnhedged, 2), "$"+Amount(r.USDValueHedged, 2))
	fmt.Fprintf(&b, "%-18s %18s %18s\n", "Change vs initial", Signed(r.UnhedgedDelta(), 2), Signed(r.HedgedDelta(), 2))

	if r.LotsNeeded == 0 {
		b.WriteString("\nExposure is below half a lot; no futures hedge is possible.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteBars prints the initial/unhedged/hedged comparison as horizontal bars
// scaled to the largest value. A width of zero uses the default.
func WriteBars(w io.Writer, r hedge.Result, width int) error {
	if width <= 0 {
		width = defaultBarWidth
	}
	pts := r.Comparison()

	peak := 0.0
	for _, p := range pts {
		if p.Value > peak {
			peak = p.Value
		}
	}

	var b strings.Builder
	for _, p := range pts {
		n := 0
		if peak > 0 && p.Value > 0 {
			n = int(p.Value / peak * float64(width))
		}
		fmt.Fprintf(&b, "%-12s %-*s $%s\n", p.Label, width, strings.Repeat("#", n), Amount(p.Value, 2))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTip prints the hedging note shown under every result.
func WriteTip(w io.Writer) error {
	_, err := io.WriteString(w,
		"Tip: hedge by going long USDINR futures to protect against INR depreciation.\n"+
			"Bond coupon and interest are not modelled.\n")
	return err
}

// WriteSweep prints one row per exit rate.
func WriteSweep(w io.Writer, scenarios []hedge.Scenario) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%10s %8s %16s %16s %16s %14s\n",
		"Exit", "Lots", "Futures P&L", "USD unhedged", "USD hedged", "Hedge effect")
	for _, s := range scenarios {
		r := s.Result
		fmt.Fprintf(&b, "%10s %8d %16s %16s %16s %14s\n",
			Amount(s.ExitRate, 4),
			r.LotsNeeded,
			Signed(r.FuturesPnLINR, 0),
			Amount(r.USDValueUnhedged, 2),
			Amount(r.USDValueHedged, 2),
			Signed(r.USDValueHedged-r.USDValueUnhedged, 2),
		)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
