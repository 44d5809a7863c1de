package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatScenarioOrg renders a scenario as an Org-mode block. Facts go in the
// PROPERTIES drawer for search; the Notes section is left for the reader.
func FormatScenarioOrg(s ScenarioRecord) string {
	in, r := s.Inputs, s.Result

	var b strings.Builder
	fmt.Fprintf(&b, "** Hedge: %s %.2f -> %.2f (%s)\n", s.Pair, in.EntryRate, in.ExitRate, shortID(s.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", s.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", s.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":PAIR: %s\n", s.Pair)
	fmt.Fprintf(&b, ":INVESTMENT_INR: %.2f\n", in.InvestmentAmount)
	fmt.Fprintf(&b, ":ENTRY_RATE: %.4f\n", in.EntryRate)
	fmt.Fprintf(&b, ":EXIT_RATE: %.4f\n", in.ExitRate)
	fmt.Fprintf(&b, ":LOT_SIZE: %d\n", in.LotSize)
	fmt.Fprintf(&b, ":MARGIN_PER_LOT: %.2f\n", in.MarginPerLot)
	fmt.Fprintf(&b, ":USD_EXPOSURE: %.2f\n", r.USDExposure)
	fmt.Fprintf(&b, ":LOTS: %d\n", r.LotsNeeded)
	fmt.Fprintf(&b, ":TOTAL_MARGIN: %.2f\n", r.TotalMargin)
	fmt.Fprintf(&b, ":FUTURES_PNL_INR: %.2f\n", r.FuturesPnLINR)
	fmt.Fprintf(&b, ":USD_UNHEDGED: %.2f\n", r.USDValueUnhedged)
	fmt.Fprintf(&b, ":USD_HEDGED: %.2f\n", r.USDValueHedged)
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n")

	return b.String()
}

// FormatScenariosOrg renders multiple scenarios separated by blank lines.
func FormatScenariosOrg(scenarios []ScenarioRecord) string {
	var b strings.Builder
	for i, s := range scenarios {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatScenarioOrg(s))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
