package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/hedger/config"
	"github.com/rustyeddy/hedger/hedge"
	"github.com/rustyeddy/hedger/internal/metrics"
	"github.com/rustyeddy/hedger/journal"
	"github.com/rustyeddy/hedger/pkg/id"
)

type contractResponse struct {
	Pair         string              `json:"pair"`
	LotSize      int64               `json:"lot_size"`
	MarginPerLot float64             `json:"margin_per_lot"`
	Bounds       config.BoundsConfig `json:"bounds"`
}

func (s *Server) getContract(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, contractResponse{
		Pair:         s.cfg.Contract.Pair,
		LotSize:      s.cfg.Contract.LotSize,
		MarginPerLot: s.cfg.Contract.MarginPerLot,
		Bounds:       s.cfg.Bounds,
	})
}

// hedgeRequest leaves LotSize and MarginPerLot nil to use the configured contract.
type hedgeRequest struct {
	InvestmentAmount float64  `json:"investment_amount"`
	EntryRate        float64  `json:"entry_rate"`
	ExitRate         float64  `json:"exit_rate"`
	LotSize          *int64   `json:"lot_size,omitempty"`
	MarginPerLot     *float64 `json:"margin_per_lot,omitempty"`
}

// display carries the headline figures rounded for presentation.
type display struct {
	USDExposure      decimal.Decimal `json:"usd_exposure"`
	TotalMargin      decimal.Decimal `json:"total_margin"`
	FuturesPnLINR    decimal.Decimal `json:"futures_pnl_inr"`
	USDValueUnhedged decimal.Decimal `json:"usd_value_unhedged"`
	USDValueHedged   decimal.Decimal `json:"usd_value_hedged"`
	UnhedgedDelta    decimal.Decimal `json:"unhedged_delta"`
	HedgedDelta      decimal.Decimal `json:"hedged_delta"`
}

type hedgeResponse struct {
	ID         string        `json:"id"`
	Pair       string        `json:"pair"`
	Inputs     hedge.Inputs  `json:"inputs"`
	Result     hedge.Result  `json:"result"`
	Comparison []hedge.Point `json:"comparison"`
	Display    display       `json:"display"`
}

func cents(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(2)
}

func (s *Server) postHedge(w http.ResponseWriter, r *http.Request) {
	var req hedgeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("decode request: %w", err))
		return
	}

	in := s.cfg.HedgeContract().Inputs(req.InvestmentAmount, req.EntryRate, req.ExitRate)
	if req.LotSize != nil {
		in.LotSize = *req.LotSize
	}
	if req.MarginPerLot != nil {
		in.MarginPerLot = *req.MarginPerLot
	}

	res, ok := s.compute(w, in)
	if !ok {
		return
	}

	rec := journal.ScenarioRecord{
		ID:     id.New(),
		Time:   s.now(),
		Pair:   s.cfg.Contract.Pair,
		Inputs: in,
		Result: res,
	}
	s.record(rec)

	s.writeJSON(w, http.StatusOK, hedgeResponse{
		ID:         rec.ID,
		Pair:       rec.Pair,
		Inputs:     in,
		Result:     res,
		Comparison: res.Comparison(),
		Display: display{
			USDExposure:      cents(res.USDExposure),
			TotalMargin:      cents(res.TotalMargin),
			FuturesPnLINR:    cents(res.FuturesPnLINR),
			USDValueUnhedged: cents(res.USDValueUnhedged),
			USDValueHedged:   cents(res.USDValueHedged),
			UnhedgedDelta:    cents(res.UnhedgedDelta()),
			HedgedDelta:      cents(res.HedgedDelta()),
		},
	})
}

// compute validates, applies the bounds guard and runs the calculator,
// writing an error response on failure.
func (s *Server) compute(w http.ResponseWriter, in hedge.Inputs) (hedge.Result, bool) {
	if err := in.Validate(); err != nil {
		metrics.Computations.WithLabelValues("invalid").Inc()
		s.writeError(w, http.StatusBadRequest, "invalid_input", err)
		return hedge.Result{}, false
	}
	if err := s.cfg.Bounds.Check(in.InvestmentAmount, in.EntryRate, in.ExitRate); err != nil {
		metrics.Computations.WithLabelValues("out_of_bounds").Inc()
		s.writeError(w, http.StatusBadRequest, "out_of_bounds", err)
		return hedge.Result{}, false
	}

	res, err := hedge.Compute(in)
	if err != nil {
		metrics.Computations.WithLabelValues("invalid").Inc()
		s.writeError(w, http.StatusBadRequest, "invalid_input", err)
		return hedge.Result{}, false
	}

	metrics.Computations.WithLabelValues("ok").Inc()
	metrics.LotsNeeded.Observe(float64(res.LotsNeeded))
	return res, true
}

type sweepResponse struct {
	Pair      string           `json:"pair"`
	Scenarios []hedge.Scenario `json:"scenarios"`
}

func (s *Server) getSweep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		vals = map[string]float64{}
		errs []error
	)
	for _, k := range []string{"amount", "entry", "from", "to", "step"} {
		v, err := strconv.ParseFloat(q.Get(k), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("query %q: %w", k, err))
			continue
		}
		vals[k] = v
	}
	if len(errs) > 0 {
		s.writeError(w, http.StatusBadRequest, "bad_request", errors.Join(errs...))
		return
	}

	rates, err := hedge.RateRange(vals["from"], vals["to"], vals["step"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}

	in := s.cfg.HedgeContract().Inputs(vals["amount"], vals["entry"], vals["from"])
	// Rates rise monotonically, so checking both ends covers the range.
	for _, exit := range []float64{vals["from"], vals["to"]} {
		probe := in
		probe.ExitRate = exit
		if err := probe.Validate(); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid_input", err)
			return
		}
		if err := s.cfg.Bounds.Check(probe.InvestmentAmount, probe.EntryRate, probe.ExitRate); err != nil {
			s.writeError(w, http.StatusBadRequest, "out_of_bounds", err)
			return
		}
	}

	scenarios, err := hedge.Sweep(in, rates)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}

	s.writeJSON(w, http.StatusOK, sweepResponse{
		Pair:      s.cfg.Contract.Pair,
		Scenarios: scenarios,
	})
}
