// Package hedge sizes a USDINR futures hedge for a USD-funded INR bond
// purchase and compares the hedged and unhedged outcomes at an exit rate.
//
// Rates are quoted as INR per USD. Amounts ending in INR are domestic
// currency, amounts starting with USD are foreign currency.
package hedge

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

const (
	DefaultLotSize      int64   = 1000 // USD per contract
	DefaultMarginPerLot float64 = 2150 // INR per contract
)

// Contract describes the standardized futures contract used for the hedge.
type Contract struct {
	LotSize      int64   `json:"lot_size" yaml:"lot_size"`
	MarginPerLot float64 `json:"margin_per_lot" yaml:"margin_per_lot"`
}

// DefaultContract returns the exchange-standard USDINR contract.
func DefaultContract() Contract {
	return Contract{
		LotSize:      DefaultLotSize,
		MarginPerLot: DefaultMarginPerLot,
	}
}

// Inputs builds calculator inputs for this contract.
func (c Contract) Inputs(investmentAmount, entryRate, exitRate float64) Inputs {
	return Inputs{
		InvestmentAmount: investmentAmount,
		EntryRate:        entryRate,
		ExitRate:         exitRate,
		LotSize:          c.LotSize,
		MarginPerLot:     c.MarginPerLot,
	}
}

type Inputs struct {
	InvestmentAmount float64 `json:"investment_amount"` // INR
	EntryRate        float64 `json:"entry_rate"`
	ExitRate         float64 `json:"exit_rate"`
	LotSize          int64   `json:"lot_size"`
	MarginPerLot     float64 `json:"margin_per_lot"` // INR
}

type Result struct {
	USDExposure      float64 `json:"usd_exposure"`
	LotsNeeded       int64   `json:"lots_needed"`
	TotalMargin      float64 `json:"total_margin"`
	USDValueUnhedged float64 `json:"usd_value_unhedged"`
	FuturesPnLINR    float64 `json:"futures_pnl_inr"`
	INRAfterHedge    float64 `json:"inr_after_hedge"`
	USDValueHedged   float64 `json:"usd_value_hedged"`
}

// UnhedgedDelta is the USD gain or loss of the open position against the
// initial exposure.
func (r Result) UnhedgedDelta() float64 {
	return r.USDValueUnhedged - r.USDExposure
}

// HedgedDelta is the USD gain or loss after the futures P&L is applied.
func (r Result) HedgedDelta() float64 {
	return r.USDValueHedged - r.USDExposure
}

// Point is one bar of the initial/unhedged/hedged comparison.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Comparison returns the three USD values in display order.
func (r Result) Comparison() []Point {
	return []Point{
		{Label: "Initial USD", Value: r.USDExposure},
		{Label: "Unhedged", Value: r.USDValueUnhedged},
		{Label: "Hedged", Value: r.USDValueHedged},
	}
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Validate reports the first precondition the inputs violate.
func (in Inputs) Validate() error {
	if !positive(in.InvestmentAmount) {
		return fmt.Errorf("%w: investment amount must be positive, got %v", ErrInvalidInput, in.InvestmentAmount)
	}
	if !positive(in.EntryRate) {
		return fmt.Errorf("%w: entry rate must be positive, got %v", ErrInvalidInput, in.EntryRate)
	}
	if !positive(in.ExitRate) {
		return fmt.Errorf("%w: exit rate must be positive, got %v", ErrInvalidInput, in.ExitRate)
	}
	if in.LotSize <= 0 {
		return fmt.Errorf("%w: lot size must be positive, got %d", ErrInvalidInput, in.LotSize)
	}
	// NaN fails every comparison, so test for it explicitly.
	if math.IsNaN(in.MarginPerLot) || math.IsInf(in.MarginPerLot, 0) || in.MarginPerLot < 0 {
		return fmt.Errorf("%w: margin per lot must be non-negative, got %v", ErrInvalidInput, in.MarginPerLot)
	}
	return nil
}

// maxLots is 2^63 as a float64; quotients at or above it don't fit an int64.
const maxLots = float64(math.MaxInt64)

// LotsFor returns the number of whole contracts covering exposure, rounding
// half to even. A quotient of exactly 2.5 gives 2 lots, 3.5 gives 4.
// Exposures too large to count in int64 lots are an ErrInvalidInput.
func LotsFor(exposure float64, lotSize int64) (int64, error) {
	if math.IsNaN(exposure) || exposure <= 0 || lotSize <= 0 {
		return 0, nil
	}
	q := exposure / float64(lotSize)
	if q >= maxLots {
		return 0, fmt.Errorf("%w: exposure %v needs more than %d lots of %d", ErrInvalidInput, exposure, int64(math.MaxInt64), lotSize)
	}
	return int64(math.RoundToEven(q)), nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Compute runs the hedge calculation. It has no side effects and is safe
// for concurrent use. Inputs whose results overflow float64 are rejected
// rather than returned as infinities.
func Compute(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	var r Result
	r.USDExposure = in.InvestmentAmount / in.EntryRate
	if !finite(r.USDExposure) {
		return Result{}, fmt.Errorf("%w: USD exposure overflows at amount %v and entry rate %v", ErrInvalidInput, in.InvestmentAmount, in.EntryRate)
	}

	lots, err := LotsFor(r.USDExposure, in.LotSize)
	if err != nil {
		return Result{}, err
	}
	r.LotsNeeded = lots
	r.TotalMargin = float64(r.LotsNeeded) * in.MarginPerLot

	// Long USDINR futures gain when the rupee weakens (exit > entry).
	r.FuturesPnLINR = (in.ExitRate - in.EntryRate) * float64(in.LotSize) * float64(r.LotsNeeded)

	r.USDValueUnhedged = in.InvestmentAmount / in.ExitRate
	r.INRAfterHedge = in.InvestmentAmount + r.FuturesPnLINR
	r.USDValueHedged = r.INRAfterHedge / in.ExitRate

	for _, v := range []float64{r.TotalMargin, r.FuturesPnLINR, r.USDValueUnhedged, r.INRAfterHedge, r.USDValueHedged} {
		if !finite(v) {
			return Result{}, fmt.Errorf("%w: result overflows for inputs %+v", ErrInvalidInput, in)
		}
	}
	return r, nil
}

// ComputeHedge is Compute with the inputs passed positionally.
func ComputeHedge(investmentAmount, entryRate, exitRate float64, lotSize int64, marginPerLot float64) (Result, error) {
	return Compute(Inputs{
		InvestmentAmount: investmentAmount,
		EntryRate:        entryRate,
		ExitRate:         exitRate,
		LotSize:          lotSize,
		MarginPerLot:     marginPerLot,
	})
}
