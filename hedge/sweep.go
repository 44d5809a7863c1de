package hedge

import (
	"fmt"
	"math"
)

// maxSweepPoints caps RateRange so a tiny step can't allocate unbounded memory.
const maxSweepPoints = 10000

// Scenario is one exit rate evaluated against fixed entry inputs.
type Scenario struct {
	ExitRate float64 `json:"exit_rate"`
	Result   Result  `json:"result"`
}

// RateRange returns from, from+step, ... up to and including to.
func RateRange(from, to, step float64) ([]float64, error) {
	if !positive(from) || !positive(to) {
		return nil, fmt.Errorf("%w: rate range bounds must be positive, got %v..%v", ErrInvalidInput, from, to)
	}
	if !positive(step) {
		return nil, fmt.Errorf("%w: rate step must be positive, got %v", ErrInvalidInput, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: rate range end %v is below start %v", ErrInvalidInput, to, from)
	}

	// Index-based so accumulated float error doesn't drop the last point.
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n > maxSweepPoints {
		return nil, fmt.Errorf("%w: rate range has %d points, max %d", ErrInvalidInput, n, maxSweepPoints)
	}
	rates := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		rates = append(rates, from+float64(i)*step)
	}
	return rates, nil
}

// Sweep evaluates in at each exit rate, ignoring in.ExitRate.
func Sweep(in Inputs, exitRates []float64) ([]Scenario, error) {
	out := make([]Scenario, 0, len(exitRates))
	for _, rate := range exitRates {
		in.ExitRate = rate
		res, err := Compute(in)
		if err != nil {
			return nil, err
		}
		out = append(out, Scenario{ExitRate: rate, Result: res})
	}
	return out, nil
}
