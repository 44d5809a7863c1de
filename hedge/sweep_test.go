package hedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateRange(t *testing.T) {
	t.Parallel()

	rates, err := RateRange(80, 90, 0.5)
	require.NoError(t, err)
	require.Len(t, rates, 21)
	assert.Equal(t, 80.0, rates[0])
	assert.Equal(t, 90.0, rates[len(rates)-1])

	single, err := RateRange(85, 85, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{85}, single)

	// 0.1 steps don't add up exactly in binary; the endpoint must survive.
	tenths, err := RateRange(84, 85, 0.1)
	require.NoError(t, err)
	assert.Len(t, tenths, 11)
	assert.InDelta(t, 85.0, tenths[10], 1e-9)
}

func TestRateRangeInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		from, to, step float64
	}{
		{"zero step", 80, 90, 0},
		{"negative step", 80, 90, -1},
		{"reversed", 90, 80, 1},
		{"zero start", 0, 90, 1},
		{"too many points", 1, 1000, 0.0001},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := RateRange(tt.from, tt.to, tt.step)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSweep(t *testing.T) {
	t.Parallel()

	in := DefaultContract().Inputs(10_000_000, 85, 0)
	scenarios, err := Sweep(in, []float64{80, 85, 90})
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	assert.Equal(t, 80.0, scenarios[0].ExitRate)
	assert.InDelta(t, -590000.0, scenarios[0].Result.FuturesPnLINR, 1e-9)
	assert.Equal(t, 0.0, scenarios[1].Result.FuturesPnLINR)
	assert.InDelta(t, 590000.0, scenarios[2].Result.FuturesPnLINR, 1e-9)

	for _, s := range scenarios {
		assert.Equal(t, int64(118), s.Result.LotsNeeded)
	}
}

func TestSweepStopsOnInvalidRate(t *testing.T) {
	t.Parallel()

	in := DefaultContract().Inputs(10_000_000, 85, 90)
	_, err := Sweep(in, []float64{85, -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
