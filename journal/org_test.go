package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatScenarioOrg(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 15, 10, 30, 45, 0, time.UTC)
	s := sampleScenario(t, "01JQ2Z7K8M9N0P1Q2R3S4T5V6W", at, 90)

	result := FormatScenarioOrg(s)

	assert.Contains(t, result, "** Hedge: USD_INR 85.00 -> 90.00 (01JQ2Z7K)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 01JQ2Z7K8M9N0P1Q2R3S4T5V6W")
	assert.Contains(t, result, ":TIME: 2025-03-15T10:30:45Z")
	assert.Contains(t, result, ":INVESTMENT_INR: 10000000.00")
	assert.Contains(t, result, ":LOT_SIZE: 1000")
	assert.Contains(t, result, ":LOTS: 118")
	assert.Contains(t, result, ":TOTAL_MARGIN: 253700.00")
	assert.Contains(t, result, ":FUTURES_PNL_INR: 590000.00")
	assert.Contains(t, result, ":USD_UNHEDGED: 111111.11")
	assert.Contains(t, result, ":USD_HEDGED: 117666.67")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Notes")
}

func TestFormatScenarioOrgNegativePnL(t *testing.T) {
	t.Parallel()

	s := sampleScenario(t, "short", time.Now(), 80)
	result := FormatScenarioOrg(s)

	assert.Contains(t, result, "(short)")
	assert.Contains(t, result, ":FUTURES_PNL_INR: -590000.00")
}

func TestFormatScenariosOrg(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	result := FormatScenariosOrg([]ScenarioRecord{
		sampleScenario(t, "one", at, 88),
		sampleScenario(t, "two", at.Add(time.Hour), 92),
	})

	assert.Equal(t, 2, strings.Count(result, "** Hedge:"))
	assert.Contains(t, result, "*** Notes\n- \n\n\n** Hedge:")
	assert.Empty(t, FormatScenariosOrg(nil))
}
