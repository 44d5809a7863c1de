package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/hedger/hedge"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func sampleScenario(t *testing.T, id string, at time.Time, exit float64) ScenarioRecord {
	t.Helper()

	in := hedge.DefaultContract().Inputs(10_000_000, 85, exit)
	res, err := hedge.Compute(in)
	require.NoError(t, err)

	return ScenarioRecord{
		ID:     id,
		Time:   at,
		Pair:   "USD_INR",
		Inputs: in,
		Result: res,
	}
}
