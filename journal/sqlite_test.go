package journal

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='scenarios'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "scenarios", name)
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	at := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	want := sampleScenario(t, "S1", at, 90)
	require.NoError(t, j.RecordScenario(want))

	got, err := j.GetScenario("S1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Pair, got.Pair)
	assert.True(t, got.Time.Equal(at))
	assert.Equal(t, want.Inputs, got.Inputs)
	assert.Equal(t, want.Result.LotsNeeded, got.Result.LotsNeeded)
	assert.InDelta(t, want.Result.USDExposure, got.Result.USDExposure, 1e-9)
	assert.InDelta(t, want.Result.FuturesPnLINR, got.Result.FuturesPnLINR, 1e-9)
	assert.InDelta(t, want.Result.USDValueHedged, got.Result.USDValueHedged, 1e-9)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetScenario("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteDuplicateID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	s := sampleScenario(t, "DUP", time.Now(), 90)
	require.NoError(t, j.RecordScenario(s))
	assert.Error(t, j.RecordScenario(s))
}

func TestSQLiteListScenariosBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordScenario(sampleScenario(t, "before", day.Add(-time.Minute), 88)))
	require.NoError(t, j.RecordScenario(sampleScenario(t, "late", day.Add(20*time.Hour), 91)))
	require.NoError(t, j.RecordScenario(sampleScenario(t, "early", day.Add(2*time.Hour), 89)))
	require.NoError(t, j.RecordScenario(sampleScenario(t, "after", day.Add(24*time.Hour), 92)))

	got, err := j.ListScenariosBetween(day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestSQLiteListRecent(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, j.RecordScenario(sampleScenario(t, id, base.Add(time.Duration(i)*time.Minute), 90)))
	}

	got, err := j.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	_, err = j.ListRecent(0)
	assert.Error(t, err)
}
