package id

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		ids = append(ids, New())
	}

	assert.True(t, sort.StringsAreSorted(ids))

	seen := map[string]bool{}
	for _, s := range ids {
		assert.Len(t, s, 26)
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func TestGeneratorUsesClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return at })

	got, err := Time(g.Next())
	require.NoError(t, err)
	assert.True(t, got.Equal(at), "got %v", got)
}

func TestTimeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}
