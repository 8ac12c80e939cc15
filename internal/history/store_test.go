package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndGetRun(t *testing.T) {
	store := openTestStore(t)

	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	run := Run{
		Item:       "Psych.S03E07.720p.HDTV.x264-DIMENSION.mkv",
		QueryName:  "Psych.S03E07.720p.HDTV.x264-DIMENSION",
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
	}
	surfaced := []Surfaced{
		{Name: "Psych.S03E07.720p.HDTV.x264-DIMENSION", Method: "matched"},
		{Name: "Psych.S03E07.1080p.WEB-DL-DIMENSION", Method: "compatible", Rule: "same-group"},
	}
	corrections := []string{`group: group "DIM" -> "DIMENSION"`}

	id, err := store.Record(run, surfaced, corrections)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := store.GetRun(id)
	require.NoError(t, err)
	assert.Equal(t, run.Item, got.Item)
	assert.Equal(t, run.QueryName, got.QueryName)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
	assert.True(t, got.FinishedAt.Equal(run.FinishedAt))
}

func TestGetRunNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetRun(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListSurfacedPreservesOrder(t *testing.T) {
	store := openTestStore(t)

	surfaced := []Surfaced{
		{Name: "first", Method: "matched"},
		{Name: "second", Method: "guessed"},
		{Name: "third", Method: "compatible", Rule: "same-group"},
	}
	id, err := store.Record(Run{Item: "x", QueryName: "x", StartedAt: time.Now(), FinishedAt: time.Now()}, surfaced, nil)
	require.NoError(t, err)

	got, err := store.ListSurfaced(id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
	assert.Equal(t, "same-group", got[2].Rule)

	// unknown run has no surfaced releases
	none, err := store.ListSurfaced(id + 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	now := time.Now()
	for _, item := range []string{"one", "two", "three"} {
		_, err := store.Record(Run{Item: item, QueryName: item, StartedAt: now, FinishedAt: now}, nil, nil)
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "three", runs[0].Item)
	assert.Equal(t, "two", runs[1].Item)
}
