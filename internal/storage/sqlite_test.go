package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Parent directories and the file itself get created
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSaveAndListRounds(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRound([]int{4, 3, 5, 2, 6, 4, 3, 3, 7}, 32)
	require.NoError(t, err)
	_, err = store.SaveRound([]int{3, 3, 4, 2, 5, 4, 3, 3, 6}, 32)
	require.NoError(t, err)

	rounds, err := store.RecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	// Most recent first
	assert.Equal(t, 33, rounds[0].Total)
	assert.Equal(t, []int{3, 3, 4, 2, 5, 4, 3, 3, 6}, rounds[0].Strokes)
	assert.Equal(t, 1, rounds[0].ToPar())
	assert.Equal(t, 37, rounds[1].Total)
	assert.False(t, rounds[0].CreatedAt.IsZero(), "created_at should be populated")
}

func TestRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		_, err := store.SaveRound([]int{4, 4, 4, 4, 4, 4, 4, 4, 4}, 32)
		require.NoError(t, err)
	}

	rounds, err := store.RecentRounds(3)
	require.NoError(t, err)
	assert.Len(t, rounds, 3)
}

func TestBestRound(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRound()
	require.NoError(t, err)
	assert.Nil(t, best, "empty store has no best round")

	_, err = store.SaveRound([]int{5, 5, 5, 5, 5, 5, 5, 5, 5}, 32)
	require.NoError(t, err)
	_, err = store.SaveRound([]int{3, 3, 3, 3, 3, 3, 3, 3, 3}, 32)
	require.NoError(t, err)

	best, err = store.BestRound()
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 27, best.Total)
}

func TestRoundStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetRoundStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.RoundsCount)
	assert.True(t, stats.LastPlayed.IsZero())

	_, err = store.SaveRound([]int{4, 4, 4, 4, 4, 4, 4, 4, 4}, 32)
	require.NoError(t, err)
	_, err = store.SaveRound([]int{2, 2, 2, 2, 2, 2, 2, 2, 2}, 32)
	require.NoError(t, err)

	stats, err = store.GetRoundStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.RoundsCount)
	assert.Equal(t, 18, stats.BestTotal)
	assert.InDelta(t, 27.0, stats.AvgTotal, 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestAutosaveRoundTrip(t *testing.T) {
	store := openTestStore(t)

	save, err := store.LoadAutosave()
	require.NoError(t, err)
	assert.Nil(t, save, "fresh store has no autosave")

	require.NoError(t, store.SaveAutosave(2, []int{4, 3, 1, 0, 0, 0, 0, 0, 0}))
	save, err = store.LoadAutosave()
	require.NoError(t, err)
	require.NotNil(t, save)
	assert.Equal(t, 2, save.HoleIndex)
	assert.Equal(t, []int{4, 3, 1, 0, 0, 0, 0, 0, 0}, save.Strokes)

	// Saving again replaces the single row
	require.NoError(t, store.SaveAutosave(3, []int{4, 3, 2, 1, 0, 0, 0, 0, 0}))
	save, err = store.LoadAutosave()
	require.NoError(t, err)
	require.NotNil(t, save)
	assert.Equal(t, 3, save.HoleIndex)

	require.NoError(t, store.ClearAutosave())
	save, err = store.LoadAutosave()
	require.NoError(t, err)
	assert.Nil(t, save)
}

func TestDecodeStrokesRejectsGarbage(t *testing.T) {
	_, err := decodeStrokes("4,x,2")
	assert.Error(t, err)

	strokes, err := decodeStrokes("")
	require.NoError(t, err)
	assert.Nil(t, strokes)
}
