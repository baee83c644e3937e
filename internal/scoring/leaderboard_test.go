package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStorage is a LeaderboardStorage that can simulate failures.
type MockStorage struct {
	Entries []LeaderboardEntry
	err     error
}

func (m *MockStorage) LoadAll() ([]LeaderboardEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.Entries, nil
}

func (m *MockStorage) SaveAll(entries []LeaderboardEntry) error {
	if m.err != nil {
		return m.err
	}
	m.Entries = entries
	return nil
}

func TestMemoryStorage_SeededRivals(t *testing.T) {
	store := NewMemoryStorage()

	entries, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 5)

	// LoadAll returns a copy
	entries[0].Score = 0
	again, _ := store.LoadAll()
	assert.Equal(t, 2450, again[0].Score)
}

func TestSubmitEntry_ReplacesByName(t *testing.T) {
	store := NewMemoryStorage()

	require.NoError(t, SubmitEntry(store, LeaderboardEntry{Name: PlayerName, Score: 100, Level: 1, Games: 1}))
	require.NoError(t, SubmitEntry(store, LeaderboardEntry{Name: PlayerName, Score: 3000, Level: 4, Games: 2}))

	ranking, err := Ranking(store)
	require.NoError(t, err)
	require.Len(t, ranking, 6)
	assert.Equal(t, PlayerName, ranking[0].Name)
	assert.Equal(t, 3000, ranking[0].Score)
	assert.IsNonIncreasing(t, scores(ranking))
}

func TestSubmitEntry_StorageError(t *testing.T) {
	store := &MockStorage{err: errors.New("boom")}

	assert.Error(t, SubmitEntry(store, LeaderboardEntry{Name: PlayerName}))
	_, err := Ranking(store)
	assert.Error(t, err)
}

func scores(entries []LeaderboardEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}
