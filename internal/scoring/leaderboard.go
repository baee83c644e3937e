package scoring

import (
	"fmt"
	"sort"
)

// PlayerName is the leaderboard name used for the local player.
const PlayerName = "You"

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Name  string
	Score int
	Level int
	Games int
}

// LeaderboardStorage defines the interface for loading and saving leaderboard
// rows. This allows for mocking the storage layer during tests.
type LeaderboardStorage interface {
	// LoadAll loads all leaderboard entries.
	LoadAll() ([]LeaderboardEntry, error)
	// SaveAll replaces all leaderboard entries.
	SaveAll(entries []LeaderboardEntry) error
}

// MemoryStorage keeps leaderboard entries for the lifetime of the process.
type MemoryStorage struct {
	entries []LeaderboardEntry
}

// NewMemoryStorage creates a store seeded with the rival players.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: []LeaderboardEntry{
		{Name: "WordMaster", Score: 2450, Level: 15, Games: 127},
		{Name: "SpeedDemon", Score: 2380, Level: 14, Games: 98},
		{Name: "BrainPower", Score: 2220, Level: 12, Games: 156},
		{Name: "QuickThink", Score: 2100, Level: 11, Games: 89},
		{Name: "PuzzlePro", Score: 1980, Level: 10, Games: 143},
	}}
}

func (m *MemoryStorage) LoadAll() ([]LeaderboardEntry, error) {
	out := make([]LeaderboardEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryStorage) SaveAll(entries []LeaderboardEntry) error {
	m.entries = make([]LeaderboardEntry, len(entries))
	copy(m.entries, entries)
	return nil
}

// SubmitEntry stores entry, replacing any previous row with the same name.
func SubmitEntry(storage LeaderboardStorage, entry LeaderboardEntry) error {
	all, err := storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load leaderboard for saving: %w", err)
	}

	updated := make([]LeaderboardEntry, 0, len(all)+1)
	for _, e := range all {
		if e.Name != entry.Name {
			updated = append(updated, e)
		}
	}
	updated = append(updated, entry)

	return storage.SaveAll(updated)
}

// Ranking returns all entries sorted by score, highest first.
func Ranking(storage LeaderboardStorage) ([]LeaderboardEntry, error) {
	all, err := storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load leaderboard: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	return all, nil
}
