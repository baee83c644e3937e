package progress

import (
	"math"
	"slices"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/powerup"
)

const (
	startingCoins = 5
	baseXP        = 500
	levelFactor   = 1.5
)

// Statistics are lifetime counters of the player.
type Statistics struct {
	GamesPlayed  int
	WordsCorrect int
	WordsTotal   int
	FastestSolve float64 // seconds, +Inf until the first solve
	PerfectGames int
	HintsUsed    int
	PowerUpsUsed int
}

// Preferences steer word selection.
type Preferences struct {
	Difficulty          catalog.Difficulty
	PreferredCategories []string
	AutoDifficulty      bool
}

// Profile is the player's progression record for the process lifetime.
type Profile struct {
	Level         int
	XP            int
	Coins         int
	CurrentStreak int
	BestStreak    int
	TotalGames    int
	TotalScore    int
	Achievements  []AchievementID // unlock order
	Inventory     powerup.Inventory
	Stats         Statistics
	Preferences   Preferences

	categoriesSolved map[string]bool
}

// NewProfile returns the profile of a brand new player.
func NewProfile() *Profile {
	return &Profile{
		Level:     1,
		Coins:     startingCoins,
		Inventory: powerup.Starter(),
		Stats: Statistics{
			FastestSolve: math.Inf(1),
		},
		Preferences: Preferences{
			Difficulty:     catalog.Medium,
			AutoDifficulty: true,
		},
		categoriesSolved: map[string]bool{},
	}
}

// HasAchievement reports whether id has been unlocked.
func (p *Profile) HasAchievement(id AchievementID) bool {
	return slices.Contains(p.Achievements, id)
}

// RecentAchievements returns up to n of the latest unlocks, newest last.
func (p *Profile) RecentAchievements(n int) []AchievementID {
	if len(p.Achievements) <= n {
		return slices.Clone(p.Achievements)
	}
	return slices.Clone(p.Achievements[len(p.Achievements)-n:])
}

// Accuracy is words_correct / max(1, words_total).
func (p *Profile) Accuracy() float64 {
	return float64(p.Stats.WordsCorrect) / float64(max(1, p.Stats.WordsTotal))
}

// SolvedCategory reports whether a word of category has been solved.
func (p *Profile) SolvedCategory(category string) bool {
	return p.categoriesSolved[category]
}

// XPForLevel is the cumulative XP at which level n begins.
func XPForLevel(n int) float64 {
	return baseXP * float64(n-1) * levelFactor
}

// LevelProgress returns the percentage of the way to the next level.
func (p *Profile) LevelProgress() float64 {
	floor := XPForLevel(p.Level)
	needed := XPForLevel(p.Level+1) - floor
	if needed <= 0 {
		return 100
	}
	return (float64(p.XP) - floor) / needed * 100
}

// XPIntoLevel returns the XP earned inside the current level and the XP the
// level spans.
func (p *Profile) XPIntoLevel() (int, int) {
	floor := XPForLevel(p.Level)
	return int(float64(p.XP) - floor), int(XPForLevel(p.Level+1) - floor)
}
