// Package progress tracks XP, levels, streaks, lifetime statistics and
// achievements of the player.
package progress

import (
	"math"

	"github.com/rs/zerolog"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/scoring"
)

const (
	xpPerGame           = 50
	coinsPerLevel       = 2
	speedDemonSeconds   = 10
	hotStreak           = 3
	wordMasterThreshold = 100
	risingStarLevel     = 10
)

var xpByDifficulty = map[catalog.Difficulty]int{
	catalog.Easy:   15,
	catalog.Medium: 25,
	catalog.Hard:   40,
}

// EventKind tells the shell what to announce.
type EventKind int

const (
	LevelUp EventKind = iota
	AchievementUnlocked
)

// Event is a notable progression change.
type Event struct {
	Kind        EventKind
	Level       int
	Coins       int
	Achievement Achievement
}

// RoundOutcome is what the engine needs to know about a resolved round.
type RoundOutcome struct {
	Correct        bool
	ElapsedSeconds float64
	Difficulty     catalog.Difficulty
	Category       string
	HintsUsed      int
	FinalRound     bool
}

// Engine applies progression rules to a profile.
type Engine struct {
	Profile *Profile

	categories []string
	events     []Event
	log        zerolog.Logger
}

// NewEngine wraps profile. categories are all category names of the active
// catalog, used for the category_master milestone.
func NewEngine(profile *Profile, categories []string, log zerolog.Logger) *Engine {
	return &Engine{
		Profile:    profile,
		categories: categories,
		log:        log,
	}
}

// DrainEvents returns and clears the pending events.
func (e *Engine) DrainEvents() []Event {
	ev := e.events
	e.events = nil
	return ev
}

// AddXP grants amount and applies every level up it earns.
func (e *Engine) AddXP(amount int, reason string) {
	if amount <= 0 {
		return
	}
	p := e.Profile
	p.XP += amount
	e.log.Debug().Int("xp", amount).Str("reason", reason).Int("total", p.XP).Msg("xp granted")

	for p.LevelProgress() >= 100 {
		p.Level++
		coins := p.Level * coinsPerLevel
		p.Coins += coins
		e.events = append(e.events, Event{Kind: LevelUp, Level: p.Level, Coins: coins})
		e.log.Info().Int("level", p.Level).Int("coins", coins).Msg("level up")

		if p.Level >= risingStarLevel {
			e.Unlock(Level10)
		}
	}
}

// Unlock adds id to the profile and grants its XP once. It reports whether
// the achievement was newly unlocked.
func (e *Engine) Unlock(id AchievementID) bool {
	if e.Profile.HasAchievement(id) {
		return false
	}
	a, ok := LookupAchievement(id)
	if !ok {
		return false
	}

	e.Profile.Achievements = append(e.Profile.Achievements, id)
	e.events = append(e.events, Event{Kind: AchievementUnlocked, Achievement: a})
	e.log.Info().Str("achievement", string(id)).Msg("achievement unlocked")

	e.AddXP(a.XP, "achievement "+a.Name)
	return true
}

// ResolveRound updates statistics and streaks for one round and checks the
// per-round achievements.
func (e *Engine) ResolveRound(o RoundOutcome) {
	p := e.Profile
	p.Stats.WordsTotal++

	if !o.Correct {
		p.CurrentStreak = 0
		return
	}

	p.Stats.WordsCorrect++
	p.CurrentStreak++
	p.BestStreak = max(p.BestStreak, p.CurrentStreak)
	p.Stats.FastestSolve = math.Min(p.Stats.FastestSolve, o.ElapsedSeconds)
	if o.Category != "" {
		p.categoriesSolved[o.Category] = true
	}

	if o.ElapsedSeconds < speedDemonSeconds {
		e.Unlock(SpeedDemon)
	}
	if p.CurrentStreak >= hotStreak {
		e.Unlock(Streak3)
	}
	if o.HintsUsed == 0 && o.FinalRound {
		e.Unlock(HintLess)
	}
	if e.allCategoriesSolved() {
		e.Unlock(CategoryMaster)
	}

	e.AddXP(xpByDifficulty[o.Difficulty], "correct answer")
}

// ResolveGame closes a finished session.
func (e *Engine) ResolveGame(results scoring.History) {
	p := e.Profile
	p.TotalGames++
	p.Stats.GamesPlayed++
	p.TotalScore += results.Total()

	if results.AllCorrect() {
		p.Stats.PerfectGames++
		e.Unlock(PerfectGame)
	}
	if p.TotalGames == 1 {
		e.Unlock(FirstGame)
	}
	if p.Stats.WordsCorrect >= wordMasterThreshold {
		e.Unlock(WordMaster)
	}

	e.AddXP(xpPerGame, "game completed")
}

// RecordHint counts a hint used by the player.
func (e *Engine) RecordHint() {
	e.Profile.Stats.HintsUsed++
}

// SetPreferences replaces the word selection preferences.
func (e *Engine) SetPreferences(prefs Preferences) {
	e.Profile.Preferences = prefs
}

func (e *Engine) allCategoriesSolved() bool {
	if len(e.categories) == 0 {
		return false
	}
	for _, c := range e.categories {
		if !e.Profile.SolvedCategory(c) {
			return false
		}
	}
	return true
}
