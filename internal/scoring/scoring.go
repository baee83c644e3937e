package scoring

import (
	"math"

	"scramble-pro/internal/catalog"
)

// Scoring holds the constants of the round score formula.
type Scoring struct {
	BasePoints       float64
	TimeBonusRate    float64 // points per second left on the clock
	StreakStep       int
	StreakCap        int
	HintPenalty      int
	MinScore         int
	DifficultyFactor map[catalog.Difficulty]float64
}

// RoundInput describes a solved round.
type RoundInput struct {
	ElapsedSeconds float64
	RoundSeconds   float64
	Difficulty     catalog.Difficulty
	HintsUsed      int
	Streak         int // streak before this round is counted
	Multiplier     int
}

// Breakdown is the itemised score of one round.
type Breakdown struct {
	Base        float64
	TimeBonus   int
	StreakBonus int
	HintPenalty int
	Multiplier  int
	Total       int
}

// InitScoring returns the standard score table.
func InitScoring() Scoring {
	return Scoring{
		BasePoints:    10,
		TimeBonusRate: 0.1,
		StreakStep:    2,
		StreakCap:     20,
		HintPenalty:   2,
		MinScore:      5,
		DifficultyFactor: map[catalog.Difficulty]float64{
			catalog.Easy:   1.0,
			catalog.Medium: 1.5,
			catalog.Hard:   2.0,
		},
	}
}

// Score computes the points awarded for a correct round.
func (s Scoring) Score(in RoundInput) int {
	return s.Breakdown(in).Total
}

// Breakdown computes the score and its components.
func (s Scoring) Breakdown(in RoundInput) Breakdown {
	mult := in.Multiplier
	if mult < 1 {
		mult = 1
	}

	b := Breakdown{
		Base:        s.BasePoints * s.DifficultyFactor[in.Difficulty],
		TimeBonus:   int(math.Floor(math.Max(0, in.RoundSeconds-in.ElapsedSeconds) * s.TimeBonusRate)),
		StreakBonus: min(in.Streak*s.StreakStep, s.StreakCap),
		HintPenalty: in.HintsUsed * s.HintPenalty,
		Multiplier:  mult,
	}

	raw := (b.Base + float64(b.TimeBonus+b.StreakBonus-b.HintPenalty)) * float64(mult)
	b.Total = max(s.MinScore, int(math.Floor(raw)))
	return b
}
