package game

import (
	"time"

	"github.com/google/uuid"

	"scramble-pro/internal/scoring"
	"scramble-pro/internal/state"
)

// Session is one run of a game mode.
type Session struct {
	ID           uuid.UUID
	Mode         ModeConfig
	CurrentRound int // 1-based
	Results      scoring.History
	Round        *state.Round

	started time.Time
}

func NewSession(mode ModeConfig, now time.Time) *Session {
	return &Session{
		ID:           uuid.New(),
		Mode:         mode,
		CurrentRound: 1,
		started:      now,
	}
}

// Score is the running total of the session.
func (s *Session) Score() int {
	return s.Results.Total()
}

// TotalRounds is the number of rounds the mode plays.
func (s *Session) TotalRounds() int {
	return s.Mode.Rounds
}

// IsFinished reports whether every round has been played.
func (s *Session) IsFinished() bool {
	return s.CurrentRound > s.Mode.Rounds
}

// IsFinalRound reports whether the current round is the last one.
func (s *Session) IsFinalRound() bool {
	return s.CurrentRound == s.Mode.Rounds
}

// Duration is the wall time since the session began.
func (s *Session) Duration(now time.Time) time.Duration {
	return now.Sub(s.started)
}
