package state

import (
	"context"
	"sort"
	"time"

	"github.com/looplab/fsm"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/hint"
)

// Round states.
const (
	Guessing = "guessing"
	Resolved = "resolved"
)

// Round is the single live word challenge of a session.
type Round struct {
	Word       string
	Scrambled  string
	Category   string
	Difficulty catalog.Difficulty
	Start      time.Time
	Hints      hint.Availability
	Revealed   map[int]bool // answer positions shown by letter_reveal
	Multiplier int
	WordBank   []string // nil unless the word bank power-up is active
	Correct    bool     // meaningful once resolved
	Elapsed    time.Duration
	FSM        *fsm.FSM

	freezeFrom  time.Time
	freezeUntil time.Time
}

// NewRound starts a round for word at now.
func NewRound(word, scrambled, category string, difficulty catalog.Difficulty, now time.Time) *Round {
	r := &Round{
		Word:       word,
		Scrambled:  scrambled,
		Category:   category,
		Difficulty: difficulty,
		Start:      now,
		Hints:      hint.NewAvailability(),
		Revealed:   map[int]bool{},
		Multiplier: 1,
	}

	r.FSM = fsm.NewFSM(
		Guessing,
		fsm.Events{
			{Name: "solve", Src: []string{Guessing}, Dst: Resolved},
			{Name: "miss", Src: []string{Guessing}, Dst: Resolved},
		},
		fsm.Callbacks{
			"enter_" + Resolved: func(_ context.Context, e *fsm.Event) {
				r.Correct = e.Event == "solve"
				if len(e.Args) > 0 {
					r.Elapsed = e.Args[0].(time.Duration)
				}
			},
		},
	)

	return r
}

// Resolve closes the round with the elapsed time to record. It fails when
// the round is already resolved.
func (r *Round) Resolve(ctx context.Context, correct bool, elapsed time.Duration) error {
	event := "miss"
	if correct {
		event = "solve"
	}
	return r.FSM.Event(ctx, event, elapsed)
}

// AwaitingResolution is true once the round is resolved and only "next
// round" is accepted.
func (r *Round) AwaitingResolution() bool {
	return r.FSM.Current() == Resolved
}

// ElapsedAt returns the time counted against the round budget, excluding any
// frozen interval.
func (r *Round) ElapsedAt(now time.Time) time.Duration {
	r.settleFreeze(now)
	if !r.freezeUntil.IsZero() {
		return r.freezeFrom.Sub(r.Start)
	}
	return now.Sub(r.Start)
}

// Freeze suspends the round clock for d starting at now. Freezing again
// while frozen restarts the countdown of the freeze.
func (r *Round) Freeze(now time.Time, d time.Duration) {
	r.settleFreeze(now)
	if r.freezeUntil.IsZero() {
		r.freezeFrom = now
	}
	r.freezeUntil = now.Add(d)
}

// FreezeRemaining returns how much of the freeze is left at now.
func (r *Round) FreezeRemaining(now time.Time) time.Duration {
	r.settleFreeze(now)
	if r.freezeUntil.IsZero() {
		return 0
	}
	return r.freezeUntil.Sub(now)
}

// settleFreeze ends a lapsed freeze by moving the start reference forward by
// the frozen interval.
func (r *Round) settleFreeze(now time.Time) {
	if r.freezeUntil.IsZero() || now.Before(r.freezeUntil) {
		return
	}
	r.Start = r.Start.Add(r.freezeUntil.Sub(r.freezeFrom))
	r.freezeFrom = time.Time{}
	r.freezeUntil = time.Time{}
}

// Hidden returns the answer positions not yet revealed, ascending.
func (r *Round) Hidden() []int {
	var out []int
	for i := range []rune(r.Word) {
		if !r.Revealed[i] {
			out = append(out, i)
		}
	}
	return out
}

// RevealPositions marks positions as shown.
func (r *Round) RevealPositions(positions []int) {
	for _, p := range positions {
		r.Revealed[p] = true
	}
}

// RevealedPositions returns the shown positions, ascending.
func (r *Round) RevealedPositions() []int {
	out := make([]int, 0, len(r.Revealed))
	for p := range r.Revealed {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
