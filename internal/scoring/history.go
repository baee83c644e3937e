package scoring

import (
	"scramble-pro/internal/catalog"
)

// RoundResult is the immutable record of one resolved round.
type RoundResult struct {
	Word           string
	ElapsedSeconds float64
	Score          int
	Difficulty     catalog.Difficulty
	Correct        bool
}

// History holds the results of one game session in play order.
type History struct {
	results []RoundResult
	total   int
}

// Append records a result and adds its score to the running total.
func (h *History) Append(r RoundResult) {
	h.results = append(h.results, r)
	h.total += r.Score
}

// Results returns a copy of the recorded results.
func (h History) Results() []RoundResult {
	out := make([]RoundResult, len(h.results))
	copy(out, h.results)
	return out
}

func (h History) Len() int   { return len(h.results) }
func (h History) Total() int { return h.total }

// AllCorrect reports whether at least one round was played and every round
// was solved.
func (h History) AllCorrect() bool {
	if len(h.results) == 0 {
		return false
	}
	for _, r := range h.results {
		if !r.Correct {
			return false
		}
	}
	return true
}

// Correct returns the number of solved rounds.
func (h History) Correct() int {
	n := 0
	for _, r := range h.results {
		if r.Correct {
			n++
		}
	}
	return n
}

// Accuracy is the solved fraction, 0 when nothing has been played.
func (h History) Accuracy() float64 {
	if len(h.results) == 0 {
		return 0
	}
	return float64(h.Correct()) / float64(len(h.results))
}

// AverageSeconds is the mean elapsed time over all rounds.
func (h History) AverageSeconds() float64 {
	if len(h.results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range h.results {
		sum += r.ElapsedSeconds
	}
	return sum / float64(len(h.results))
}

// PerformanceMessage summarises the session for the completion screen.
func (h History) PerformanceMessage() string {
	acc := h.Accuracy()
	switch {
	case acc == 1.0:
		return "Perfect Game! You're a true word master!"
	case acc >= 0.8:
		return "Excellent performance! You're getting really good at this!"
	case acc >= 0.6:
		return "Good job! Keep practicing to improve further!"
	case h.AverageSeconds() < 20:
		return "Great speed! Work on accuracy next!"
	default:
		return "Nice effort! Every game makes you better!"
	}
}
