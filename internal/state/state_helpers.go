package state

import (
	"strings"
)

// NormalizeGuess trims and uppercases raw player input.
func NormalizeGuess(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsCorrect compares a normalized guess to the answer.
func (r *Round) IsCorrect(guess string) bool {
	return guess == r.Word
}

// Pattern renders the answer with revealed letters in place and '_'
// elsewhere.
func (r *Round) Pattern() string {
	letters := []rune(r.Word)
	mask := make([]rune, len(letters))
	for i, ch := range letters {
		if r.Revealed[i] {
			mask[i] = ch
		} else {
			mask[i] = '_'
		}
	}
	return string(mask)
}

// HasWordBank reports whether the word bank options are shown.
func (r *Round) HasWordBank() bool {
	return len(r.WordBank) > 0
}
