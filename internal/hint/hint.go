// Package hint produces the four per-round hints and tracks which of them
// are still available in a round.
package hint

import (
	"fmt"
	"strings"

	"scramble-pro/internal/scramble"
)

// Type names a hint kind.
type Type string

const (
	Category   Type = "category"
	Definition Type = "definition"
	Shuffle    Type = "shuffle"
	Reveal     Type = "reveal"
)

// Types lists every hint kind in display order.
var Types = []Type{Category, Definition, Shuffle, Reveal}

// Label is the short button text of t.
func (t Type) Label() string {
	switch t {
	case Category:
		return "Category"
	case Definition:
		return "Definition"
	case Shuffle:
		return "New Shuffle"
	case Reveal:
		return "Letters"
	}
	return string(t)
}

// Availability records which hints may still be used this round. Entries
// only ever move from true to false.
type Availability map[Type]bool

// NewAvailability returns all hints available.
func NewAvailability() Availability {
	a := make(Availability, len(Types))
	for _, t := range Types {
		a[t] = true
	}
	return a
}

// Take marks t used, reporting false when it was already gone.
func (a Availability) Take(t Type) bool {
	if !a[t] {
		return false
	}
	a[t] = false
	return true
}

// Remaining lists the hints still available, in display order.
func (a Availability) Remaining() []Type {
	var out []Type
	for _, t := range Types {
		if a[t] {
			out = append(out, t)
		}
	}
	return out
}

// Used counts the hints consumed this round.
func (a Availability) Used() int {
	return len(Types) - len(a.Remaining())
}

// Hint is the revealed content.
type Hint struct {
	Type Type
	Text string
}

// System builds hint text.
type System struct {
	scrambler   *scramble.Scrambler
	definitions map[string]string
}

func NewSystem(scrambler *scramble.Scrambler) *System {
	return &System{scrambler: scrambler, definitions: definitions}
}

// Reveal produces the content of hint t for word.
func (s *System) Reveal(t Type, word, category string) Hint {
	h := Hint{Type: t}

	switch t {
	case Category:
		h.Text = fmt.Sprintf("Category: this is a %s", strings.ReplaceAll(category, "_", " "))
	case Definition:
		h.Text = s.define(word, category)
	case Shuffle:
		arrangement, err := s.scrambler.Scramble(word)
		if err != nil {
			arrangement = word
		}
		h.Text = "Try this arrangement: " + arrangement
	case Reveal:
		h.Text = LetterPattern(word)
	}

	return h
}

func (s *System) define(word, category string) string {
	if d, ok := s.definitions[word]; ok {
		return d
	}
	return "A word related to " + strings.ReplaceAll(category, "_", " ")
}

// LetterPattern masks word, keeping the first letter for short words, first
// and last for medium ones, and first, middle and last for long ones.
func LetterPattern(word string) string {
	letters := []rune(word)
	n := len(letters)
	if n == 0 {
		return ""
	}

	keep := map[int]bool{0: true}
	switch {
	case n <= 4:
	case n <= 7:
		keep[n-1] = true
	default:
		keep[n/2] = true
		keep[n-1] = true
	}

	mask := make([]rune, n)
	for i, r := range letters {
		if keep[i] {
			mask[i] = r
		} else {
			mask[i] = '_'
		}
	}
	return "Letters: " + string(mask)
}

var definitions = map[string]string{
	"CAT":       "A small domesticated carnivorous mammal",
	"DOG":       "A domesticated descendant of the wolf",
	"ELEPHANT":  "The largest existing land animal",
	"GIRAFFE":   "The tallest living terrestrial animal",
	"PYTHON":    "A high-level programming language",
	"CODING":    "The process of creating computer software",
	"ALGORITHM": "A step-by-step procedure for solving problems",
	"FOREST":    "A large area covered chiefly with trees",
	"SUNSET":    "The time when the sun disappears below the horizon",
}
