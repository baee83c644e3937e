package scramble

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"
)

// ErrSingleArrangement is returned for words whose letters can only be
// arranged one way (a single letter, or one letter repeated).
var ErrSingleArrangement = errors.New("word has a single arrangement")

// maxAttempts bounds the random retries before falling back to a swap.
const maxAttempts = 32

// Strategy selects how letters are rearranged.
type Strategy int

const (
	Shuffle    Strategy = iota // full random permutation
	VowelSplit                 // vowels shuffled, then consonants shuffled
	HalfSwap                   // swap halves at the midpoint, then shuffle
)

var strategies = []Strategy{Shuffle, VowelSplit, HalfSwap}

// Scrambler rearranges words using an injected random source.
type Scrambler struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Scrambler {
	return &Scrambler{rng: rng}
}

// CanScramble reports whether at least one arrangement of word differs from
// word itself.
func CanScramble(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}

// Scramble returns a permutation of word that is guaranteed to differ from it.
func (s *Scrambler) Scramble(word string) (string, error) {
	if !CanScramble(word) {
		return "", ErrSingleArrangement
	}

	for i := 0; i < maxAttempts; i++ {
		strategy := strategies[s.rng.Intn(len(strategies))]
		if out := s.apply(strategy, word); out != word {
			return out, nil
		}
	}
	return swapFirstDiffering(word), nil
}

func (s *Scrambler) apply(strategy Strategy, word string) string {
	letters := []rune(word)

	switch strategy {
	case Shuffle:
		s.shuffle(letters)
	case VowelSplit:
		var vowels, consonants []rune
		for _, r := range letters {
			if isVowel(r) {
				vowels = append(vowels, r)
			} else {
				consonants = append(consonants, r)
			}
		}
		s.shuffle(vowels)
		s.shuffle(consonants)
		letters = append(vowels, consonants...)
	case HalfSwap:
		mid := len(letters) / 2
		letters = append(append([]rune{}, letters[mid:]...), letters[:mid]...)
		s.shuffle(letters)
	}

	return string(letters)
}

func (s *Scrambler) shuffle(r []rune) {
	s.rng.Shuffle(len(r), func(i, j int) {
		r[i], r[j] = r[j], r[i]
	})
}

// swapFirstDiffering swaps the first letter with the first later letter that
// differs from it. Callers must have checked CanScramble.
func swapFirstDiffering(word string) string {
	letters := []rune(word)
	for j := 1; j < len(letters); j++ {
		if letters[j] != letters[0] {
			letters[0], letters[j] = letters[j], letters[0]
			break
		}
	}
	return string(letters)
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}
