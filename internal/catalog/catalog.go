package catalog

import (
	"fmt"
	"sort"
	"strings"

	"scramble-pro/internal/scramble"
)

// Difficulty is the tier a word is drawn from.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts the lowercase tier name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) String() string { return string(d) }

// Catalog maps difficulty -> category -> words.
type Catalog map[Difficulty]map[string][]string

// Categories returns the categories available for d, sorted so that seeded
// random picks are reproducible.
func (c Catalog) Categories(d Difficulty) []string {
	cats := make([]string, 0, len(c[d]))
	for name := range c[d] {
		cats = append(cats, name)
	}
	sort.Strings(cats)
	return cats
}

// Words returns the word list for a category of the given difficulty.
func (c Catalog) Words(d Difficulty, category string) []string {
	return c[d][category]
}

// AllCategories returns the distinct category names across every difficulty.
func (c Catalog) AllCategories() []string {
	seen := map[string]bool{}
	var cats []string
	for _, d := range Difficulties {
		for _, name := range c.Categories(d) {
			if !seen[name] {
				seen[name] = true
				cats = append(cats, name)
			}
		}
	}
	sort.Strings(cats)
	return cats
}

// Validate checks that every difficulty has at least one non-empty category
// and that every word can be scrambled into a different arrangement.
func (c Catalog) Validate() error {
	for _, d := range Difficulties {
		cats := c.Categories(d)
		if len(cats) == 0 {
			return fmt.Errorf("difficulty %s has no categories", d)
		}
		for _, cat := range cats {
			words := c[d][cat]
			if len(words) == 0 {
				return fmt.Errorf("category %s/%s has no words", d, cat)
			}
			for _, w := range words {
				if !scramble.CanScramble(w) {
					return fmt.Errorf("word %q in %s/%s has a single arrangement", w, d, cat)
				}
			}
		}
	}
	return nil
}

// Default returns the built-in word list.
func Default() Catalog {
	return Catalog{
		Easy: {
			"animals": {"CAT", "DOG", "FISH", "BIRD", "BEAR", "LION", "FROG", "DUCK"},
			"colors":  {"RED", "BLUE", "GREEN", "BLACK", "WHITE", "PINK", "GOLD"},
			"food":    {"CAKE", "MILK", "BREAD", "RICE", "MEAT", "FISH", "SOUP"},
			"objects": {"BOOK", "CHAIR", "DOOR", "LAMP", "DESK", "PHONE", "CLOCK"},
		},
		Medium: {
			"animals":    {"ELEPHANT", "GIRAFFE", "MONKEY", "RABBIT", "TURTLE", "CHICKEN", "DOLPHIN"},
			"countries":  {"FRANCE", "BRAZIL", "CANADA", "EGYPT", "JAPAN", "RUSSIA", "MEXICO"},
			"technology": {"PYTHON", "STREAM", "CODING", "LAPTOP", "MOBILE", "TABLET", "CAMERA"},
			"nature":     {"JUNGLE", "PLANET", "FOREST", "GARDEN", "FLOWER", "SUNSET", "WINTER"},
		},
		Hard: {
			"advanced":     {"ALGORITHM", "PHILOSOPHY", "METAMORPHOSIS", "ENCYCLOPEDIA", "ARCHITECTURE"},
			"science":      {"CHEMISTRY", "PSYCHOLOGY", "GEOGRAPHY", "ASTRONOMY", "MATHEMATICS"},
			"professional": {"ENGINEERING", "MANAGEMENT", "DEVELOPMENT", "ADMINISTRATION", "COORDINATION"},
			"complex":      {"EXTRAORDINARY", "ENTREPRENEURSHIP", "RESPONSIBILITY", "CHARACTERISTICS", "TRANSFORMATION"},
		},
	}
}
