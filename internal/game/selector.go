package game

import (
	"math/rand"
	"slices"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/progress"
)

const (
	easyBelow = 0.4
	hardAbove = 0.8
)

// Pick is the word chosen for a round.
type Pick struct {
	Word       string
	Category   string
	Difficulty catalog.Difficulty
}

// Selector chooses words from a catalog according to the player's profile.
type Selector struct {
	catalog catalog.Catalog
	rng     *rand.Rand
}

func NewSelector(c catalog.Catalog, rng *rand.Rand) *Selector {
	return &Selector{catalog: c, rng: rng}
}

// Difficulty resolves the tier to play. With auto difficulty it follows the
// player's lifetime accuracy.
func (s *Selector) Difficulty(p *progress.Profile) catalog.Difficulty {
	if !p.Preferences.AutoDifficulty {
		return p.Preferences.Difficulty
	}
	accuracy := p.Accuracy()
	switch {
	case accuracy < easyBelow:
		return catalog.Easy
	case accuracy > hardAbove:
		return catalog.Hard
	default:
		return catalog.Medium
	}
}

// Select picks a category then a word uniformly.
func (s *Selector) Select(p *progress.Profile) Pick {
	d := s.Difficulty(p)

	categories := s.catalog.Categories(d)
	var preferred []string
	for _, c := range categories {
		if slices.Contains(p.Preferences.PreferredCategories, c) {
			preferred = append(preferred, c)
		}
	}
	if len(preferred) > 0 {
		categories = preferred
	}

	category := categories[s.rng.Intn(len(categories))]
	words := s.catalog.Words(d, category)
	return Pick{
		Word:       words[s.rng.Intn(len(words))],
		Category:   category,
		Difficulty: d,
	}
}
