package hint

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"scramble-pro/internal/scramble"
)

func TestAvailability_OnlyTrueToFalse(t *testing.T) {
	a := NewAvailability()
	assert.Equal(t, 0, a.Used())
	assert.Equal(t, Types, a.Remaining())

	assert.True(t, a.Take(Definition))
	assert.False(t, a.Take(Definition))
	assert.False(t, a[Definition])
	assert.Equal(t, 1, a.Used())
	assert.Equal(t, []Type{Category, Shuffle, Reveal}, a.Remaining())
}

func TestLetterPattern(t *testing.T) {
	tests := []struct {
		word   string
		expect string
	}{
		{"CAT", "Letters: C__"},
		{"BIRD", "Letters: B___"},
		{"GREEN", "Letters: G___N"},
		{"GIRAFFE", "Letters: G_____E"},
		{"ELEPHANT", "Letters: E___H__T"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LetterPattern(tt.word); got != tt.expect {
			t.Errorf("LetterPattern(%q) = %q, expected %q", tt.word, got, tt.expect)
		}
	}
}

func TestSystem_Reveal(t *testing.T) {
	s := NewSystem(scramble.New(rand.New(rand.NewSource(5))))

	assert.Equal(t, "Category: this is a animals", s.Reveal(Category, "CAT", "animals").Text)
	assert.Equal(t, "A small domesticated carnivorous mammal", s.Reveal(Definition, "CAT", "animals").Text)
	assert.Equal(t, "A word related to colors", s.Reveal(Definition, "PINK", "colors").Text)

	sh := s.Reveal(Shuffle, "PLANET", "nature")
	assert.Equal(t, Shuffle, sh.Type)
	arrangement := strings.TrimPrefix(sh.Text, "Try this arrangement: ")
	assert.NotEqual(t, "PLANET", arrangement)
	assert.Len(t, arrangement, 6)

	assert.Equal(t, "Letters: C__", s.Reveal(Reveal, "CAT", "animals").Text)
}
