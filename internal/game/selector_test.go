package game

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/progress"
)

func TestSelector_AutoDifficulty(t *testing.T) {
	s := NewSelector(catalog.Default(), rand.New(rand.NewSource(1)))

	tests := []struct {
		correct, total int
		expect         catalog.Difficulty
	}{
		{0, 0, catalog.Easy},
		{3, 10, catalog.Easy},
		{4, 10, catalog.Medium},
		{8, 10, catalog.Medium},
		{9, 10, catalog.Hard},
	}

	for _, tt := range tests {
		p := progress.NewProfile()
		p.Stats.WordsCorrect = tt.correct
		p.Stats.WordsTotal = tt.total
		if got := s.Difficulty(p); got != tt.expect {
			t.Errorf("%d/%d: expected %s, got %s", tt.correct, tt.total, tt.expect, got)
		}
	}
}

func TestSelector_FixedDifficulty(t *testing.T) {
	s := NewSelector(catalog.Default(), rand.New(rand.NewSource(2)))
	p := progress.NewProfile()
	p.Preferences = progress.Preferences{Difficulty: catalog.Hard}

	for i := 0; i < 20; i++ {
		pick := s.Select(p)
		if pick.Difficulty != catalog.Hard {
			t.Fatalf("Expected hard, got %s", pick.Difficulty)
		}
		if !slices.Contains(catalog.Default().Words(catalog.Hard, pick.Category), pick.Word) {
			t.Errorf("%s is not in %s", pick.Word, pick.Category)
		}
	}
}

func TestSelector_PreferredCategories(t *testing.T) {
	s := NewSelector(catalog.Default(), rand.New(rand.NewSource(3)))
	p := progress.NewProfile()
	p.Preferences = progress.Preferences{
		Difficulty:          catalog.Medium,
		PreferredCategories: []string{"nature", "sports"},
	}

	for i := 0; i < 20; i++ {
		if pick := s.Select(p); pick.Category != "nature" {
			t.Fatalf("Expected nature, got %s", pick.Category)
		}
	}

	// no overlap falls back to every category
	p.Preferences.PreferredCategories = []string{"sports"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[s.Select(p).Category] = true
	}
	if len(seen) < 2 {
		t.Errorf("Expected several categories, got %v", seen)
	}
}

func TestLookupMode(t *testing.T) {
	cfg, err := LookupMode(Themed)
	if err != nil {
		t.Fatalf("LookupMode failed: %v", err)
	}
	if cfg.Rounds != 8 || cfg.RoundTime != 50*time.Second {
		t.Errorf("Unexpected themed config %+v", cfg)
	}
	if _, err := LookupMode("arcade"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestSession_Rounds(t *testing.T) {
	cfg, _ := LookupMode(Classic)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession(cfg, start)

	if s.CurrentRound != 1 || s.IsFinished() || s.IsFinalRound() {
		t.Error("New session should be on its first round")
	}
	s.CurrentRound = 5
	if !s.IsFinalRound() || s.IsFinished() {
		t.Error("Round 5 of 5 should be final")
	}
	s.CurrentRound = 6
	if !s.IsFinished() {
		t.Error("Session should be finished")
	}
	if s.Duration(start.Add(time.Minute)) != time.Minute {
		t.Error("Unexpected duration")
	}
	if s.ID == NewSession(cfg, start).ID {
		t.Error("Sessions should get distinct ids")
	}
}
