package main

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/game"
	"scramble-pro/internal/powerup"
	"scramble-pro/internal/progress"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() *LocalState {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	g, err := game.NewGame(game.Options{
		Rand:  rand.New(rand.NewSource(7)),
		Clock: func() time.Time { return now },
	})
	if err != nil {
		panic(err)
	}
	return initialModel(g, time.Second, zerolog.Nop())
}

func TestDigit(t *testing.T) {
	tests := []struct {
		key    string
		n      int
		expect int
		ok     bool
	}{
		{"1", 3, 0, true},
		{"3", 3, 2, true},
		{"4", 3, 0, false},
		{"0", 3, 0, false},
		{"a", 3, 0, false},
		{"f1", 3, 0, false},
	}

	for _, tt := range tests {
		got, ok := digit(tt.key, tt.n)
		if got != tt.expect || ok != tt.ok {
			t.Errorf("digit(%q, %d) = %d, %v; expected %d, %v", tt.key, tt.n, got, ok, tt.expect, tt.ok)
		}
	}
}

func TestFlags(t *testing.T) {
	var d difficultyFlag
	if err := d.Set("hard"); err != nil || d.value != catalog.Hard || !d.set {
		t.Errorf("Unexpected difficulty flag %+v, %v", d, err)
	}
	if err := d.Set("extreme"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}

	var m modeFlag
	if err := m.Set("speed"); err != nil || m.String() != "speed" {
		t.Errorf("Unexpected mode flag %q, %v", m, err)
	}
	if err := m.Set("arcade"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestModel_PlayRound(t *testing.T) {
	s := newTestModel()

	s.Update(runes("s"))
	if s.Game.Screen() != game.ModeSelect {
		t.Fatalf("Expected ModeSelect, got %s", s.Game.Screen())
	}
	s.Update(runes("1"))
	if s.Game.Screen() != game.Playing {
		t.Fatalf("Expected Playing, got %s", s.Game.Screen())
	}

	// empty submit is rejected
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Err == "" || s.Game.Round().AwaitingResolution() {
		t.Error("Empty guess should only show an error")
	}

	word := s.Game.Round().Word
	for _, r := range word {
		s.Update(runes(string(r)))
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !s.Game.Round().AwaitingResolution() || !s.Game.Round().Correct {
		t.Fatalf("Expected %s to solve the round", word)
	}
	if s.Game.Session.Score() == 0 {
		t.Error("Expected points for the solve")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Game.Session.CurrentRound != 2 {
		t.Errorf("Expected round 2, got %d", s.Game.Session.CurrentRound)
	}
	if s.View() == "" {
		t.Error("View should render")
	}
}

func TestModel_ShopAndBack(t *testing.T) {
	s := newTestModel()

	s.Update(runes("p"))
	if s.Game.Screen() != game.Shop {
		t.Fatalf("Expected Shop, got %s", s.Game.Screen())
	}
	s.Update(runes("1"))
	if s.Game.Profile.Coins != 0 {
		t.Errorf("Expected the starter pack to cost all coins, got %d", s.Game.Profile.Coins)
	}
	s.Update(runes("1"))
	if s.Err == "" {
		t.Error("Expected an error when coins run out")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.Game.Screen() != game.Home {
		t.Errorf("Expected Home, got %s", s.Game.Screen())
	}
}

func TestModel_Quit(t *testing.T) {
	s := newTestModel()

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected QuitMsg")
	}
}

func TestCycleDifficulty(t *testing.T) {
	p := progress.Preferences{Difficulty: catalog.Medium, AutoDifficulty: true}

	expected := []string{"easy", "medium", "hard", "auto", "easy"}
	for _, want := range expected {
		p = cycleDifficulty(p)
		if got := difficultySetting(p); got != want {
			t.Fatalf("Expected %s, got %s", want, got)
		}
	}
}

func TestCycleCategory(t *testing.T) {
	all := []string{"animals", "food"}
	p := progress.Preferences{}

	expected := []string{"animals", "food", "all", "animals"}
	for _, want := range expected {
		p = cycleCategory(p, all)
		if got := categorySetting(p); got != want {
			t.Fatalf("Expected %s, got %s", want, got)
		}
	}

	p.PreferredCategories = []string{"animals", "food"}
	if got := categorySetting(cycleCategory(p, all)); got != "all" {
		t.Errorf("Multi category preference should reset, got %s", got)
	}
}

func TestModel_SettingsKeys(t *testing.T) {
	s := newTestModel()

	s.Update(runes("d"))
	prefs := s.Game.Profile.Preferences
	if prefs.AutoDifficulty || prefs.Difficulty != catalog.Easy {
		t.Errorf("Expected fixed easy difficulty, got %+v", prefs)
	}
	if s.Game.NextDifficulty() != catalog.Easy {
		t.Errorf("Expected next words to be easy, got %s", s.Game.NextDifficulty())
	}

	s.Update(runes("c"))
	first := s.Game.Categories()[0]
	if got := s.Game.Profile.Preferences.PreferredCategories; len(got) != 1 || got[0] != first {
		t.Errorf("Expected preference for %s, got %v", first, got)
	}
	if s.Game.Screen() != game.Home {
		t.Errorf("Settings keys should stay on Home, got %s", s.Game.Screen())
	}
}

func TestModel_PowerUpMessages(t *testing.T) {
	s := newTestModel()
	s.Update(runes("s"))
	s.Update(runes("1"))

	// the starting profile owns no word bank
	s.Update(tea.KeyMsg{Type: tea.KeyF8})
	if s.Err != "No Word Bank left" {
		t.Errorf("Unexpected message %q", s.Err)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !s.Game.Round().AwaitingResolution() {
		t.Fatal("Expected the round to be skipped")
	}

	// power-up keys are ignored once the round is resolved
	s.Update(tea.KeyMsg{Type: tea.KeyF5})
	if s.Err != "" {
		t.Errorf("Expected no message on a resolved round, got %q", s.Err)
	}
	if s.Game.Profile.Inventory.Count(powerup.TimeFreeze) != 1 {
		t.Error("Time freeze should not be spent on a resolved round")
	}
}
