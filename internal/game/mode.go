package game

import (
	"fmt"
	"time"
)

// Mode names a game variant.
type Mode string

const (
	Classic  Mode = "classic"
	Speed    Mode = "speed"
	Marathon Mode = "marathon"
	Themed   Mode = "themed"
)

// ModeConfig is the shape of a session in a mode.
type ModeConfig struct {
	Mode        Mode
	Name        string
	Description string
	Rounds      int
	RoundTime   time.Duration
}

// Modes lists the variants in menu order.
var Modes = []ModeConfig{
	{Classic, "Classic Mode", "Traditional 5-round word scramble", 5, 60 * time.Second},
	{Speed, "Speed Challenge", "10 rounds, 30 seconds each", 10, 30 * time.Second},
	{Marathon, "Marathon Mode", "20 rounds with increasing difficulty", 20, 45 * time.Second},
	{Themed, "Category Challenge", "Focus on specific word categories", 8, 50 * time.Second},
}

// LookupMode returns the configuration of m.
func LookupMode(m Mode) (ModeConfig, error) {
	for _, c := range Modes {
		if c.Mode == m {
			return c, nil
		}
	}
	return ModeConfig{}, fmt.Errorf("unknown game mode %q", m)
}
