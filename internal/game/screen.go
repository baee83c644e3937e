package game

import (
	"context"

	"github.com/looplab/fsm"
)

// Screen is the top-level view the player is on.
type Screen string

const (
	Home         Screen = "home"
	ModeSelect   Screen = "mode_select"
	Playing      Screen = "playing"
	Complete     Screen = "complete"
	Leaderboard  Screen = "leaderboard"
	Achievements Screen = "achievements"
	Shop         Screen = "shop"
)

func screens(s ...Screen) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}

// sessionScreen reports whether s is entered only by the session commands.
func sessionScreen(s Screen) bool {
	return s == Playing || s == Complete
}

// newScreenFSM builds the navigation machine. Events are named after their
// destination screen. onLeave runs when a screen that owns a session is left
// for Home or the mode menu.
func newScreenFSM(onLeave func()) *fsm.FSM {
	leave := func(_ context.Context, e *fsm.Event) {
		if sessionScreen(Screen(e.Src)) {
			onLeave()
		}
	}
	return fsm.NewFSM(
		string(Home),
		fsm.Events{
			{Name: string(Home), Src: screens(ModeSelect, Playing, Complete, Leaderboard, Achievements, Shop), Dst: string(Home)},
			{Name: string(ModeSelect), Src: screens(Home, Complete), Dst: string(ModeSelect)},
			{Name: string(Playing), Src: screens(ModeSelect), Dst: string(Playing)},
			{Name: string(Complete), Src: screens(Playing), Dst: string(Complete)},
			{Name: string(Leaderboard), Src: screens(Home), Dst: string(Leaderboard)},
			{Name: string(Achievements), Src: screens(Home), Dst: string(Achievements)},
			{Name: string(Shop), Src: screens(Home), Dst: string(Shop)},
		},
		fsm.Callbacks{
			"enter_" + string(Home):       leave,
			"enter_" + string(ModeSelect): leave,
		},
	)
}
