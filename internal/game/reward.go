package game

import (
	"errors"
	"fmt"

	"scramble-pro/internal/hint"
	"scramble-pro/internal/powerup"
)

// Reward is what watching an ad pays out.
type Reward string

const (
	RewardPowerUp Reward = "power_up"
	RewardHint    Reward = "hint"
	RewardCoins   Reward = "coins"
	RewardXP      Reward = "xp"
)

const (
	adCoins = 3
	adXP    = 50
)

var ErrNoHintLeft = errors.New("no hint left this round")

// GrantAdReward pays out kind and returns the message to show. A hint reward
// uses up the hint for the round but is not counted as a hint used by the
// player.
func (g *Game) GrantAdReward(kind Reward) (string, error) {
	var msg string

	switch kind {
	case RewardPowerUp:
		id := g.economy.GrantRandomPowerUp()
		info, _ := powerup.Lookup(id)
		msg = fmt.Sprintf("Earned %s!", info.Name)
	case RewardHint:
		r, err := g.activeRound()
		if err != nil {
			return "", err
		}
		remaining := r.Hints.Remaining()
		if len(remaining) == 0 {
			return "", ErrNoHintLeft
		}
		t := remaining[g.rng.Intn(len(remaining))]
		r.Hints.Take(t)
		h := g.hints.Reveal(t, r.Word, r.Category)
		g.LastHint = &h
		msg = "Free hint earned! " + h.Text
	case RewardCoins:
		g.economy.GrantCoins(adCoins)
		msg = fmt.Sprintf("Earned %d coins!", adCoins)
	case RewardXP:
		g.engine.AddXP(adXP, "ad reward")
		msg = fmt.Sprintf("Earned %d XP!", adXP)
	default:
		return "", fmt.Errorf("unknown reward %q", kind)
	}

	g.log.Info().Str("reward", string(kind)).Msg("ad reward granted")
	g.Feedback = Feedback{Success, msg}
	return msg, nil
}

// HintAvailable reports whether t can still be used this round.
func (g *Game) HintAvailable(t hint.Type) bool {
	r := g.Round()
	return r != nil && !r.AwaitingResolution() && r.Hints[t]
}
