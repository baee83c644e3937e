// Package economy spends and grants power-ups against the player profile and
// applies their effect to the live round.
package economy

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"scramble-pro/internal/powerup"
	"scramble-pro/internal/progress"
	"scramble-pro/internal/scramble"
	"scramble-pro/internal/state"
)

const powerUserThreshold = 10

// Economy owns the power-up inventory operations.
type Economy struct {
	engine    *progress.Engine
	scrambler *scramble.Scrambler
	rng       *rand.Rand
	log       zerolog.Logger
}

func New(engine *progress.Engine, scrambler *scramble.Scrambler, rng *rand.Rand, log zerolog.Logger) *Economy {
	return &Economy{
		engine:    engine,
		scrambler: scrambler,
		rng:       rng,
		log:       log,
	}
}

// Consume spends one id and applies it to round. It reports false, changing
// nothing, when none is owned or no round is accepting guesses.
func (e *Economy) Consume(round *state.Round, id powerup.ID, now time.Time) bool {
	if round == nil || round.AwaitingResolution() {
		return false
	}
	p := e.engine.Profile
	if !p.Inventory.Take(id) {
		return false
	}
	p.Stats.PowerUpsUsed++

	switch id {
	case powerup.TimeFreeze:
		round.Freeze(now, powerup.FreezeSeconds*time.Second)
	case powerup.DoublePoints:
		round.Multiplier = powerup.PointMultiplier
	case powerup.LetterReveal:
		hidden := round.Hidden()
		e.rng.Shuffle(len(hidden), func(i, j int) { hidden[i], hidden[j] = hidden[j], hidden[i] })
		round.RevealPositions(hidden[:min(powerup.RevealCount, len(hidden))])
	case powerup.WordBank:
		options := append([]string{round.Word}, e.scrambler.FakeWords(round.Word, powerup.WordBankDecoys)...)
		e.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
		round.WordBank = options
	case powerup.ShuffleMaster:
		if s, err := e.scrambler.Scramble(round.Word); err == nil {
			round.Scrambled = s
		}
	}

	e.log.Info().Str("powerup", string(id)).Int("left", p.Inventory.Count(id)).Msg("power-up used")

	if p.Stats.PowerUpsUsed >= powerUserThreshold {
		e.engine.Unlock(progress.PowerUser)
	}
	return true
}

// Purchase buys bundle id with coins. It reports false when the bundle is
// unknown or the player cannot afford it.
func (e *Economy) Purchase(id powerup.BundleID) bool {
	b, ok := powerup.LookupBundle(id)
	if !ok {
		return false
	}
	p := e.engine.Profile
	if p.Coins < b.Cost {
		e.log.Debug().Str("bundle", string(id)).Int("coins", p.Coins).Msg("purchase declined")
		return false
	}

	p.Coins -= b.Cost
	for _, item := range b.Items {
		p.Inventory.Add(item.ID, item.Quantity)
	}
	e.log.Info().Str("bundle", string(id)).Int("coins", p.Coins).Msg("bundle purchased")
	return true
}

// GrantRandomPowerUp adds one uniformly chosen power-up.
func (e *Economy) GrantRandomPowerUp() powerup.ID {
	id := powerup.All[e.rng.Intn(len(powerup.All))]
	e.engine.Profile.Inventory.Add(id, 1)
	return id
}

// GrantCoins adds n coins.
func (e *Economy) GrantCoins(n int) {
	e.engine.Profile.Coins += n
}
