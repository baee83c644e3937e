package economy

import (
	"context"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/powerup"
	"scramble-pro/internal/progress"
	"scramble-pro/internal/scramble"
	"scramble-pro/internal/state"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newEconomy(t *testing.T) (*Economy, *progress.Profile) {
	t.Helper()
	rng := rand.New(rand.NewSource(11))
	profile := progress.NewProfile()
	engine := progress.NewEngine(profile, nil, zerolog.Nop())
	return New(engine, scramble.New(rng), rng, zerolog.Nop()), profile
}

func newRound() *state.Round {
	return state.NewRound("PLANET", "TENALP", "nature", catalog.Medium, t0)
}

func TestConsume_ZeroStock(t *testing.T) {
	e, profile := newEconomy(t)
	r := newRound()

	assert.False(t, e.Consume(r, powerup.WordBank, t0))
	assert.Equal(t, 0, profile.Stats.PowerUpsUsed)
	assert.Nil(t, r.WordBank)
}

func TestConsume_NoActiveRound(t *testing.T) {
	e, profile := newEconomy(t)

	assert.False(t, e.Consume(nil, powerup.TimeFreeze, t0))

	r := newRound()
	require.NoError(t, r.Resolve(context.Background(), true, time.Second))
	assert.False(t, e.Consume(r, powerup.TimeFreeze, t0))
	assert.Equal(t, 1, profile.Inventory.Count(powerup.TimeFreeze))
}

func TestConsume_TimeFreeze(t *testing.T) {
	e, profile := newEconomy(t)
	r := newRound()

	require.True(t, e.Consume(r, powerup.TimeFreeze, t0.Add(5*time.Second)))
	assert.Equal(t, 0, profile.Inventory.Count(powerup.TimeFreeze))
	assert.Equal(t, 1, profile.Stats.PowerUpsUsed)
	assert.Equal(t, 5*time.Second, r.ElapsedAt(t0.Add(12*time.Second)))
	assert.Equal(t, 10*time.Second, r.ElapsedAt(t0.Add(20*time.Second)))
}

func TestConsume_DoublePoints(t *testing.T) {
	e, _ := newEconomy(t)
	r := newRound()

	require.True(t, e.Consume(r, powerup.DoublePoints, t0))
	assert.Equal(t, 2, r.Multiplier)
}

func TestConsume_LetterReveal(t *testing.T) {
	e, profile := newEconomy(t)
	r := newRound()

	require.True(t, e.Consume(r, powerup.LetterReveal, t0))
	assert.Len(t, r.RevealedPositions(), 2)

	// only one hidden letter left
	r.RevealPositions([]int{0, 1, 2, 3, 4, 5})
	delete(r.Revealed, 3)
	profile.Inventory.Add(powerup.LetterReveal, 1)
	require.True(t, e.Consume(r, powerup.LetterReveal, t0))
	assert.Equal(t, "PLANET", r.Pattern())
}

func TestConsume_WordBank(t *testing.T) {
	e, profile := newEconomy(t)
	profile.Inventory.Add(powerup.WordBank, 1)
	r := newRound()

	require.True(t, e.Consume(r, powerup.WordBank, t0))
	require.Len(t, r.WordBank, 3)
	assert.True(t, slices.Contains(r.WordBank, "PLANET"))

	seen := map[string]bool{}
	for _, w := range r.WordBank {
		assert.False(t, seen[w], "duplicate option %s", w)
		seen[w] = true
	}
}

func TestConsume_ShuffleMaster(t *testing.T) {
	e, profile := newEconomy(t)
	profile.Inventory.Add(powerup.ShuffleMaster, 1)
	r := newRound()

	require.True(t, e.Consume(r, powerup.ShuffleMaster, t0))
	assert.NotEqual(t, "PLANET", r.Scrambled)
	assert.Len(t, r.Scrambled, 6)
}

func TestConsume_PowerUser(t *testing.T) {
	e, profile := newEconomy(t)
	profile.Inventory.Add(powerup.DoublePoints, 20)

	for i := 0; i < 9; i++ {
		require.True(t, e.Consume(newRound(), powerup.DoublePoints, t0))
	}
	assert.False(t, profile.HasAchievement(progress.PowerUser))

	require.True(t, e.Consume(newRound(), powerup.DoublePoints, t0))
	assert.True(t, profile.HasAchievement(progress.PowerUser))
	assert.Equal(t, 200, profile.XP)
}

func TestPurchase(t *testing.T) {
	e, profile := newEconomy(t)
	profile.Coins = 13

	require.True(t, e.Purchase(powerup.PackMedium))
	assert.Equal(t, 5, profile.Coins)
	assert.Equal(t, 4, profile.Inventory.Count(powerup.LetterReveal))
	assert.Equal(t, 2, profile.Inventory.Count(powerup.WordBank))

	// cannot afford
	assert.False(t, e.Purchase(powerup.PackLarge))
	assert.Equal(t, 5, profile.Coins)
	assert.Equal(t, 0, profile.Inventory.Count(powerup.ShuffleMaster))

	assert.False(t, e.Purchase("unknown"))
}

func TestGrantRandomPowerUp(t *testing.T) {
	e, profile := newEconomy(t)
	before := 0
	for _, id := range powerup.All {
		before += profile.Inventory.Count(id)
	}

	id := e.GrantRandomPowerUp()
	assert.Contains(t, powerup.All, id)

	after := 0
	for _, id := range powerup.All {
		after += profile.Inventory.Count(id)
	}
	assert.Equal(t, before+1, after)
}
