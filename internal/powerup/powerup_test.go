package powerup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_TakeAndAdd(t *testing.T) {
	inv := Inventory{}

	assert.False(t, inv.Take(WordBank), "taking from an empty stock must fail")
	assert.Equal(t, 0, inv.Count(WordBank))

	inv.Add(WordBank, 2)
	inv.Add(WordBank, -5)
	assert.Equal(t, 2, inv.Count(WordBank))

	assert.True(t, inv.Take(WordBank))
	assert.True(t, inv.Take(WordBank))
	assert.False(t, inv.Take(WordBank))
	assert.Equal(t, 0, inv.Count(WordBank))
}

func TestStarter(t *testing.T) {
	inv := Starter()
	assert.Equal(t, 1, inv.Count(TimeFreeze))
	assert.Equal(t, 1, inv.Count(DoublePoints))
	assert.Equal(t, 1, inv.Count(LetterReveal))
	assert.Equal(t, 0, inv.Count(WordBank))
}

func TestCatalogueCoversAll(t *testing.T) {
	for _, id := range All {
		info, ok := Lookup(id)
		assert.True(t, ok, id)
		assert.Positive(t, info.Cost, id)
	}
}

func TestBundles(t *testing.T) {
	b, ok := LookupBundle(PackLarge)
	assert.True(t, ok)
	assert.Equal(t, 12, b.Cost)
	assert.Len(t, b.Items, 5)

	_, ok = LookupBundle("nope")
	assert.False(t, ok)
}
