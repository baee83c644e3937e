package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "scramble.log", cfg.LogFile)
	assert.Equal(t, 2*time.Second, cfg.TickInterval)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.True(t, cfg.AutoDifficulty)
	assert.Empty(t, cfg.WordsPaths)
	assert.Empty(t, cfg.PreferredCategories())
	assert.False(t, cfg.Seeded())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCRAMBLE_SEED", "42")
	t.Setenv("SCRAMBLE_TICK", "500ms")
	t.Setenv("SCRAMBLE_WORDS", "a.txt,b.txt")
	t.Setenv("SCRAMBLE_DIFFICULTY", "hard")
	t.Setenv("SCRAMBLE_AUTO_DIFFICULTY", "false")
	t.Setenv("SCRAMBLE_CATEGORIES", "Animals, nature,,animals")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Seeded())
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.WordsPaths)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.False(t, cfg.AutoDifficulty)
	assert.Equal(t, []string{"animals", "nature"}, cfg.PreferredCategories())
}

func TestLoad_InvalidDifficulty(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCRAMBLE_DIFFICULTY", "insane")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTick(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCRAMBLE_TICK", "0s")

	_, err := Load()
	assert.Error(t, err)
}
