package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"scramble-pro/internal/catalog"
)

type Config struct {
	LogLevel       string        `env:"SCRAMBLE_LOG_LEVEL" envDefault:"info"`
	LogFile        string        `env:"SCRAMBLE_LOG_FILE" envDefault:"scramble.log"`
	Seed           int64         `env:"SCRAMBLE_SEED" envDefault:"0"`
	TickInterval   time.Duration `env:"SCRAMBLE_TICK" envDefault:"2s"`
	WordsPaths     []string      `env:"SCRAMBLE_WORDS" envSeparator:","`
	Difficulty     string        `env:"SCRAMBLE_DIFFICULTY" envDefault:"medium"`
	AutoDifficulty bool          `env:"SCRAMBLE_AUTO_DIFFICULTY" envDefault:"true"`
	Categories     []string      `env:"SCRAMBLE_CATEGORIES" envSeparator:","`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that the environment parser cannot.
func (c *Config) Validate() error {
	if _, err := catalog.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("SCRAMBLE_DIFFICULTY: %w", err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("SCRAMBLE_TICK must be positive, got %s", c.TickInterval)
	}
	return nil
}

// Seeded reports whether a fixed RNG seed was requested.
func (c *Config) Seeded() bool {
	return c.Seed != 0
}

// PreferredCategories returns the configured categories lowercased, without
// blanks or repeats.
func (c *Config) PreferredCategories() []string {
	var out []string
	seen := map[string]bool{}
	for _, name := range c.Categories {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
