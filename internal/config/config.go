// Package config loads duel settings and bot tuning from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/trucoforbots/internal/bot"
)

// Config represents a complete duel configuration
type Config struct {
	Duel *DuelSettings `hcl:"duel,block"`
	Bots []BotConfig   `hcl:"bot,block"`
}

// DuelSettings controls how a duel is run
type DuelSettings struct {
	Hands        int     `hcl:"hands,optional"`
	Seed         int64   `hcl:"seed,optional"`
	Workers      int     `hcl:"workers,optional"`
	Timeout      string  `hcl:"timeout,optional"`
	ElevenChance float64 `hcl:"eleven_chance,optional"`
}

// BotConfig overrides the thresholds of a named bot. Unset attributes keep
// their defaults.
type BotConfig struct {
	Name              string   `hcl:"name,label"`
	HighCardValue     *float64 `hcl:"high_card_value,optional"`
	ModerateCardValue *float64 `hcl:"moderate_card_value,optional"`
	LowCardValue      *float64 `hcl:"low_card_value,optional"`
	StrongCardValue   *int     `hcl:"strong_card_value,optional"`
	AggressiveRaises  *int     `hcl:"aggressive_raises,optional"`
	BluffScoreCap     *int     `hcl:"bluff_score_cap,optional"`
}

const (
	defaultHands   = 1000
	defaultTimeout = "5s"
)

// DefaultConfig returns default duel configuration
func DefaultConfig() *Config {
	return &Config{
		Duel: &DuelSettings{
			Hands:        defaultHands,
			Workers:      4,
			Timeout:      defaultTimeout,
			ElevenChance: 0.1,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig().Duel
	if config.Duel == nil {
		config.Duel = defaults
	}
	if config.Duel.Hands == 0 {
		config.Duel.Hands = defaults.Hands
	}
	if config.Duel.Workers == 0 {
		config.Duel.Workers = defaults.Workers
	}
	if config.Duel.Timeout == "" {
		config.Duel.Timeout = defaults.Timeout
	}

	return &config, nil
}

// Validate validates the duel configuration
func (c *Config) Validate() error {
	if c.Duel == nil {
		return fmt.Errorf("duel settings are missing")
	}
	if c.Duel.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Duel.Hands)
	}
	if c.Duel.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Duel.Workers)
	}
	timeout, err := time.ParseDuration(c.Duel.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Duel.Timeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", timeout)
	}
	if c.Duel.ElevenChance < 0 || c.Duel.ElevenChance > 1 {
		return fmt.Errorf("eleven_chance must be between 0 and 1, got %v", c.Duel.ElevenChance)
	}

	seen := make(map[string]bool)
	for _, b := range c.Bots {
		if !slices.Contains(bot.Names(), b.Name) {
			return fmt.Errorf("bot %s: %w", b.Name, bot.ErrUnknownBot)
		}
		if seen[b.Name] {
			return fmt.Errorf("bot %s: configured more than once", b.Name)
		}
		seen[b.Name] = true
		if err := b.Tuning().Validate(); err != nil {
			return fmt.Errorf("bot %s: %w", b.Name, err)
		}
	}
	return nil
}

// TimeoutDuration returns the per-hand timeout; call Validate first
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Duel.Timeout)
	return d
}

// Tuning returns the default thresholds with this block's overrides applied
func (b BotConfig) Tuning() bot.Tuning {
	t := bot.DefaultTuning()
	if b.HighCardValue != nil {
		t.HighCardValue = *b.HighCardValue
	}
	if b.ModerateCardValue != nil {
		t.ModerateCardValue = *b.ModerateCardValue
	}
	if b.LowCardValue != nil {
		t.LowCardValue = *b.LowCardValue
	}
	if b.StrongCardValue != nil {
		t.StrongCardValue = *b.StrongCardValue
	}
	if b.AggressiveRaises != nil {
		t.AggressiveRaises = *b.AggressiveRaises
	}
	if b.BluffScoreCap != nil {
		t.BluffScoreCap = *b.BluffScoreCap
	}
	return t
}

// BotOptions returns the construction options for every configured bot
func (c *Config) BotOptions() map[string][]bot.Option {
	options := make(map[string][]bot.Option, len(c.Bots))
	for _, b := range c.Bots {
		options[b.Name] = append(options[b.Name], bot.WithTuning(b.Tuning()))
	}
	return options
}
