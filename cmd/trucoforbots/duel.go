package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lox/trucoforbots/internal/config"
	"github.com/lox/trucoforbots/internal/display"
	"github.com/lox/trucoforbots/internal/simulator"
)

type DuelCmd struct {
	A       string        `default:"casinha" help:"First bot"`
	B       string        `default:"zecatatu" help:"Second bot"`
	Config  string        `default:"duel.hcl" type:"path" help:"HCL file with duel settings and bot tuning"`
	Hands   int           `help:"Number of deals to play, each twice with hands swapped (overrides config)"`
	Seed    int64         `help:"RNG seed, 0 for random (overrides config)"`
	Workers int           `help:"Parallel workers (overrides config)"`
	Timeout time.Duration `help:"Per-hand timeout (overrides config)"`
}

func (c *DuelCmd) Run(g *Globals) error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := simulator.New(simulator.Config{
		BotA:         c.A,
		BotB:         c.B,
		Hands:        cfg.Duel.Hands,
		Seed:         cfg.Duel.Seed,
		Workers:      cfg.Duel.Workers,
		Timeout:      cfg.TimeoutDuration(),
		ElevenChance: cfg.Duel.ElevenChance,
		BotOptions:   cfg.BotOptions(),
		Logger:       g.Logger(),
	})

	start := time.Now()
	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	display.NewPrinter(os.Stdout, !g.NoColor).DuelSummary(result)
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// apply layers command line flags over the loaded config
func (c *DuelCmd) apply(cfg *config.Config) {
	if c.Hands != 0 {
		cfg.Duel.Hands = c.Hands
	}
	if c.Seed != 0 {
		cfg.Duel.Seed = c.Seed
	}
	if c.Workers != 0 {
		cfg.Duel.Workers = c.Workers
	}
	if c.Timeout != 0 {
		cfg.Duel.Timeout = c.Timeout.String()
	}
}
