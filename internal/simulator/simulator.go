// Package simulator plays independent Truco hands between two bots to compare
// their policies. Every deal is played twice with the hands swapped so card
// luck cancels out.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/trucoforbots/internal/bot"
	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/game"
	"github.com/lox/trucoforbots/internal/randutil"
	"github.com/lox/trucoforbots/internal/statistics"
)

var (
	// ErrIllegalCard is returned when a bot plays a card it does not hold,
	// or discards where that is not allowed
	ErrIllegalCard = errors.New("illegal card")
	// ErrHandTimeout is returned when a hand does not finish in time
	ErrHandTimeout = errors.New("hand timed out")
)

// PolicyFactory builds a fresh bot instance by name
type PolicyFactory func(name string, logger *log.Logger) (game.Policy, error)

// Config holds configuration for running a duel
type Config struct {
	BotA         string
	BotB         string
	Hands        int
	Seed         int64
	Workers      int
	Timeout      time.Duration
	ElevenChance float64 // Probability that a deal is a mão de onze
	BotOptions   map[string][]bot.Option
	Logger       *log.Logger
	Clock        quartz.Clock
	Factory      PolicyFactory
}

// Result is the outcome of a duel run
type Result struct {
	RunID string
	BotA  string
	BotB  string
	Seed  int64
	Stats *statistics.Statistics
}

// Simulator runs duels between two bots
type Simulator struct {
	config Config
}

// New creates a new simulator, filling unset fields with defaults
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Factory == nil {
		options := config.BotOptions
		config.Factory = func(name string, logger *log.Logger) (game.Policy, error) {
			return bot.New(name, logger, options[name]...)
		}
	}
	config.Seed = randutil.Seed(config.Seed)
	return &Simulator{config: config}
}

// Run plays every deal and returns the aggregated statistics
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", s.config.Hands)
	}

	runID := uuid.NewString()
	logger := s.config.Logger.WithPrefix("duel").With("run", runID)
	logger.Info("Starting duel", "a", s.config.BotA, "b", s.config.BotB,
		"hands", s.config.Hands, "seed", s.config.Seed, "workers", s.config.Workers)

	results := make([][2]statistics.HandResult, s.config.Hands)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			deal := NewDeal(randutil.Derive(s.config.Seed, i), s.config.ElevenChance)
			for j, mao := range []Seat{SeatA, SeatB} {
				result, err := s.playWithTimeout(ctx, deal, mao, logger)
				if err != nil {
					return fmt.Errorf("hand %d (seed %d, mão %s): %w", i+1, deal.Seed, mao, err)
				}
				results[i][j] = result
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, pair := range results {
		stats.Add(pair[0])
		stats.Add(pair[1])
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Duel complete", "hands", stats.Hands, "mean", stats.Mean(), "winsA", stats.WinsA, "winsB", stats.WinsB)
	return &Result{
		RunID: runID,
		BotA:  s.config.BotA,
		BotB:  s.config.BotB,
		Seed:  s.config.Seed,
		Stats: stats,
	}, nil
}

// NewDeal shuffles a deck from seed and deals the vira and both hands. With
// probability elevenChance one of the hand holders sits at eleven points.
func NewDeal(seed int64, elevenChance float64) Deal {
	rng := randutil.New(seed)
	d := deck.NewDeck(rng)
	d.Shuffle()

	vira, _ := d.Deal()
	deal := Deal{
		Vira:   vira,
		Hands:  [2][]deck.Card{d.DealN(3), d.DealN(3)},
		Scores: [2]int{rng.IntN(11), rng.IntN(11)},
		Eleven: -1,
		Seed:   seed,
	}
	if rng.Float64() < elevenChance {
		deal.Eleven = rng.IntN(2)
		deal.Scores[deal.Eleven] = 11
	}
	return deal
}

// playWithTimeout runs a single hand with timeout protection
func (s *Simulator) playWithTimeout(ctx context.Context, deal Deal, mao Seat, logger *log.Logger) (statistics.HandResult, error) {
	var policies [2]game.Policy
	for seat, name := range []string{s.config.BotA, s.config.BotB} {
		p, err := s.config.Factory(name, s.config.Logger)
		if err != nil {
			return statistics.HandResult{}, fmt.Errorf("creating bot %s: %w", Seat(seat), err)
		}
		policies[seat] = p
	}

	timeoutFired := make(chan struct{})
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timeoutFired)
	})
	defer timer.Stop()

	type outcome struct {
		result statistics.HandResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("bot panicked: %v", r)}
			}
		}()
		result, err := newHand(deal, mao, policies, logger).play()
		done <- outcome{result: result, err: err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-timeoutFired:
		return statistics.HandResult{}, fmt.Errorf("%w after %v", ErrHandTimeout, s.config.Timeout)
	case <-ctx.Done():
		return statistics.HandResult{}, ctx.Err()
	}
}
