// Package bot implements Truco bots as ordered guard chains over the
// evaluator primitives, and a registry to construct them by name.
package bot

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/trucoforbots/internal/game"
)

// ErrUnknownBot is returned when a bot name is not registered
var ErrUnknownBot = errors.New("unknown bot")

const (
	CasinhaName  = "casinha"
	ZecaTatuName = "zecatatu"
	TimaoName    = "timao"
)

type registration struct {
	description string
	build       func(logger *log.Logger, o *options) game.Policy
}

var registry = map[string]registration{
	CasinhaName: {
		description: "Casinha de Caboclo: average-value thresholds, bluffs against raise-happy opponents",
		build: func(logger *log.Logger, o *options) game.Policy {
			return NewCasinha(logger, o.tuning)
		},
	},
	ZecaTatuName: {
		description: "Zeca Tatu: hand-value bands per trick, discards face down when beaten",
		build: func(logger *log.Logger, _ *options) game.Policy {
			return NewZecaTatu(logger)
		},
	},
	TimaoName: {
		description: "Timao: manilha-driven, settles for a draw unless behind on score",
		build: func(logger *log.Logger, _ *options) game.Policy {
			return NewTimao(logger)
		},
	},
}

// Option configures a bot created through New
type Option func(*options)

type options struct {
	tuning Tuning
}

// WithTuning overrides the thresholds of bots that read them
func WithTuning(t Tuning) Option {
	return func(o *options) {
		o.tuning = t
	}
}

// New creates a fresh bot instance by name
func New(name string, logger *log.Logger, opts ...Option) (game.Policy, error) {
	reg, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBot, name, Names())
	}
	o := &options{tuning: DefaultTuning()}
	for _, opt := range opts {
		opt(o)
	}
	return reg.build(logger, o), nil
}

// Names returns the registered bot names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the one-line description of a registered bot
func Describe(name string) (string, error) {
	reg, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBot, name)
	}
	return reg.description, nil
}

// Tuning holds the thresholds of the casinha bot
type Tuning struct {
	HighCardValue     float64
	ModerateCardValue float64
	LowCardValue      float64
	// StrongCardValue is exclusive: a card is strong when its value is above it.
	StrongCardValue  int
	AggressiveRaises int
	BluffScoreCap    int
}

// DefaultTuning returns the stock casinha thresholds
func DefaultTuning() Tuning {
	return Tuning{
		HighCardValue:     8,
		ModerateCardValue: 6.5,
		LowCardValue:      3.3,
		StrongCardValue:   8,
		AggressiveRaises:  3,
		BluffScoreCap:     8,
	}
}

// Validate checks that the thresholds are ordered and in range
func (t Tuning) Validate() error {
	if t.LowCardValue <= 0 {
		return fmt.Errorf("low card value must be positive, got %v", t.LowCardValue)
	}
	if t.LowCardValue > t.ModerateCardValue || t.ModerateCardValue > t.HighCardValue {
		return fmt.Errorf("card values must satisfy low <= moderate <= high, got %v/%v/%v",
			t.LowCardValue, t.ModerateCardValue, t.HighCardValue)
	}
	if t.StrongCardValue < 1 || t.StrongCardValue >= 13 {
		return fmt.Errorf("strong card value must be in [1,13), got %d", t.StrongCardValue)
	}
	if t.AggressiveRaises < 0 {
		return fmt.Errorf("aggressive raises must not be negative, got %d", t.AggressiveRaises)
	}
	if t.BluffScoreCap < 0 || t.BluffScoreCap > 11 {
		return fmt.Errorf("bluff score cap must be in [0,11], got %d", t.BluffScoreCap)
	}
	return nil
}

func mustHaveCards(name string, intel game.Intel) {
	if len(intel.Hand) == 0 {
		panic(fmt.Sprintf("%s: ChooseCard called with an empty hand", name))
	}
}
