package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/trucoforbots/internal/bot"
	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/display"
	"github.com/lox/trucoforbots/internal/game"
)

type DecideCmd struct {
	Bot           string `default:"casinha" help:"Bot to ask"`
	Vira          string `required:"" help:"Vira card, e.g. 5h"`
	Hand          string `required:"" help:"Cards in hand, e.g. 6c2d3s"`
	OpponentCard  string `help:"Card the opponent has already played this trick"`
	Rounds        string `help:"Results of finished tricks, e.g. won,lost"`
	Score         int    `help:"Bot's match score"`
	OpponentScore int    `help:"Opponent's match score"`
	HandPoints    int    `default:"1" help:"Current stake of the hand"`
}

func (c *DecideCmd) Run(g *Globals) error {
	intel, err := c.intel()
	if err != nil {
		return err
	}

	policy, err := bot.New(c.Bot, g.Logger())
	if err != nil {
		return err
	}

	decisions := display.Decisions{
		AcceptEleven: policy.AcceptElevenHand(intel),
		Raise:        policy.ShouldRaise(intel),
		Card:         policy.ChooseCard(intel),
		Response:     policy.RaiseResponse(intel),
	}
	display.NewPrinter(os.Stdout, !g.NoColor).Decisions(policy.Name(), intel, decisions)
	return nil
}

func (c *DecideCmd) intel() (game.Intel, error) {
	vira, err := deck.ParseCard(c.Vira)
	if err != nil {
		return game.Intel{}, fmt.Errorf("invalid vira: %w", err)
	}
	hand, err := deck.ParseCards(c.Hand)
	if err != nil {
		return game.Intel{}, fmt.Errorf("invalid hand: %w", err)
	}
	if len(hand) == 0 || len(hand) > 3 {
		return game.Intel{}, fmt.Errorf("hand must hold 1 to 3 cards, got %d", len(hand))
	}
	rounds, err := parseRounds(c.Rounds)
	if err != nil {
		return game.Intel{}, err
	}
	if len(rounds)+len(hand) != 3 {
		return game.Intel{}, fmt.Errorf("%d cards in hand do not match %d finished tricks", len(hand), len(rounds))
	}

	builder := game.NewIntel(vira).
		WithHand(hand).
		WithRoundResults(rounds...).
		WithScores(c.Score, c.OpponentScore).
		WithHandPoints(c.HandPoints)
	if c.OpponentCard != "" {
		card, err := deck.ParseCard(c.OpponentCard)
		if err != nil {
			return game.Intel{}, fmt.Errorf("invalid opponent card: %w", err)
		}
		builder = builder.WithOpponentCard(card)
	}
	return builder.Build(), nil
}

func parseRounds(s string) ([]game.RoundResult, error) {
	if s == "" {
		return nil, nil
	}
	var rounds []game.RoundResult
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "won", "w":
			rounds = append(rounds, game.Won)
		case "lost", "l":
			rounds = append(rounds, game.Lost)
		case "drew", "d":
			rounds = append(rounds, game.Drew)
		default:
			return nil, fmt.Errorf("invalid trick result %q (want won, lost or drew)", part)
		}
	}
	if len(rounds) > 2 {
		return nil, fmt.Errorf("at most 2 finished tricks, got %d", len(rounds))
	}
	return rounds, nil
}
