package game

import (
	"fmt"

	"github.com/lox/trucoforbots/internal/deck"
)

// CardToPlay is a card chosen from the hand, optionally played face down
type CardToPlay struct {
	Card    deck.Card
	Discard bool
}

// Play plays a card face up
func Play(card deck.Card) CardToPlay {
	return CardToPlay{Card: card}
}

// Discard plays a card face down; it loses to any face-up card
func Discard(card deck.Card) CardToPlay {
	return CardToPlay{Card: card, Discard: true}
}

// String returns the string representation of a card play
func (c CardToPlay) String() string {
	if c.Discard {
		return fmt.Sprintf("%s (face down)", c.Card)
	}
	return c.Card.String()
}

// RaiseResponse is the answer to an opponent's raise request
type RaiseResponse int

const (
	Decline RaiseResponse = -1
	Accept  RaiseResponse = 0
	ReRaise RaiseResponse = 1
)

// String returns the string representation of a raise response
func (r RaiseResponse) String() string {
	switch r {
	case Decline:
		return "DECLINE"
	case Accept:
		return "ACCEPT"
	case ReRaise:
		return "RE_RAISE"
	default:
		return "UNKNOWN"
	}
}

// Stake ladder of a hand: truco, seis, nove, doze.
const (
	BaseStake   = 1
	ElevenStake = 3
	MaxStake    = 12
)

var stakes = []int{BaseStake, 3, 6, 9, MaxStake}

// NextStake returns the stake a raise from current would move the hand to.
// It reports false once the hand is at the maximum stake.
func NextStake(current int) (int, bool) {
	for i, s := range stakes[:len(stakes)-1] {
		if s == current {
			return stakes[i+1], true
		}
	}
	return current, false
}
