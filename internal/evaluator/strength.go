// Package evaluator ranks Truco cards relative to the vira.
//
// Off-manilha cards take their base rank order, compressed to 1..9 by
// skipping the manilha rank. The four manilhas sit above every other card
// at 10..13, ordered by suit.
package evaluator

import (
	"fmt"

	"github.com/lox/trucoforbots/internal/deck"
)

const (
	// ManilhaFloor is the relative value of the weakest manilha (diamonds)
	ManilhaFloor = 10
	// MaxValue is the relative value of the zap (manilha of clubs)
	MaxValue = ManilhaFloor + int(deck.Clubs)
)

// Ordering is the result of comparing two cards under a vira
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns the string representation of an ordering
func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	default:
		return "UNKNOWN"
	}
}

func mustBeValid(card deck.Card) {
	if !card.Valid() {
		panic(fmt.Sprintf("evaluator: card out of domain (rank=%d suit=%d)", int(card.Rank), int(card.Suit)))
	}
}

// ManilhaRank returns the trump rank for the given vira
func ManilhaRank(vira deck.Card) deck.Rank {
	mustBeValid(vira)
	return vira.Rank.Next()
}

// IsManilha reports whether card is one of the four trumps set by vira
func IsManilha(card, vira deck.Card) bool {
	mustBeValid(card)
	return card.Rank == ManilhaRank(vira)
}

// IsZap reports whether card is the manilha of clubs, the strongest card
func IsZap(card, vira deck.Card) bool {
	return IsManilha(card, vira) && card.Suit == deck.Clubs
}

// IsCopas reports whether card is the manilha of hearts
func IsCopas(card, vira deck.Card) bool {
	return IsManilha(card, vira) && card.Suit == deck.Hearts
}

// IsEspadilha reports whether card is the manilha of spades
func IsEspadilha(card, vira deck.Card) bool {
	return IsManilha(card, vira) && card.Suit == deck.Spades
}

// IsPicafumo reports whether card is the manilha of diamonds, the weakest trump
func IsPicafumo(card, vira deck.Card) bool {
	return IsManilha(card, vira) && card.Suit == deck.Diamonds
}

// RelativeValue returns the strength of card under vira. Non-manilhas score
// 1..9 by base rank regardless of suit; manilhas score 10..13 by suit.
// Panics if either card is outside the deck's domain.
func RelativeValue(card, vira deck.Card) int {
	mustBeValid(card)
	manilha := ManilhaRank(vira)
	if card.Rank == manilha {
		return ManilhaFloor + int(card.Suit)
	}
	value := card.Rank.Value()
	if value > manilha.Value() {
		value--
	}
	return value
}

// Compare orders a against b under vira
func Compare(a, b, vira deck.Card) Ordering {
	va, vb := RelativeValue(a, vira), RelativeValue(b, vira)
	switch {
	case va < vb:
		return Less
	case va > vb:
		return Greater
	default:
		return Equal
	}
}
