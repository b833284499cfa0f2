package game

import (
	"slices"

	"github.com/lox/trucoforbots/internal/deck"
)

// RoundResult is the outcome of a completed trick from the bot's point of view
type RoundResult int

const (
	Won RoundResult = iota
	Lost
	Drew
)

// String returns the string representation of a round result
func (r RoundResult) String() string {
	switch r {
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	case Drew:
		return "DREW"
	default:
		return "UNKNOWN"
	}
}

// Flip returns the same result from the other player's point of view
func (r RoundResult) Flip() RoundResult {
	switch r {
	case Won:
		return Lost
	case Lost:
		return Won
	default:
		return r
	}
}

// Intel is an immutable snapshot of one decision point in a hand
type Intel struct {
	Hand          []deck.Card
	Vira          deck.Card
	OpponentCard  *deck.Card
	RoundResults  []RoundResult
	Score         int
	OpponentScore int
	// OpenCards are the cards shown so far this hand, vira included.
	OpenCards  []deck.Card
	HandPoints int
}

// Opponent returns the card the opponent has played this trick, if any
func (i Intel) Opponent() (deck.Card, bool) {
	if i.OpponentCard == nil {
		return deck.Card{}, false
	}
	return *i.OpponentCard, true
}

// Leading reports whether the bot plays first in the current trick
func (i Intel) Leading() bool {
	return i.OpponentCard == nil
}

// Trick returns the zero-based index of the current trick
func (i Intel) Trick() int {
	return len(i.RoundResults)
}

// FirstRound returns the outcome of the first trick once it has been played
func (i Intel) FirstRound() (RoundResult, bool) {
	if len(i.RoundResults) == 0 {
		return 0, false
	}
	return i.RoundResults[0], true
}

// CardsInHand returns how many cards the bot still holds
func (i Intel) CardsInHand() int {
	return len(i.Hand)
}

// IntelBuilder assembles an Intel snapshot
type IntelBuilder struct {
	intel Intel
}

// NewIntel starts a snapshot for a hand turned with the given vira
func NewIntel(vira deck.Card) *IntelBuilder {
	return &IntelBuilder{intel: Intel{Vira: vira, HandPoints: 1}}
}

// WithHand sets the cards the bot still holds
func (b *IntelBuilder) WithHand(hand []deck.Card) *IntelBuilder {
	b.intel.Hand = hand
	return b
}

// WithOpponentCard records the card the opponent led this trick
func (b *IntelBuilder) WithOpponentCard(card deck.Card) *IntelBuilder {
	b.intel.OpponentCard = &card
	return b
}

// WithRoundResults sets the outcomes of the completed tricks
func (b *IntelBuilder) WithRoundResults(results ...RoundResult) *IntelBuilder {
	b.intel.RoundResults = results
	return b
}

// WithScores sets the match scores of the bot and its opponent
func (b *IntelBuilder) WithScores(score, opponentScore int) *IntelBuilder {
	b.intel.Score = score
	b.intel.OpponentScore = opponentScore
	return b
}

// WithOpenCards sets the cards already shown this hand
func (b *IntelBuilder) WithOpenCards(cards []deck.Card) *IntelBuilder {
	b.intel.OpenCards = cards
	return b
}

// WithHandPoints sets the current stake of the hand
func (b *IntelBuilder) WithHandPoints(points int) *IntelBuilder {
	b.intel.HandPoints = points
	return b
}

// Build returns the snapshot. Slices are copied so later changes to the
// builder inputs do not leak into it.
func (b *IntelBuilder) Build() Intel {
	intel := b.intel
	intel.Hand = slices.Clone(b.intel.Hand)
	intel.RoundResults = slices.Clone(b.intel.RoundResults)
	intel.OpenCards = slices.Clone(b.intel.OpenCards)
	if b.intel.OpponentCard != nil {
		card := *b.intel.OpponentCard
		intel.OpponentCard = &card
	}
	if len(intel.OpenCards) == 0 {
		intel.OpenCards = []deck.Card{intel.Vira}
		if intel.OpponentCard != nil {
			intel.OpenCards = append(intel.OpenCards, *intel.OpponentCard)
		}
	}
	return intel
}
