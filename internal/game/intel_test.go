package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/trucoforbots/internal/deck"
)

func TestIntelBuilderCopiesInputs(t *testing.T) {
	hand := deck.MustParseCards("6c2d3s")
	results := []RoundResult{Won}

	intel := NewIntel(deck.MustParseCard("5h")).
		WithHand(hand).
		WithRoundResults(results...).
		WithScores(3, 9).
		Build()

	hand[0] = deck.MustParseCard("4d")
	results[0] = Lost

	assert.Equal(t, deck.MustParseCards("6c2d3s"), intel.Hand)
	assert.Equal(t, []RoundResult{Won}, intel.RoundResults)
	assert.Equal(t, 3, intel.Score)
	assert.Equal(t, 9, intel.OpponentScore)
	assert.Equal(t, 1, intel.HandPoints)
}

func TestIntelAccessors(t *testing.T) {
	tests := []struct {
		name     string
		builder  *IntelBuilder
		leading  bool
		trick    int
		first    RoundResult
		hasFirst bool
	}{
		{
			name:    "leading first trick",
			builder: NewIntel(deck.MustParseCard("5h")).WithHand(deck.MustParseCards("6c2d3s")),
			leading: true,
		},
		{
			name: "responding second trick",
			builder: NewIntel(deck.MustParseCard("5h")).
				WithHand(deck.MustParseCards("2d3s")).
				WithOpponentCard(deck.MustParseCard("Kc")).
				WithRoundResults(Drew),
			trick:    1,
			first:    Drew,
			hasFirst: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intel := tt.builder.Build()
			assert.Equal(t, tt.leading, intel.Leading())
			assert.Equal(t, tt.trick, intel.Trick())
			first, ok := intel.FirstRound()
			assert.Equal(t, tt.hasFirst, ok)
			if ok {
				assert.Equal(t, tt.first, first)
			}
			_, hasOpponent := intel.Opponent()
			assert.Equal(t, !tt.leading, hasOpponent)
		})
	}
}

func TestIntelDefaultOpenCards(t *testing.T) {
	vira := deck.MustParseCard("5h")
	opp := deck.MustParseCard("3d")

	intel := NewIntel(vira).WithHand(deck.MustParseCards("2c")).WithOpponentCard(opp).Build()
	assert.Equal(t, []deck.Card{vira, opp}, intel.OpenCards)

	card, ok := intel.Opponent()
	require.True(t, ok)
	assert.Equal(t, opp, card)
}

func TestRoundResultFlip(t *testing.T) {
	assert.Equal(t, Lost, Won.Flip())
	assert.Equal(t, Won, Lost.Flip())
	assert.Equal(t, Drew, Drew.Flip())
}

func TestNextStake(t *testing.T) {
	tests := []struct {
		current int
		next    int
		ok      bool
	}{
		{1, 3, true},
		{3, 6, true},
		{6, 9, true},
		{9, 12, true},
		{12, 12, false},
	}
	for _, tt := range tests {
		next, ok := NextStake(tt.current)
		assert.Equal(t, tt.next, next, "from %d", tt.current)
		assert.Equal(t, tt.ok, ok, "from %d", tt.current)
	}
}

func TestDecisionStrings(t *testing.T) {
	card := deck.MustParseCard("6c")
	assert.Equal(t, "6♣", Play(card).String())
	assert.Equal(t, "6♣ (face down)", Discard(card).String())
	assert.Equal(t, "RE_RAISE", ReRaise.String())
	assert.Equal(t, "DECLINE", Decline.String())
}
