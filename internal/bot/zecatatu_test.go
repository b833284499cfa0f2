package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/trucoforbots/internal/game"
)

func TestZecaTatuAcceptElevenHand(t *testing.T) {
	tests := []struct {
		name          string
		hand          string
		opponentScore int
		want          bool
	}{
		{"strong hand early", "3s2dAc", 0, true},
		{"weak hand mid game", "4d5c7s", 5, false},
		{"strong hand against nine", "3s2dAc", 9, false},
		{"two manilhas against ten", "6c6h4d", 10, true},
		{"opponent also at eleven", "6c6h6s", 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intel := snapshot("5h", tt.hand).WithScores(11, tt.opponentScore).Build()
			assert.Equal(t, tt.want, NewZecaTatu(quietLogger()).AcceptElevenHand(intel))
		})
	}
}

func TestZecaTatuHandValue(t *testing.T) {
	// vira 7♠ turns queens into manilhas: 3♥ + Q♣ + 4♦ = 9 + 13 + 1
	intel := snapshot("7s", "3hQc4d").WithScores(11, 2).Build()
	assert.True(t, NewZecaTatu(quietLogger()).AcceptElevenHand(intel))
}

func TestZecaTatuShouldRaise(t *testing.T) {
	tests := []struct {
		name  string
		intel game.Intel
		want  bool
	}{
		{"bluffs garbage opening", snapshot("5h", "4d5c7s").Build(), true},
		{"quiet with a good opening", snapshot("5h", "3s2dAc").Build(), false},
		{"first trick drawn", snapshot("5h", "4d5c").WithRoundResults(game.Drew).Build(), true},
		{"lost first with two manilhas", snapshot("5h", "6c6h").WithRoundResults(game.Lost).Build(), true},
		{"won first with strong pair", snapshot("5h", "3s2d").WithRoundResults(game.Won).Build(), true},
		{"won first with weak pair", snapshot("5h", "4d5c").WithRoundResults(game.Won).Build(), false},
		{"last card manilha", snapshot("5h", "6d").WithRoundResults(game.Won, game.Lost).Build(), true},
		{"last card plain", snapshot("5h", "3s").WithRoundResults(game.Won, game.Lost).Build(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewZecaTatu(quietLogger()).ShouldRaise(tt.intel))
		})
	}
}

func TestZecaTatuChooseCard(t *testing.T) {
	tests := []struct {
		name  string
		intel game.Intel
		want  game.CardToPlay
	}{
		{"zap and copas hides them", snapshot("5h", "6c6h4d").Build(), game.Play(card("4d"))},
		{"cheapest winner", snapshot("5h", "4dAc3s").WithOpponentCard(card("Kc")).Build(), game.Play(card("Ac"))},
		{"win over draw", snapshot("5h", "2c3s6s").WithOpponentCard(card("3d")).Build(), game.Play(card("6s"))},
		{
			name: "draw again after a drawn first trick",
			intel: snapshot("5h", "6c3sKd").WithRoundResults(game.Drew).
				WithOpponentCard(card("3d")).Build(),
			want: game.Play(card("3s")),
		},
		{"cannot beat", snapshot("5h", "4dAc3s").WithOpponentCard(card("6c")).Build(), game.Play(card("4d"))},
		{"manilha and top card leads middle", snapshot("5h", "6d3s4d").Build(), game.Play(card("3s"))},
		{"plain opening leads first card", snapshot("5h", "4dAcKd").Build(), game.Play(card("4d"))},
		{
			name:  "pair responding only the best wins",
			intel: snapshot("5h", "3s4d").WithRoundResults(game.Lost).WithOpponentCard(card("Kc")).Build(),
			want:  game.Play(card("3s")),
		},
		{
			name:  "pair responding weakest wins",
			intel: snapshot("5h", "Ac2d").WithRoundResults(game.Lost).WithOpponentCard(card("Kc")).Build(),
			want:  game.Play(card("Ac")),
		},
		{
			name:  "pair beaten discards face down",
			intel: snapshot("5h", "4d5c").WithRoundResults(game.Lost).WithOpponentCard(card("Kc")).Build(),
			want:  game.Discard(card("4d")),
		},
		{
			name:  "pair leading with manilha",
			intel: snapshot("5h", "4d6s").WithRoundResults(game.Won).Build(),
			want:  game.Play(card("6s")),
		},
		{
			name:  "pair leading without manilha",
			intel: snapshot("5h", "Ac4d").WithRoundResults(game.Won).Build(),
			want:  game.Play(card("4d")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewZecaTatu(quietLogger()).ChooseCard(tt.intel))
		})
	}
}

func TestZecaTatuRaiseResponse(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want game.RaiseResponse
	}{
		{"three cards two manilhas", "6c6h4d", game.ReRaise},
		{"three cards manilha and value", "6d3s2d", game.Accept},
		{"three cards manilha but weak", "6d4d5c", game.Decline},
		{"three cards no manilha", "3s2dAc", game.Decline},
		{"two cards two manilhas", "6c6h", game.ReRaise},
		{"two cards one manilha", "6d4d", game.Accept},
		{"two cards high value", "3s2d", game.Accept},
		{"two cards weak", "AcKd", game.Decline},
		{"last card copas", "6h", game.ReRaise},
		{"last card espadilha", "6s", game.Accept},
		{"last card top plain", "3s", game.Accept},
		{"last card weak", "Ac", game.Decline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewZecaTatu(quietLogger()).RaiseResponse(snapshot("5h", tt.hand).Build()))
		})
	}
}
