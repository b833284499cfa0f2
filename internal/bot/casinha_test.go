package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/trucoforbots/internal/game"
)

func newCasinha() *Casinha {
	return NewCasinha(quietLogger(), DefaultTuning())
}

func TestCasinhaAcceptElevenHand(t *testing.T) {
	tests := []struct {
		name          string
		hand          string
		opponentScore int
		want          bool
	}{
		{"weak hand against nine", "4d5c7s", 9, false},
		{"moderate hand against ten", "3s2dAc", 10, true},
		{"weak hand against five", "4d5c7s", 5, true},
		{"weak hand when both at eleven", "4d5c7s", 11, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intel := snapshot("5h", tt.hand).WithScores(11, tt.opponentScore).Build()
			assert.Equal(t, tt.want, newCasinha().AcceptElevenHand(intel))
		})
	}
}

func TestCasinhaShouldRaise(t *testing.T) {
	tests := []struct {
		name  string
		intel game.Intel
		want  bool
	}{
		{"strong card", snapshot("5h", "3s4d5c").Build(), true},
		{"won first with strong card", snapshot("5h", "3s4d").WithRoundResults(game.Won).Build(), true},
		{"opponent at ten", snapshot("5h", "4d5c7s").WithScores(2, 10).Build(), true},
		{"ahead near the end", snapshot("5h", "4d5c7s").WithScores(10, 5).Build(), false},
		{"weak hand, calm opponent", snapshot("5h", "4d5c7s").Build(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newCasinha().ShouldRaise(tt.intel))
		})
	}
}

func TestCasinhaBluffsAggressiveOpponent(t *testing.T) {
	c := newCasinha()
	weak := snapshot("5h", "4d5c7s").WithScores(3, 4).Build()

	for range 3 {
		assert.Equal(t, game.Decline, c.RaiseResponse(weak))
	}
	assert.False(t, c.ShouldRaise(weak), "three raises are not yet aggressive")

	c.RaiseResponse(weak)
	assert.Equal(t, 4, c.OpponentRaises())
	assert.True(t, c.ShouldRaise(weak))

	overCap := snapshot("5h", "4d5c7s").WithScores(9, 4).Build()
	assert.False(t, c.ShouldRaise(overCap))
}

func TestCasinhaChooseCard(t *testing.T) {
	tests := []struct {
		name  string
		intel game.Intel
		want  string
	}{
		{
			name:  "manilha and strong card leading reserves both",
			intel: snapshot("5h", "6c2d3s").Build(),
			want:  "2d",
		},
		{
			name:  "two manilhas plays the weakest",
			intel: snapshot("5h", "6c6h4d").Build(),
			want:  "4d",
		},
		{
			name:  "lone strong manilha leading plays second best",
			intel: snapshot("5h", "4d6dAc").Build(),
			want:  "Ac",
		},
		{
			name:  "responding first trick beats cheaply",
			intel: snapshot("5h", "4dAc3s").WithOpponentCard(card("Kc")).Build(),
			want:  "Ac",
		},
		{
			name:  "manilha guard fires before responding",
			intel: snapshot("5h", "2c3s6s").WithOpponentCard(card("3d")).Build(),
			want:  "2c",
		},
		{
			name:  "responding without an answer plays weakest",
			intel: snapshot("5h", "4dAcKs").WithOpponentCard(card("3d")).Build(),
			want:  "4d",
		},
		{
			name:  "won first and leading plays weakest",
			intel: snapshot("5h", "3s4d").WithRoundResults(game.Won).Build(),
			want:  "4d",
		},
		{
			name:  "lost first and leading plays strongest",
			intel: snapshot("5h", "4d3s").WithRoundResults(game.Lost).Build(),
			want:  "3s",
		},
		{
			name: "second trick prefers winning to drawing",
			intel: snapshot("5h", "3s6s").WithRoundResults(game.Lost).
				WithOpponentCard(card("3d")).Build(),
			want: "6s",
		},
		{
			name: "second trick draws when it cannot win",
			intel: snapshot("5h", "3s4d").WithRoundResults(game.Won).
				WithOpponentCard(card("3d")).Build(),
			want: "3s",
		},
		{
			name:  "last trick",
			intel: snapshot("5h", "Qd").WithRoundResults(game.Won, game.Lost).Build(),
			want:  "Qd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, game.Play(card(tt.want)), newCasinha().ChooseCard(tt.intel))
		})
	}
}

func TestCasinhaRaiseResponse(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want game.RaiseResponse
	}{
		{"any manilha", "6d4d5c", game.ReRaise},
		{"high average", "3s2dAc", game.ReRaise},
		{"moderate average", "3sKdAc", game.Accept},
		{"weak", "4d5c7s", game.Decline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newCasinha().RaiseResponse(snapshot("5h", tt.hand).Build()))
		})
	}
}

func TestCasinhaWithTuning(t *testing.T) {
	tuning := DefaultTuning()
	tuning.ModerateCardValue = 7.5

	b, err := New(CasinhaName, quietLogger(), WithTuning(tuning))
	assert.NoError(t, err)
	assert.Equal(t, game.Decline, b.RaiseResponse(snapshot("5h", "3sKdAc").Build()))
}
