package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/trucoforbots/internal/deck"
)

func TestHandValue(t *testing.T) {
	// vira 7♠ makes queens manilhas: 3♥=9, Q♣=13, 4♦=1
	hand := mustCards("3hQc4d")
	vira := mustCard("7s")

	assert.Equal(t, 23, HandValue(hand, vira))
	assert.InDelta(t, 23.0/3.0, AverageValue(hand, vira), 1e-9)
	assert.Equal(t, 1, CountManilhas(hand, vira))
	assert.Equal(t, 2, CountAbove(hand, vira, 8))
	assert.Zero(t, AverageValue(nil, vira))
}

func TestStrongestWeakestMiddle(t *testing.T) {
	vira := mustCard("Jd")

	hand := mustCards("Js2c6s")
	assert.Equal(t, mustCard("2c"), Strongest(hand, vira))
	assert.Equal(t, mustCard("6s"), Weakest(hand, vira))
	mid, ok := Middle(hand, vira)
	assert.True(t, ok)
	assert.Equal(t, mustCard("Js"), mid)

	// Equal strengths resolve to the first in hand order.
	ties := mustCards("2s2c6s")
	assert.Equal(t, mustCard("2s"), Strongest(ties, vira))
	mid, ok = Middle(ties, vira)
	assert.True(t, ok)
	assert.Equal(t, mustCard("2c"), mid)

	_, ok = Middle(mustCards("2s6s"), vira)
	assert.False(t, ok)

	assert.Panics(t, func() { Strongest(nil, vira) })
	assert.Panics(t, func() { Weakest([]deck.Card{}, vira) })
}

func TestSortDescendingIsStable(t *testing.T) {
	vira := mustCard("5h")
	hand := mustCards("2d6c3s2c")

	sorted := SortDescending(hand, vira)

	assert.Equal(t, mustCards("6c3s2d2c"), sorted)
	assert.Equal(t, mustCards("2d6c3s2c"), hand, "input must not be reordered")
}

func TestMinBeatingAndDrawing(t *testing.T) {
	vira := mustCard("5h")
	opponent := mustCard("3d")
	hand := mustCards("2c3s6s")

	beat, ok := MinBeating(hand, opponent, vira)
	assert.True(t, ok)
	assert.Equal(t, mustCard("6s"), beat)

	draw, ok := MinDrawing(hand, opponent, vira)
	assert.True(t, ok)
	assert.Equal(t, mustCard("3s"), draw)

	_, ok = MinBeating(mustCards("4c5d"), opponent, vira)
	assert.False(t, ok)
	_, ok = MinDrawing(mustCards("4c5d"), opponent, vira)
	assert.False(t, ok)
}

func TestHasZapAndCopas(t *testing.T) {
	vira := mustCard("Qs")
	hand := mustCards("4hJc2s")
	assert.True(t, HasZap(hand, vira))
	assert.False(t, HasCopas(hand, vira))
	assert.True(t, HasCopas(mustCards("Jh"), vira))
}
