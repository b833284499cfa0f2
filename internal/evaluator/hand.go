package evaluator

import (
	"slices"

	"github.com/lox/trucoforbots/internal/deck"
)

// HandValue sums the relative values of every card in hand
func HandValue(hand []deck.Card, vira deck.Card) int {
	total := 0
	for _, card := range hand {
		total += RelativeValue(card, vira)
	}
	return total
}

// AverageValue returns the mean relative value of hand, or 0 when empty
func AverageValue(hand []deck.Card, vira deck.Card) float64 {
	if len(hand) == 0 {
		return 0
	}
	return float64(HandValue(hand, vira)) / float64(len(hand))
}

// CountManilhas counts the trumps in hand
func CountManilhas(hand []deck.Card, vira deck.Card) int {
	count := 0
	for _, card := range hand {
		if IsManilha(card, vira) {
			count++
		}
	}
	return count
}

// CountAbove counts the cards whose relative value is strictly greater than threshold
func CountAbove(hand []deck.Card, vira deck.Card, threshold int) int {
	count := 0
	for _, card := range hand {
		if RelativeValue(card, vira) > threshold {
			count++
		}
	}
	return count
}

// HasZap reports whether hand holds the manilha of clubs
func HasZap(hand []deck.Card, vira deck.Card) bool {
	return slices.ContainsFunc(hand, func(c deck.Card) bool { return IsZap(c, vira) })
}

// HasCopas reports whether hand holds the manilha of hearts
func HasCopas(hand []deck.Card, vira deck.Card) bool {
	return slices.ContainsFunc(hand, func(c deck.Card) bool { return IsCopas(c, vira) })
}

// SortDescending returns a copy of hand ordered strongest first. Cards of
// equal value keep their hand order.
func SortDescending(hand []deck.Card, vira deck.Card) []deck.Card {
	sorted := slices.Clone(hand)
	slices.SortStableFunc(sorted, func(a, b deck.Card) int {
		return RelativeValue(b, vira) - RelativeValue(a, vira)
	})
	return sorted
}

func mustHaveCards(hand []deck.Card) {
	if len(hand) == 0 {
		panic("evaluator: empty hand")
	}
}

func strongestIndex(hand []deck.Card, vira deck.Card) int {
	best := 0
	for i := 1; i < len(hand); i++ {
		if Compare(hand[i], hand[best], vira) == Greater {
			best = i
		}
	}
	return best
}

func weakestIndex(hand []deck.Card, vira deck.Card) int {
	worst := 0
	for i := 1; i < len(hand); i++ {
		if Compare(hand[i], hand[worst], vira) == Less {
			worst = i
		}
	}
	return worst
}

// Strongest returns the first card of maximal value. Panics on an empty hand.
func Strongest(hand []deck.Card, vira deck.Card) deck.Card {
	mustHaveCards(hand)
	return hand[strongestIndex(hand, vira)]
}

// Weakest returns the first card of minimal value. Panics on an empty hand.
func Weakest(hand []deck.Card, vira deck.Card) deck.Card {
	mustHaveCards(hand)
	return hand[weakestIndex(hand, vira)]
}

// Middle returns the first card that is neither the Strongest nor the
// Weakest pick. A two-card hand of distinct values has no middle.
func Middle(hand []deck.Card, vira deck.Card) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	hi, lo := strongestIndex(hand, vira), weakestIndex(hand, vira)
	for i, card := range hand {
		if i != hi && i != lo {
			return card, true
		}
	}
	return deck.Card{}, false
}

// MinBeating returns the weakest card in hand that strictly beats opponent
func MinBeating(hand []deck.Card, opponent, vira deck.Card) (deck.Card, bool) {
	return minMatching(hand, vira, func(c deck.Card) bool {
		return Compare(c, opponent, vira) == Greater
	})
}

// MinDrawing returns the weakest card in hand that ties opponent
func MinDrawing(hand []deck.Card, opponent, vira deck.Card) (deck.Card, bool) {
	return minMatching(hand, vira, func(c deck.Card) bool {
		return Compare(c, opponent, vira) == Equal
	})
}

func minMatching(hand []deck.Card, vira deck.Card, match func(deck.Card) bool) (deck.Card, bool) {
	var (
		found bool
		best  deck.Card
	)
	for _, card := range hand {
		if !match(card) {
			continue
		}
		if !found || Compare(card, best, vira) == Less {
			best, found = card, true
		}
	}
	return best, found
}
