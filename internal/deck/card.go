package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The declaration order is the suit strength
// used to rank manilhas against each other.
type Suit int

const (
	Diamonds Suit = iota
	Spades
	Hearts
	Clubs
)

// Suits lists every suit from weakest to strongest
var Suits = []Suit{Diamonds, Spades, Hearts, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Clubs
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents one of the ten ranks of the Truco deck, in base order.
type Rank int

const (
	Four Rank = iota + 1
	Five
	Six
	Seven
	Queen
	Jack
	King
	Ace
	Two
	Three
)

// Ranks lists every rank from weakest to strongest base order
var Ranks = []Rank{Four, Five, Six, Seven, Queen, Jack, King, Ace, Two, Three}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case King:
		return "K"
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the ten playable ranks
func (r Rank) Valid() bool {
	return r >= Four && r <= Three
}

// Value returns the base strength of the rank (Four=1 ... Three=10)
func (r Rank) Value() int {
	return int(r)
}

// Next returns the rank that follows r, wrapping Three back to Four.
// Given the vira's rank it yields the manilha rank.
func (r Rank) Next() Rank {
	if !r.Valid() {
		panic(fmt.Sprintf("deck: rank %d out of range", int(r)))
	}
	if r == Three {
		return Four
	}
	return r + 1
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "6♣")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Notation returns the two-character ASCII form accepted by ParseCard (e.g., "6c")
func (c Card) Notation() string {
	return c.Rank.String() + string(suitChars[c.Suit])
}

// Valid reports whether both rank and suit are in the deck's domain
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

var suitChars = map[Suit]byte{Diamonds: 'd', Spades: 's', Hearts: 'h', Clubs: 'c'}

// ParseCard parses a string like "6c" into a Card.
// Ranks: 4, 5, 6, 7, Q, J, K, A, 2, 3
// Suits: d (diamonds), s (spades), h (hearts), c (clubs)
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a string of card notation into a slice of cards.
// Format: "6c2d3s" where each card is [Rank][Suit]; spaces and commas are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCard parses a single card and panics on error (for tests)
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return card
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'd', 'D':
		return Diamonds, nil
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
