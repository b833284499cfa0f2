package simulator

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/evaluator"
	"github.com/lox/trucoforbots/internal/game"
	"github.com/lox/trucoforbots/internal/statistics"
)

// Seat identifies one side of a duel
type Seat int

const (
	SeatA Seat = iota
	SeatB
)

func (s Seat) other() Seat { return 1 - s }

// String returns the string representation of a seat
func (s Seat) String() string {
	if s == SeatA {
		return "A"
	}
	return "B"
}

// Deal is the random setup of one hand, independent of who plays it
type Deal struct {
	Vira  deck.Card
	Hands [2][]deck.Card
	// Scores is the match context each hand holder sees.
	Scores [2]int
	// Eleven is the index of the hand holder sitting at eleven, or -1.
	Eleven int
	Seed   int64
}

// hand plays one deal between two policies. Hand index 0 of the deal is the
// mão: it leads the first trick.
type hand struct {
	deal     Deal
	policies [2]game.Policy
	logger   *log.Logger

	mao     Seat
	cards   [2][]deck.Card
	scores  [2]int
	results [2][]game.RoundResult
	open    []deck.Card
	stake   int
	eleven  bool
	// blocked is the seat whose raise was last accepted; it must wait for
	// the other side to raise next.
	blocked Seat
	raises  int
}

func newHand(deal Deal, mao Seat, policies [2]game.Policy, logger *log.Logger) *hand {
	h := &hand{
		deal:     deal,
		policies: policies,
		logger:   logger,
		mao:      mao,
		open:     []deck.Card{deal.Vira},
		stake:    game.BaseStake,
		blocked:  -1,
	}
	for i := range 2 {
		seat := mao
		if i == 1 {
			seat = mao.other()
		}
		h.cards[seat] = slices.Clone(deal.Hands[i])
		h.scores[seat] = deal.Scores[i]
	}
	return h
}

// settled is the end of a hand: the winning seat (or -1) and how it ended.
type settled struct {
	winner  Seat
	points  int
	outcome statistics.Outcome
}

func (h *hand) play() (statistics.HandResult, error) {
	end, tricks, err := h.run()
	if err != nil {
		return statistics.HandResult{}, err
	}

	points := end.points
	if end.winner == SeatB {
		points = -points
	} else if end.winner != SeatA {
		points = 0
	}
	return statistics.HandResult{
		Points:  points,
		Stake:   h.stake,
		Outcome: end.outcome,
		Tricks:  tricks,
		Raises:  h.raises,
		Eleven:  h.eleven,
		Seed:    h.deal.Seed,
		Swapped: h.mao == SeatB,
	}, nil
}

func (h *hand) run() (settled, int, error) {
	if h.deal.Eleven >= 0 {
		seat := h.mao
		if h.deal.Eleven == 1 {
			seat = h.mao.other()
		}
		h.eleven = true
		accept := h.policies[seat].AcceptElevenHand(h.intel(seat, nil))
		h.logger.Debug("mão de onze", "seat", seat, "bot", h.policies[seat].Name(), "accept", accept)
		if !accept {
			return settled{winner: seat.other(), points: 1, outcome: statistics.ElevenDeclined}, 0, nil
		}
		h.stake = game.ElevenStake
	}

	leader := h.mao
	for trick := range 3 {
		responder := leader.other()

		if end, ok := h.offerRaise(leader, nil); ok {
			return end, trick, nil
		}
		lead, err := h.playCard(leader, nil, trick)
		if err != nil {
			return settled{}, trick, err
		}

		if end, ok := h.offerRaise(responder, &lead); ok {
			return end, trick, nil
		}
		reply, err := h.playCard(responder, &lead, trick)
		if err != nil {
			return settled{}, trick, err
		}

		result := resolveTrick(lead, reply, h.deal.Vira)
		h.results[leader] = append(h.results[leader], result)
		h.results[responder] = append(h.results[responder], result.Flip())
		h.logger.Debug("trick", "number", trick, "lead", lead, "reply", reply, "leader", leader, "result", result)

		if winner, done := handWinner(h.results[SeatA]); done {
			if winner == game.Drew {
				return settled{winner: -1, outcome: statistics.AllDrawn}, trick + 1, nil
			}
			seat := SeatA
			if winner == game.Lost {
				seat = SeatB
			}
			return settled{winner: seat, points: h.stake, outcome: statistics.Tricks}, trick + 1, nil
		}

		// a drawn trick is led again by the same seat
		if result == game.Lost {
			leader = responder
		}
	}
	return settled{}, 3, fmt.Errorf("hand unresolved after three tricks: %v", h.results[SeatA])
}

// offerRaise asks seat whether it wants more and settles the exchange,
// re-raises included. seen is the card seat is answering, if any. It reports
// true when the hand ended on a declined raise.
func (h *hand) offerRaise(seat Seat, seen *game.CardToPlay) (settled, bool) {
	if h.eleven || h.blocked == seat || len(h.cards[seat]) == 0 {
		return settled{}, false
	}
	if _, ok := game.NextStake(h.stake); !ok {
		return settled{}, false
	}
	if !h.policies[seat].ShouldRaise(h.intel(seat, seen)) {
		return settled{}, false
	}

	requester := seat
	for {
		next, ok := game.NextStake(h.stake)
		if !ok {
			return settled{}, false
		}
		h.raises++
		responder := requester.other()
		var responderSees *game.CardToPlay
		if responder == seat {
			responderSees = seen
		}
		resp := h.policies[responder].RaiseResponse(h.intel(responder, responderSees))
		h.logger.Debug("raise", "requester", requester, "stake", next, "response", resp)

		switch resp {
		case game.Decline:
			return settled{winner: requester, points: h.stake, outcome: statistics.RaiseDeclined}, true
		case game.ReRaise:
			h.stake = next
			if _, ok := game.NextStake(h.stake); ok {
				requester = responder
				continue
			}
		default:
			h.stake = next
		}
		h.blocked = requester
		return settled{}, false
	}
}

func (h *hand) playCard(seat Seat, opponent *game.CardToPlay, trick int) (game.CardToPlay, error) {
	policy := h.policies[seat]
	play := policy.ChooseCard(h.intel(seat, opponent))

	idx := slices.Index(h.cards[seat], play.Card)
	if idx < 0 {
		return play, fmt.Errorf("%w: %s played %s, not in hand %v", ErrIllegalCard, policy.Name(), play.Card, h.cards[seat])
	}
	if play.Discard && trick == 0 {
		return play, fmt.Errorf("%w: %s discarded in the first trick", ErrIllegalCard, policy.Name())
	}

	h.cards[seat] = slices.Delete(h.cards[seat], idx, idx+1)
	if !play.Discard {
		h.open = append(h.open, play.Card)
	}
	return play, nil
}

func (h *hand) intel(seat Seat, opponent *game.CardToPlay) game.Intel {
	b := game.NewIntel(h.deal.Vira).
		WithHand(h.cards[seat]).
		WithRoundResults(h.results[seat]...).
		WithScores(h.scores[seat], h.scores[seat.other()]).
		WithOpenCards(h.open).
		WithHandPoints(h.stake)
	if opponent != nil && !opponent.Discard {
		b.WithOpponentCard(opponent.Card)
	}
	return b.Build()
}

// resolveTrick scores a trick from the leader's point of view. A face-down
// card loses to any face-up card.
func resolveTrick(lead, reply game.CardToPlay, vira deck.Card) game.RoundResult {
	switch {
	case lead.Discard && reply.Discard:
		return game.Drew
	case lead.Discard:
		return game.Lost
	case reply.Discard:
		return game.Won
	}
	switch evaluator.Compare(lead.Card, reply.Card, vira) {
	case evaluator.Greater:
		return game.Won
	case evaluator.Less:
		return game.Lost
	default:
		return game.Drew
	}
}

// handWinner applies the trick rules to results seen from one seat. It
// returns Drew only when all three tricks were drawn.
//
// Two trick wins take the hand. After a drawn first trick the next decided
// trick takes it; once the first trick is decided, a later draw hands the
// hand to the first trick's winner.
func handWinner(results []game.RoundResult) (game.RoundResult, bool) {
	won := 0
	lost := 0
	for _, r := range results {
		switch r {
		case game.Won:
			won++
		case game.Lost:
			lost++
		}
	}
	if won >= 2 {
		return game.Won, true
	}
	if lost >= 2 {
		return game.Lost, true
	}
	if len(results) < 2 {
		return 0, false
	}

	first := results[0]
	if first == game.Drew {
		for _, r := range results[1:] {
			if r != game.Drew {
				return r, true
			}
		}
		if len(results) == 3 {
			return game.Drew, true
		}
		return 0, false
	}
	if slices.Contains(results[1:], game.Drew) {
		return first, true
	}
	return 0, false
}
