package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/evaluator"
	"github.com/lox/trucoforbots/internal/game"
)

// Casinha plays off the average value of its hand. It counts the opponent's
// raise requests and bluffs on weak hands once the opponent looks aggressive.
type Casinha struct {
	tuning         Tuning
	logger         *log.Logger
	opponentRaises int
}

// NewCasinha creates a new Casinha instance
func NewCasinha(logger *log.Logger, tuning Tuning) *Casinha {
	return &Casinha{tuning: tuning, logger: logger.WithPrefix(CasinhaName)}
}

func (c *Casinha) Name() string { return CasinhaName }

// OpponentRaises returns how many raise requests this bot has answered
func (c *Casinha) OpponentRaises() int { return c.opponentRaises }

func (c *Casinha) AcceptElevenHand(intel game.Intel) bool {
	avg := evaluator.AverageValue(intel.Hand, intel.Vira)
	if intel.OpponentScore >= 9 && intel.OpponentScore < 11 {
		accept := avg >= c.tuning.ModerateCardValue
		c.logger.Debug("eleven hand with opponent close", "average", avg, "accept", accept)
		return accept
	}
	c.logger.Debug("eleven hand accepted", "average", avg)
	return true
}

func (c *Casinha) ShouldRaise(intel game.Intel) bool {
	strong := c.strongCards(intel.Hand, intel.Vira)

	if first, ok := intel.FirstRound(); ok && intel.Trick() == 1 && first == game.Won && strong > 0 {
		return c.raise(true, "won first trick holding a strong card")
	}
	if strong >= 1 {
		return c.raise(true, "strong card in hand")
	}
	if intel.OpponentScore == 10 {
		return c.raise(true, "opponent one point from eleven")
	}
	if intel.Score >= 10 && intel.Score >= intel.OpponentScore {
		return c.raise(false, "protecting the lead")
	}
	if c.bluffing(intel) {
		return c.raise(true, "bluffing an aggressive opponent")
	}
	return c.raise(false, "nothing to raise on")
}

func (c *Casinha) ChooseCard(intel game.Intel) game.CardToPlay {
	mustHaveCards(CasinhaName, intel)
	sorted := evaluator.SortDescending(intel.Hand, intel.Vira)

	switch intel.Trick() {
	case 0:
		return c.firstTrick(intel, sorted)
	case 1:
		if first, _ := intel.FirstRound(); first == game.Won {
			return c.minToWin(intel, sorted, "first trick won, spend as little as possible")
		}
		if intel.Leading() {
			return c.play(sorted[0], "leading after losing the first trick")
		}
		return c.minToWin(intel, sorted, "responding in second trick")
	default:
		return c.play(sorted[0], "last trick")
	}
}

func (c *Casinha) RaiseResponse(intel game.Intel) game.RaiseResponse {
	c.opponentRaises++
	avg := evaluator.AverageValue(intel.Hand, intel.Vira)
	manilhas := evaluator.CountManilhas(intel.Hand, intel.Vira)

	var resp game.RaiseResponse
	switch {
	case avg >= c.tuning.HighCardValue || manilhas > 0:
		resp = game.ReRaise
	case avg >= c.tuning.ModerateCardValue:
		resp = game.Accept
	default:
		resp = game.Decline
	}
	c.logger.Debug("raise response", "average", avg, "manilhas", manilhas,
		"opponentRaises", c.opponentRaises, "response", resp)
	return resp
}

func (c *Casinha) firstTrick(intel game.Intel, sorted []deck.Card) game.CardToPlay {
	manilhas := evaluator.CountManilhas(sorted, intel.Vira)
	strong := c.strongCards(sorted, intel.Vira)
	weakest := sorted[len(sorted)-1]
	second := sorted[min(1, len(sorted)-1)]

	switch {
	case manilhas > 1:
		return c.play(weakest, "two manilhas, hold them back")
	case manilhas == 1 && strong > 1:
		return c.play(weakest, "manilha plus another strong card")
	case manilhas == 1 && strong < 1:
		return c.play(second, "lone manilha kept in reserve")
	case intel.Leading():
		return c.play(second, "leading first trick")
	}
	return c.minToWin(intel, sorted, "responding in first trick")
}

// minToWin prefers the cheapest card that wins, then the cheapest that draws.
// With nothing to answer, the weakest card is played.
func (c *Casinha) minToWin(intel game.Intel, sorted []deck.Card, reason string) game.CardToPlay {
	weakest := sorted[len(sorted)-1]
	opponent, ok := intel.Opponent()
	if !ok {
		return c.play(weakest, reason)
	}
	if card, ok := evaluator.MinBeating(sorted, opponent, intel.Vira); ok {
		return c.play(card, reason+": beat")
	}
	if card, ok := evaluator.MinDrawing(sorted, opponent, intel.Vira); ok {
		return c.play(card, reason+": draw")
	}
	return c.play(weakest, reason+": cannot answer")
}

func (c *Casinha) strongCards(hand []deck.Card, vira deck.Card) int {
	return evaluator.CountAbove(hand, vira, c.tuning.StrongCardValue)
}

func (c *Casinha) opponentIsAggressive() bool {
	return c.opponentRaises > c.tuning.AggressiveRaises
}

func (c *Casinha) bluffing(intel game.Intel) bool {
	return c.opponentIsAggressive() &&
		intel.Score <= c.tuning.BluffScoreCap &&
		evaluator.AverageValue(intel.Hand, intel.Vira) < c.tuning.LowCardValue
}

func (c *Casinha) raise(raise bool, reason string) bool {
	c.logger.Debug("raise decision", "raise", raise, "reason", reason)
	return raise
}

func (c *Casinha) play(card deck.Card, reason string) game.CardToPlay {
	c.logger.Debug("card chosen", "card", card, "reason", reason)
	return game.Play(card)
}
