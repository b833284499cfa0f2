package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/evaluator"
	"github.com/lox/trucoforbots/internal/game"
)

// highCardValue is the value from which timao counts a plain card as high
const highCardValue = 8

// Timao bets on manilhas. When answering a card it settles for a draw unless
// it is behind on the match score.
type Timao struct {
	logger *log.Logger
}

// NewTimao creates a new Timao instance
func NewTimao(logger *log.Logger) *Timao {
	return &Timao{logger: logger.WithPrefix(TimaoName)}
}

func (t *Timao) Name() string { return TimaoName }

func (t *Timao) AcceptElevenHand(intel game.Intel) bool {
	if intel.Score == 11 && intel.OpponentScore == 11 {
		return true
	}
	return evaluator.CountManilhas(intel.Hand, intel.Vira) >= 1
}

func (t *Timao) ShouldRaise(intel game.Intel) bool {
	manilhas := evaluator.CountManilhas(intel.Hand, intel.Vira)
	high := evaluator.CountAbove(intel.Hand, intel.Vira, highCardValue-1)

	var raise bool
	switch intel.Trick() {
	case 0:
		raise = manilhas >= 2
	case 1:
		// the manilha itself counts as high, so another high card means two
		raise = manilhas >= 1 && high >= 2
	default:
		raise = high >= 1
	}
	t.logger.Debug("raise decision", "trick", intel.Trick(), "manilhas", manilhas, "high", high, "raise", raise)
	return raise
}

func (t *Timao) ChooseCard(intel game.Intel) game.CardToPlay {
	mustHaveCards(TimaoName, intel)
	vira := intel.Vira
	strongest := evaluator.Strongest(intel.Hand, vira)
	weakest := evaluator.Weakest(intel.Hand, vira)

	if intel.Trick() >= 2 {
		return t.play(strongest, "last trick")
	}
	if opponent, ok := intel.Opponent(); ok {
		return t.play(t.respond(intel, opponent), "responding")
	}
	if intel.Trick() == 0 {
		return t.play(weakest, "leading first trick")
	}
	if first, _ := intel.FirstRound(); first == game.Won && !losing(intel) {
		return t.play(weakest, "first trick won, ahead on score")
	}
	return t.play(strongest, "leading second trick")
}

func (t *Timao) respond(intel game.Intel, opponent deck.Card) deck.Card {
	vira := intel.Vira
	beat, canBeat := evaluator.MinBeating(intel.Hand, opponent, vira)
	draw, canDraw := evaluator.MinDrawing(intel.Hand, opponent, vira)

	if losing(intel) {
		if canBeat {
			return beat
		}
		if canDraw {
			return draw
		}
	} else {
		if canDraw {
			return draw
		}
		if canBeat {
			return beat
		}
	}
	return evaluator.Weakest(intel.Hand, vira)
}

func (t *Timao) RaiseResponse(intel game.Intel) game.RaiseResponse {
	manilhas := evaluator.CountManilhas(intel.Hand, intel.Vira)

	resp := game.Decline
	switch {
	case manilhas >= 2:
		resp = game.ReRaise
	case manilhas >= 1 || evaluator.CountAbove(intel.Hand, intel.Vira, highCardValue-1) >= 1:
		resp = game.Accept
	}
	t.logger.Debug("raise response", "manilhas", manilhas, "response", resp)
	return resp
}

func (t *Timao) play(card deck.Card, reason string) game.CardToPlay {
	t.logger.Debug("card chosen", "card", card, "reason", reason)
	return game.Play(card)
}

func losing(intel game.Intel) bool {
	return intel.Score < intel.OpponentScore
}
