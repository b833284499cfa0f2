package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/evaluator"
	"github.com/lox/trucoforbots/internal/game"
)

// ZecaTatu reads the summed value of its hand against bands that depend on
// how many cards are left. It is stateless.
type ZecaTatu struct {
	logger *log.Logger
}

// NewZecaTatu creates a new ZecaTatu instance
func NewZecaTatu(logger *log.Logger) *ZecaTatu {
	return &ZecaTatu{logger: logger.WithPrefix(ZecaTatuName)}
}

func (z *ZecaTatu) Name() string { return ZecaTatuName }

// elevenBands maps the opponent's score to the hand value needed to play a
// mão de onze.
var elevenBands = []struct {
	maxOpponentScore int
	minHandValue     int
}{
	{2, 14},
	{4, 17},
	{6, 20},
	{8, 24},
	{10, 27},
}

func (z *ZecaTatu) AcceptElevenHand(intel game.Intel) bool {
	value := evaluator.HandValue(intel.Hand, intel.Vira)
	manilhas := evaluator.CountManilhas(intel.Hand, intel.Vira)

	if intel.OpponentScore < 0 {
		return false
	}
	for _, band := range elevenBands {
		if intel.OpponentScore > band.maxOpponentScore {
			continue
		}
		accept := value >= band.minHandValue
		if band.maxOpponentScore == 10 && manilhas >= 2 {
			accept = true
		}
		z.logger.Debug("eleven hand", "value", value, "needed", band.minHandValue, "accept", accept)
		return accept
	}
	return false
}

func (z *ZecaTatu) ShouldRaise(intel game.Intel) bool {
	value := evaluator.HandValue(intel.Hand, intel.Vira)
	manilhas := evaluator.CountManilhas(intel.Hand, intel.Vira)
	first, played := intel.FirstRound()

	var raise bool
	switch len(intel.Hand) {
	case 3:
		// weak openings are bluffed
		raise = value < 10
	case 2:
		raise = (played && first == game.Drew) ||
			(!(played && first == game.Won) && manilhas == 2) ||
			value > 16
	case 1:
		raise = manilhas >= 1
	}
	z.logger.Debug("raise decision", "cards", len(intel.Hand), "value", value, "manilhas", manilhas, "raise", raise)
	return raise
}

func (z *ZecaTatu) ChooseCard(intel game.Intel) game.CardToPlay {
	mustHaveCards(ZecaTatuName, intel)
	vira := intel.Vira
	hand := intel.Hand
	best := evaluator.Strongest(hand, vira)
	worst := evaluator.Weakest(hand, vira)
	opponent, responding := intel.Opponent()

	beats := func(card deck.Card) bool {
		return evaluator.Compare(card, opponent, vira) == evaluator.Greater
	}
	draws := func(card deck.Card) bool {
		return evaluator.Compare(card, opponent, vira) == evaluator.Equal
	}

	switch len(hand) {
	case 3:
		middle, _ := evaluator.Middle(hand, vira)
		hasZap, hasCopas := evaluator.HasZap(hand, vira), evaluator.HasCopas(hand, vira)
		if hasZap && hasCopas {
			return z.play(game.Play(worst), "zap and copas in hand")
		}
		if responding {
			if first, ok := intel.FirstRound(); ok && first == game.Drew && (hasZap || hasCopas) {
				if draws(worst) {
					return z.play(game.Play(worst), "draw again, top manilha held")
				}
				if draws(middle) {
					return z.play(game.Play(middle), "draw again, top manilha held")
				}
			}
			for _, card := range []deck.Card{worst, middle, best} {
				if beats(card) {
					return z.play(game.Play(card), "cheapest winner")
				}
			}
			return z.play(game.Play(worst), "cannot win")
		}
		if evaluator.CountManilhas(hand, vira) >= 1 && hasValue(hand, vira, 9) {
			return z.play(game.Play(middle), "manilha and a top plain card, lead the middle")
		}
	case 2:
		if responding {
			if beats(worst) {
				return z.play(game.Play(worst), "cheapest winner")
			}
			if beats(best) {
				return z.play(game.Play(best), "only winner")
			}
			return z.play(game.Discard(worst), "cannot win, hide the card")
		}
		if evaluator.CountManilhas(hand, vira) >= 1 {
			return z.play(game.Play(best), "leading with a manilha")
		}
		return z.play(game.Play(worst), "leading without a manilha")
	}
	return z.play(game.Play(hand[0]), "default")
}

func (z *ZecaTatu) RaiseResponse(intel game.Intel) game.RaiseResponse {
	value := evaluator.HandValue(intel.Hand, intel.Vira)
	manilhas := evaluator.CountManilhas(intel.Hand, intel.Vira)

	resp := game.Decline
	switch len(intel.Hand) {
	case 3:
		if manilhas >= 2 {
			resp = game.ReRaise
		} else if manilhas >= 1 && value >= 24 {
			resp = game.Accept
		}
	case 2:
		if manilhas == 2 {
			resp = game.ReRaise
		} else if manilhas >= 1 || value >= 17 {
			resp = game.Accept
		}
	case 1:
		if value >= 12 {
			resp = game.ReRaise
		} else if value >= 9 {
			resp = game.Accept
		}
	}
	z.logger.Debug("raise response", "cards", len(intel.Hand), "value", value, "manilhas", manilhas, "response", resp)
	return resp
}

func (z *ZecaTatu) play(play game.CardToPlay, reason string) game.CardToPlay {
	z.logger.Debug("card chosen", "card", play, "reason", reason)
	return play
}

func hasValue(hand []deck.Card, vira deck.Card, value int) bool {
	for _, card := range hand {
		if evaluator.RelativeValue(card, vira) == value {
			return true
		}
	}
	return false
}
