package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/evaluator"
	"github.com/lox/trucoforbots/internal/game"
	"github.com/lox/trucoforbots/internal/simulator"
	"github.com/lox/trucoforbots/internal/statistics"
)

// Decisions holds the four answers of a bot for one snapshot
type Decisions struct {
	AcceptEleven bool
	Raise        bool
	Card         game.CardToPlay
	Response     game.RaiseResponse
}

// Printer writes formatted output
type Printer struct {
	w      io.Writer
	styles *Styles
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, styles: NewStyles(NewRenderer(w, color))}
}

// Card renders a card, highlighting manilhas
func (p *Printer) Card(card, vira deck.Card) string {
	switch {
	case evaluator.IsManilha(card, vira):
		return p.styles.Manilha.Render(card.String())
	case card.IsRed():
		return p.styles.CardRed.Render(card.String())
	default:
		return p.styles.CardBlack.Render(card.String())
	}
}

// Cards renders a list of cards separated by spaces
func (p *Printer) Cards(cards []deck.Card, vira deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c, vira)
	}
	return strings.Join(parts, " ")
}

// Decisions prints what a bot decided for a snapshot
func (p *Printer) Decisions(name string, intel game.Intel, d Decisions) {
	fmt.Fprintln(p.w, p.styles.Header.Render(fmt.Sprintf(" %s ", name)))
	fmt.Fprintf(p.w, "Vira: %s  Manilha: %s\n", p.Card(intel.Vira, intel.Vira), evaluator.ManilhaRank(intel.Vira))
	fmt.Fprintf(p.w, "Hand: %s  (value %d)\n", p.Cards(intel.Hand, intel.Vira), evaluator.HandValue(intel.Hand, intel.Vira))
	if opponent, ok := intel.Opponent(); ok {
		fmt.Fprintf(p.w, "Opponent played: %s\n", p.Card(opponent, intel.Vira))
	}
	if len(intel.RoundResults) > 0 {
		results := make([]string, len(intel.RoundResults))
		for i, r := range intel.RoundResults {
			results[i] = r.String()
		}
		fmt.Fprintf(p.w, "Tricks: %s\n", strings.Join(results, ", "))
	}
	fmt.Fprintf(p.w, "Score: %d x %d\n\n", intel.Score, intel.OpponentScore)

	fmt.Fprintf(p.w, "Accept mão de onze: %s\n", p.yesNo(d.AcceptEleven))
	fmt.Fprintf(p.w, "Ask for a raise:    %s\n", p.yesNo(d.Raise))
	card := p.Card(d.Card.Card, intel.Vira)
	if d.Card.Discard {
		card += p.styles.Muted.Render(" (face down)")
	}
	fmt.Fprintf(p.w, "Card to play:       %s\n", card)
	fmt.Fprintf(p.w, "Raise response:     %s\n", p.response(d.Response))
}

// StrengthTable prints every card ordered from strongest to weakest under vira
func (p *Printer) StrengthTable(vira deck.Card) {
	cards := evaluator.SortDescending(deck.All(), vira)

	fmt.Fprintln(p.w, p.styles.Header.Render(fmt.Sprintf(" Vira %s ", vira)))
	fmt.Fprintln(p.w, p.styles.SubHeader.Render("Value  Cards"))
	for value := evaluator.MaxValue; value >= 1; value-- {
		var row []deck.Card
		for _, c := range cards {
			if evaluator.RelativeValue(c, vira) == value {
				row = append(row, c)
			}
		}
		if len(row) == 0 {
			continue
		}
		label := ""
		if evaluator.IsManilha(row[0], vira) {
			label = p.styles.Muted.Render("  " + manilhaName(row[0], vira))
		}
		fmt.Fprintf(p.w, "%5d  %s%s\n", value, p.Cards(row, vira), label)
	}
}

// DuelSummary prints the aggregated results of a duel
func (p *Printer) DuelSummary(result *simulator.Result) {
	s := result.Stats
	lo, hi := s.ConfidenceInterval95()

	fmt.Fprintln(p.w, p.styles.Header.Render(fmt.Sprintf(" %s vs %s ", result.BotA, result.BotB)))
	fmt.Fprintf(p.w, "Run: %s  Seed: %d\n", result.RunID, result.Seed)
	fmt.Fprintf(p.w, "Hands: %d\n", s.Hands)
	fmt.Fprintf(p.w, "Points per hand for %s: %s (95%% CI %.3f to %.3f, stddev %.3f)\n",
		result.BotA, p.signed(s.Mean()), lo, hi, s.StdDev())
	fmt.Fprintf(p.w, "Hands won: %s %d, %s %d, nobody %d (%.1f%% for %s)\n",
		result.BotA, s.WinsA, result.BotB, s.WinsB, s.Draws, 100*s.WinRateA(), result.BotA)
	fmt.Fprintf(p.w, "Points: %s %d, %s %d\n", result.BotA, s.PointsA, result.BotB, s.PointsB)
	fmt.Fprintf(p.w, "Raise requests: %d\n", s.Raises)

	fmt.Fprintln(p.w, p.styles.SubHeader.Render("Endings"))
	for o, n := range s.Outcomes {
		fmt.Fprintf(p.w, "  %-16s %d\n", statistics.Outcome(o), n)
	}

	fmt.Fprintln(p.w, p.styles.SubHeader.Render("Stakes"))
	stakes := make([]int, 0, len(s.Stakes))
	for stake := range s.Stakes {
		stakes = append(stakes, stake)
	}
	slices.Sort(stakes)
	for _, stake := range stakes {
		fmt.Fprintf(p.w, "  %-16d %d\n", stake, s.Stakes[stake])
	}
}

func (p *Printer) yesNo(v bool) string {
	if v {
		return p.styles.Positive.Render("yes")
	}
	return p.styles.Negative.Render("no")
}

func (p *Printer) response(r game.RaiseResponse) string {
	switch r {
	case game.ReRaise:
		return p.styles.Positive.Render(r.String())
	case game.Accept:
		return r.String()
	default:
		return p.styles.Negative.Render(r.String())
	}
}

func (p *Printer) signed(v float64) string {
	s := fmt.Sprintf("%+.3f", v)
	if v < 0 {
		return p.styles.Negative.Render(s)
	}
	return p.styles.Positive.Render(s)
}

func manilhaName(card, vira deck.Card) string {
	switch {
	case evaluator.IsZap(card, vira):
		return "zap"
	case evaluator.IsCopas(card, vira):
		return "copas"
	case evaluator.IsEspadilha(card, vira):
		return "espadilha"
	default:
		return "picafumo"
	}
}
