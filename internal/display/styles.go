// Package display renders cards, bot decisions and duel results for the
// terminal.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for terminal output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Manilha   lipgloss.Style
	Positive  lipgloss.Style
	Negative  lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates a style set bound to renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Manilha: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Positive: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Negative: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// NewRenderer returns a lipgloss renderer for w. Without color every style
// renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
