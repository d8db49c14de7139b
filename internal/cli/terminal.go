package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/lipgloss"
)

// Renderer formats rows, suggestion lists and autoplay transcripts.
// With color off every method returns plain text.
type Renderer struct {
	color  bool
	tiles  map[solver.Mark]lipgloss.Style
	header lipgloss.Style
	word   lipgloss.Style
	dim    lipgloss.Style
}

// NewRenderer builds the tile styles used by the terminal UI.
func NewRenderer(color bool) *Renderer {
	tile := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
	return &Renderer{
		color: color,
		tiles: map[solver.Mark]lipgloss.Style{
			solver.Green:  tile.Background(lipgloss.Color("#538D4E")),
			solver.Yellow: tile.Background(lipgloss.Color("#B59F3B")),
			solver.Gray:   tile.Background(lipgloss.Color("#3A3A3C")),
		},
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5F5F5")),
		word:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (r *Renderer) render(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Row renders a guess with its feedback.
func (r *Renderer) Row(guess string, p solver.Pattern) string {
	upper := strings.ToUpper(guess)
	if !r.color {
		return upper + " " + p.String()
	}
	tiles := make([]string, 0, len(upper))
	for i, ch := range upper {
		tiles = append(tiles, r.tiles[p[i]].Render(string(ch)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Suggestions lists ranked guesses. Words that can still be the answer are
// marked with an asterisk.
func (r *Renderer) Suggestions(list []solver.Suggestion, remaining int) string {
	var b strings.Builder
	b.WriteString(r.render(r.header, fmt.Sprintf("%s candidates left", utils.FormatWithCommas(remaining))))
	b.WriteByte('\n')
	for i, s := range list {
		marker := " "
		if s.Candidate {
			marker = "*"
		}
		info := r.render(r.dim, fmt.Sprintf("%.3f bits", s.Information))
		freq := r.render(r.dim, "freq "+utils.FormatScore(s.Frequency))
		fmt.Fprintf(&b, "%2d. %s%s  %s  %s\n", i+1, r.render(r.word, s.Word), marker, info, freq)
	}
	return b.String()
}

// Candidates lists up to max remaining words, most frequent first.
func (r *Renderer) Candidates(words []string, max int) string {
	shown := words
	if max > 0 && len(shown) > max {
		shown = shown[:max]
	}
	var b strings.Builder
	b.WriteString(strings.Join(shown, " "))
	if len(shown) < len(words) {
		b.WriteString(r.render(r.dim, fmt.Sprintf(" ... (+%d more)", len(words)-len(shown))))
	}
	b.WriteByte('\n')
	return b.String()
}

// Autoplay renders a finished autoplay run.
func (r *Renderer) Autoplay(answer string, steps []solver.Step, solved bool) string {
	var b strings.Builder
	for i, st := range steps {
		detail := r.render(r.dim, fmt.Sprintf("%d candidates, %.3f bits", st.Remaining, st.Information))
		fmt.Fprintf(&b, "%d. %s  %s\n", i+1, r.Row(st.Guess, st.Pattern), detail)
	}
	if solved {
		b.WriteString(r.render(r.header, fmt.Sprintf("Solved %s in %d guesses", strings.ToUpper(answer), len(steps))))
	} else {
		b.WriteString(r.render(r.header, fmt.Sprintf("Not solved after %d guesses", len(steps))))
	}
	b.WriteByte('\n')
	return b.String()
}
