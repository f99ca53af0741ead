package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/santanusen/pocketcube"
)

// One style per face color so facelet letters render in their own color.
var colorStyles = map[pocketcube.Color]lipgloss.Style{
	pocketcube.Red:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	pocketcube.Green:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	pocketcube.Blue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	pocketcube.Cyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	pocketcube.Magenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	pocketcube.Yellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	solvedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	unsolvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// colorize renders a facelet's color codes, each letter in its color.
func colorize(f pocketcube.Facelet) string {
	var b strings.Builder
	for _, r := range f.String() {
		c := colorFromLetter(r)
		if style, ok := colorStyles[c]; ok {
			b.WriteString(style.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func colorFromLetter(r rune) pocketcube.Color {
	switch r {
	case 'R':
		return pocketcube.Red
	case 'G':
		return pocketcube.Green
	case 'B':
		return pocketcube.Blue
	case 'C':
		return pocketcube.Cyan
	case 'M':
		return pocketcube.Magenta
	case 'Y':
		return pocketcube.Yellow
	default:
		return pocketcube.Color(255)
	}
}

// renderCube returns the labeled slot table with colored facelet codes
// and a styled verdict line.
func renderCube(c pocketcube.Cube) string {
	var b strings.Builder
	for slot := 0; slot < 24; slot++ {
		b.WriteString(labelStyle.Render("[" + pocketcube.SlotLabel(slot) + "]"))
		b.WriteString(" = ")
		b.WriteString(colorize(c.Facelet(slot)))
		b.WriteString("\n")
	}
	if c.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(unsolvedStyle.Render("UNSOLVED"))
	}
	b.WriteString("\n")
	return b.String()
}
