package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/rotator"
	"github.com/mattn/go-runewidth"
)

const (
	minCardWidth = 20
	maxQuoteRows = 6
	cardGap      = 2
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	secondaryCardStyle = cardStyle.BorderForeground(lipgloss.Color("240"))
	nameStyle          = lipgloss.NewStyle().Bold(true)
	roleStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dotStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeDotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

// renderWindow draws the two visible testimonials side by side with the
// selector row underneath. width is the total terminal width.
func renderWindow(snap rotator.Snapshot[content.Testimonial], width int) string {
	inner := cardInnerWidth(width)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Width(inner).Render(cardBody(snap.Window[0], inner)),
		strings.Repeat(" ", cardGap),
		secondaryCardStyle.Width(inner).Render(cardBody(snap.Window[1], inner)),
	)
	return lipgloss.JoinVertical(lipgloss.Center, cards, "", selectors(snap.Index, snap.Len))
}

// cardInnerWidth splits width between two bordered, padded cards.
func cardInnerWidth(width int) int {
	frame := cardStyle.GetHorizontalFrameSize()
	inner := (width-cardGap)/2 - frame
	if inner < minCardWidth {
		return minCardWidth
	}
	return inner
}

func cardBody(t content.Testimonial, width int) string {
	lines := wrap("“"+t.Quote+"”", width)
	if len(lines) > maxQuoteRows {
		lines = lines[:maxQuoteRows]
		lines[maxQuoteRows-1] = runewidth.Truncate(lines[maxQuoteRows-1]+" …", width, "…")
	}
	parts := append(lines, "", nameStyle.Render(runewidth.Truncate(t.Name, width, "…")))
	if t.Role != "" {
		parts = append(parts, roleStyle.Render(runewidth.Truncate(t.Role, width, "…")))
	}
	return strings.Join(parts, "\n")
}

// wrap breaks text into lines no wider than width display cells. Words
// wider than a line are truncated.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if w > width {
			word = runewidth.Truncate(word, width, "…")
			w = runewidth.StringWidth(word)
		}
		switch {
		case lineWidth == 0:
		case lineWidth+1+w <= width:
			line.WriteByte(' ')
			lineWidth++
		default:
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func selectors(index int, n int) string {
	dots := make([]string, n)
	for i := range dots {
		if i == index {
			dots[i] = activeDotStyle.Render("●")
		} else {
			dots[i] = dotStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
