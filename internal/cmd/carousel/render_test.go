package carousel

import (
	"strings"
	"testing"

	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/rotator"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestWrapRespectsDisplayWidth(t *testing.T) {
	t.Parallel()

	lines := wrap("the quick brown fox jumps over the lazy dog", 10)
	require.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, lines)

	for _, line := range wrap("مرحبا بكم في فورا جلوبال للعقارات والتسويق", 12) {
		require.LessOrEqual(t, runewidth.StringWidth(line), 12)
	}
	for _, line := range wrap("房地产投资 房地产投资房地产投资", 8) {
		require.LessOrEqual(t, runewidth.StringWidth(line), 8)
	}
	require.Empty(t, wrap("   ", 10))
}

func TestCardBodyCapsQuoteRows(t *testing.T) {
	t.Parallel()

	long := content.Testimonial{Name: "Alpha", Quote: strings.Repeat("word ", 200)}
	body := cardBody(long, minCardWidth)
	lines := strings.Split(body, "\n")
	require.Len(t, lines, maxQuoteRows+2)
	require.True(t, strings.HasSuffix(lines[maxQuoteRows-1], "…"))
	for _, line := range lines {
		require.LessOrEqual(t, runewidth.StringWidth(line), minCardWidth)
	}
}

func TestCardInnerWidthHasFloor(t *testing.T) {
	t.Parallel()

	require.Equal(t, minCardWidth, cardInnerWidth(10))
	require.Greater(t, cardInnerWidth(120), minCardWidth)
}

func TestRenderWindowMarksActiveSelector(t *testing.T) {
	t.Parallel()

	rot, err := rotator.New(sample)
	require.NoError(t, err)
	rot.JumpTo(1)
	out := renderWindow(rot.Snapshot(), 90)
	require.Contains(t, out, "○ ● ○")
	require.Contains(t, out, "second quote")
	require.Contains(t, out, "third quote")
	require.NotContains(t, out, "first quote")
}
