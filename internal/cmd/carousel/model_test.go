package carousel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/rotator"
	"github.com/stretchr/testify/require"
)

var sample = []content.Testimonial{
	{Name: "Alpha", Role: "Investor", Quote: "first quote"},
	{Name: "Bravo", Quote: "second quote"},
	{Name: "Charlie", Quote: "third quote"},
}

func newTestModel(t *testing.T) model {
	t.Helper()
	session, err := rotator.NewSession(sample)
	require.NoError(t, err)
	t.Cleanup(session.Stop)
	updates, unsubscribe := session.Subscribe()
	t.Cleanup(unsubscribe)
	return newModel("Test", session, updates)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out, cmd
}

func TestModelNavigationKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	steps := []struct {
		msg  tea.Msg
		want int
	}{
		{msg: tea.KeyMsg{Type: tea.KeyRight}, want: 1},
		{msg: runes("l"), want: 2},
		{msg: runes("l"), want: 0},
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, want: 2},
		{msg: runes("h"), want: 1},
		{msg: runes("3"), want: 2},
		{msg: runes("1"), want: 0},
		{msg: runes("9"), want: 0},
	}
	for i, step := range steps {
		m, _ = update(t, m, step.msg)
		require.Equalf(t, step.want, m.snap.Index, "step %d", i)
		require.Equalf(t, step.want, m.session.Snapshot().Index, "session step %d", i)
	}
}

func TestModelQuits(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyCtrlC}, tea.KeyMsg{Type: tea.KeyEsc}, closedMsg{}} {
		_, cmd := update(t, newTestModel(t), msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModelMirrorsPublishedSnapshots(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.session.JumpTo(2)
	msg := m.Init()()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)

	m, cmd := update(t, m, snap)
	require.Equal(t, 2, m.snap.Index)
	require.NotNil(t, cmd)
}

func TestModelInitReportsClosedSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.session.Stop()
	require.IsType(t, closedMsg{}, m.Init()())
}

func TestModelViewShowsPositionAndHelp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	view := m.View()
	require.Contains(t, view, "Test testimonials  2/3")
	require.Contains(t, view, "second quote")
	require.Contains(t, view, "third quote")
	require.Contains(t, view, "quit")
	require.Equal(t, 80, m.width)
	require.True(t, strings.HasSuffix(view, "\n"))
}
