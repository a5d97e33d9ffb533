package carousel

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/rotator"
)

const defaultWidth = 100

type keyMap struct {
	Previous key.Binding
	Next     key.Binding
	Jump     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Jump, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// snapshotMsg carries a state change published by the session.
type snapshotMsg rotator.Snapshot[content.Testimonial]

// closedMsg reports that the session stopped publishing.
type closedMsg struct{}

// model is the preview program state. The session owns the carousel; the
// model only mirrors its latest snapshot.
type model struct {
	brand   string
	session *rotator.Session[content.Testimonial]
	updates <-chan rotator.Snapshot[content.Testimonial]
	snap    rotator.Snapshot[content.Testimonial]
	width   int
	keys    keyMap
	help    help.Model
}

func newModel(brand string, session *rotator.Session[content.Testimonial], updates <-chan rotator.Snapshot[content.Testimonial]) model {
	return model{
		brand:   brand,
		session: session,
		updates: updates,
		snap:    session.Snapshot(),
		width:   defaultWidth,
		keys:    defaultKeys(),
		help:    help.New(),
	}
}

func waitForSnapshot(updates <-chan rotator.Snapshot[content.Testimonial]) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case snapshotMsg:
		m.snap = rotator.Snapshot[content.Testimonial](msg)
		return m, waitForSnapshot(m.updates)
	case closedMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Previous):
			m.snap = m.session.Previous()
		case key.Matches(msg, m.keys.Next):
			m.snap = m.session.Next()
		case key.Matches(msg, m.keys.Jump):
			// Digits past the end are ignored; JumpTo requires a valid index.
			if i, err := strconv.Atoi(msg.String()); err == nil && i >= 1 && i <= m.session.Len() {
				m.snap = m.session.JumpTo(i - 1)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	header := titleStyle.Render(fmt.Sprintf("%s testimonials  %d/%d", m.brand, m.snap.Index+1, m.snap.Len))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		renderWindow(m.snap, m.width),
		"",
		m.help.View(m.keys),
	) + "\n"
}
