package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg struct{}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// requestFrame asks for one frame. Requests made before the frame runs are
// merged into it.
func (m *Model) requestFrame() {
	m.frameWanted = true
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(frameMsg); !ok {
		return nil
	}
	m.frameInFlight = false
	m.sched.Frame()
	if index, ok := m.combo.TakeScroll(); ok {
		if rows := m.list.Rows(); index < len(rows) {
			m.viewport.Center(rows[index].Line(), m.list.Len())
		}
	}
	m.deliverVisible()
	if !m.started {
		m.started = true
		return m.issueQuery(m.input.Value())
	}
	return nil
}

// deliverVisible reports the viewport to the observer and realizes every
// watched row now inside it.
func (m *Model) deliverVisible() {
	m.observer.SetViewport(m.viewport.Offset, m.viewport.Bottom())
	m.observer.Deliver(m.sched)
}
