package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// handleBackendEventMsg re-resolves the current query when the profile
// changes on disk. The selection is kept because the query is unchanged.
func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if eventMsg.event.Err != nil {
		m.backendLastErr = eventMsg.event.Err.Error()
	} else {
		m.backendLastErr = ""
		if m.started {
			cmd = m.issueQuery(m.input.Value())
		}
	}
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}
