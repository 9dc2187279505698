package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/logging"
	"github.com/atomicstack/tabfinder/internal/logging/events"
	"github.com/atomicstack/tabfinder/internal/suggest"
	uistate "github.com/atomicstack/tabfinder/internal/ui/state"
)

// resultsMsg carries a finished resolution back to the update loop.
type resultsMsg struct {
	seq   uint64
	query string
	vm    suggest.ViewModel
	err   error
}

// issueQuery tags query with the next sequence number and resolves it
// asynchronously. Queries are trimmed before resolution.
func (m *Model) issueQuery(raw string) tea.Cmd {
	m.lastQuery = raw
	query := strings.TrimSpace(raw)
	seq := m.seq.Next()
	events.Query.Issue(seq, query)
	if m.resolver == nil {
		return nil
	}
	m.loading = true
	resolver := m.resolver
	return func() tea.Msg {
		vm, err := resolver.Resolve(context.Background(), query)
		return resultsMsg{seq: seq, query: query, vm: vm, err: err}
	}
}

func (m *Model) handleResultsMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(resultsMsg)
	if !ok {
		return nil
	}
	if err := m.seq.Check(res.seq); err != nil {
		events.Query.Stale(res.seq, m.seq.Latest())
		return nil
	}
	m.loading = false
	if res.err != nil {
		// keep the previous view model on screen
		m.errMsg = res.err.Error()
		logging.Error(res.err)
		events.Query.Failed(res.seq, res.query, res.err)
		return nil
	}
	m.errMsg = ""
	queryChanged := !m.hasVM || res.vm.Query != m.vm.Query
	m.vm = res.vm
	m.hasVM = true
	if queryChanged {
		m.combo.SetInitialIndex(uistate.BestMatchIndex(candidates(m.vm), m.vm.Query))
		m.viewport.Offset = 0
	}
	m.patch()
	if queryChanged {
		m.revealSelected()
	}
	events.Query.Apply(res.seq, res.query, m.combo.Len())
	return nil
}

func candidates(vm suggest.ViewModel) []uistate.Candidate {
	items := vm.Items()
	out := make([]uistate.Candidate, len(items))
	for i, item := range items {
		out[i] = uistate.Candidate{Label: item.Title, Key: item.URL}
	}
	return out
}

// revealSelected centres the selected row when it lies outside the viewport.
func (m *Model) revealSelected() {
	index, _ := m.combo.Selected()
	rows := m.list.Rows()
	if index < 0 || index >= len(rows) {
		return
	}
	if line := rows[index].Line(); !m.viewport.Contains(line) {
		m.viewport.Center(line, m.list.Len())
	}
}
