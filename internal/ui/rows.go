package ui

import (
	"strings"

	"github.com/atomicstack/tabfinder/internal/lazy"
	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/ui/listbox"
)

const (
	sectionTabs      = "Tabs"
	sectionBookmarks = "Bookmarks"
)

// patch rebuilds the listbox from the view model. Rows are created empty and
// their bodies scheduled with the lazy scheduler; anything scheduled for the
// previous rows is abandoned.
func (m *Model) patch() {
	m.sched.BeginPass()
	vm := m.vm
	lines := make([]listbox.Line, 0, vm.Len()+8)
	if vm.Tabs.Len() > 0 {
		lines = append(lines, listbox.Line{Header: sectionTabs, Color: suggest.NoColor})
		for _, group := range vm.Tabs {
			lines = m.appendRows(lines, group.Items)
		}
	}
	if len(vm.Bookmarks) > 0 {
		lines = append(lines, listbox.Line{Header: sectionBookmarks, Color: suggest.NoColor})
		lines = m.appendRows(lines, vm.Bookmarks)
	}
	lines = m.appendRows(lines, vm.Pages)
	lines = m.appendRows(lines, vm.Settings)
	for _, group := range vm.Sessions {
		lines = append(lines, listbox.Line{Header: group.Label, Color: group.Color, Group: true})
		lines = m.appendRows(lines, group.Items)
	}

	m.list.Replace(lines)
	m.viewport.Clamp(m.list.Len())
	query := vm.Query
	for _, row := range m.list.Rows() {
		m.sched.Schedule(row, m.rowBody(row.Item, query))
	}
}

func (m *Model) appendRows(lines []listbox.Line, items []suggest.Item) []listbox.Line {
	for _, item := range items {
		lines = append(lines, listbox.Line{
			Row:   listbox.NewRow(item, m.activate),
			Color: item.GroupColor,
		})
	}
	return lines
}

// rowBody returns the deferred renderer for a row: the title with the query
// highlighted, followed by the URL.
func (m *Model) rowBody(item suggest.Item, query string) lazy.Thunk {
	styles := m.styles
	return func() string {
		var sb strings.Builder
		sb.WriteString(highlight(item.Title, query, *styles.Item, *styles.Highlight))
		if item.URL != "" && item.Kind != suggest.KindPage {
			urlStyle := *styles.URL
			if item.Kind == suggest.KindTab && item.MatchesTitle {
				urlStyle = urlStyle.Faint(true)
			}
			sb.WriteString("  ")
			sb.WriteString(highlight(item.URL, query, urlStyle, *styles.Highlight))
		}
		return sb.String()
	}
}
