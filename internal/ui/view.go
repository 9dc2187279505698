package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/ui/listbox"
)

const (
	rowIndicator   = "▌"
	groupMarker    = "●"
	footerHint     = "↑/↓ move  enter open  alt+enter background  esc quit"
	loadingMessage = "Loading…"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text carries ANSI escapes; truncate ANSI-aware and skip the style
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, m.viewport.Height+4)
	lines = append(lines, styledLine{text: m.input.View(), raw: true})
	lines = append(lines, m.listLines()...)
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: m.styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// listLines renders the lines inside the viewport, padded to its height.
func (m *Model) listLines() []styledLine {
	out := make([]styledLine, 0, m.viewport.Height)
	all := m.list.Lines()
	if len(all) == 0 {
		if msg := m.emptyMessage(); msg.text != "" {
			out = append(out, msg)
		}
	} else {
		end := m.viewport.Bottom()
		if m.viewport.Height <= 0 || end > len(all) {
			end = len(all)
		}
		for i := m.viewport.Offset; i < end; i++ {
			out = append(out, m.renderLine(all[i]))
		}
	}
	for len(out) < m.viewport.Height {
		out = append(out, styledLine{})
	}
	return out
}

func (m *Model) emptyMessage() styledLine {
	switch {
	case m.loading && !m.hasVM:
		return styledLine{text: loadingMessage, style: m.styles.Loading}
	case m.hasVM && m.vm.Query != "":
		return styledLine{text: fmt.Sprintf("No matches for %q", m.vm.Query), style: m.styles.Info}
	}
	return styledLine{}
}

func (m *Model) renderLine(line listbox.Line) styledLine {
	if line.Row == nil {
		if line.Group {
			style := m.styles.GroupStyle(line.Color)
			return styledLine{text: style.Render(groupMarker) + " " + m.styles.Group.Render(line.Header), raw: true}
		}
		return styledLine{text: line.Header, style: m.styles.Section}
	}
	return m.renderRow(line.Row, line.Color)
}

// renderRow draws the indicator and, once realized, the row body.
func (m *Model) renderRow(row *listbox.Row, color int) styledLine {
	indicator := m.styles.ItemIndicator.Render(rowIndicator)
	switch {
	case row.Selected():
		indicator = m.styles.SelectedItemIndicator.Render(rowIndicator)
	case color != suggest.NoColor:
		indicator = m.styles.GroupStyle(color).Render(rowIndicator)
	}
	body, ok := row.Content()
	if !ok {
		return styledLine{text: indicator, raw: true}
	}
	return styledLine{text: indicator + " " + body, raw: true}
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error}
	case m.backendLastErr != "":
		return styledLine{text: fmt.Sprintf("Watcher: %s", m.backendLastErr), style: m.styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: m.styles.Info}
	}
	if m.loading && m.hasVM {
		return styledLine{text: loadingMessage, style: m.styles.Loading}
	}
	return styledLine{}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
