package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// listTop is the first screen row of the list; the search box sits above.
	listTop     = 1
	wheelStep   = 3
	minListRows = 1
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "esc", "ctrl+c":
		return tea.Quit
	case "enter":
		return m.combo.Activate(false)
	case "alt+enter":
		return m.combo.Activate(true)
	case "up", "ctrl+p", "shift+tab":
		m.combo.Navigate(-1)
		return nil
	case "down", "ctrl+n", "tab":
		m.combo.Navigate(1)
		return nil
	case "pgup":
		m.combo.Navigate(-m.viewport.PageSize(m.combo.Len()))
		return nil
	case "pgdown":
		m.combo.Navigate(m.viewport.PageSize(m.combo.Len()))
		return nil
	case "ctrl+u":
		if m.input.Value() == "" {
			return nil
		}
		m.input.SetValue("")
		m.errMsg = ""
		m.forceClearInfo()
		return m.issueQuery("")
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if value := m.input.Value(); value != m.lastQuery {
		m.forceClearInfo()
		if query := m.issueQuery(value); query != nil {
			return tea.Batch(cmd, query)
		}
	}
	return cmd
}

// handleMouseMsg maps pointer events onto list lines: motion hovers, a left
// click activates (ctrl makes it secondary) and the wheel scrolls.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	total := m.list.Len()
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if m.viewport.ScrollBy(-wheelStep, total) {
			m.deliverVisible()
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.viewport.ScrollBy(wheelStep, total) {
			m.deliverVisible()
		}
		return nil
	}

	y := ev.Y - listTop
	if y < 0 || y >= m.viewport.Height {
		return nil
	}
	row := m.list.RowAt(m.viewport.Offset + y)
	if row == nil {
		return nil
	}
	switch {
	case ev.Action == tea.MouseActionMotion:
		m.combo.Hover(row)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.combo.Hover(row)
		return m.combo.Activate(ev.Ctrl)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.layout()
	m.viewport.Clamp(m.list.Len())
	m.deliverVisible()
	return nil
}

// layout sizes the list window: the search box and the status line are
// always shown, the footer takes a blank line and a hint line.
func (m *Model) layout() {
	if m.width > 0 {
		m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
	}
	if m.height <= 0 {
		m.viewport.Height = 0
		return
	}
	rows := m.height - 2
	if m.showFooter {
		rows -= 2
	}
	if rows < minListRows {
		rows = minListRows
	}
	m.viewport.Height = rows
}

func (m *Model) applyInputStyles() {
	s := m.styles
	if s.FilterPrompt != nil {
		m.input.PromptStyle = *s.FilterPrompt
	}
	if s.Filter != nil {
		m.input.TextStyle = *s.Filter
	}
	if s.FilterPlaceholder != nil {
		m.input.PlaceholderStyle = *s.FilterPlaceholder
	}
	if s.Cursor != nil {
		m.input.Cursor.Style = *s.Cursor
	}
}
