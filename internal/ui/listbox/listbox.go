// Package listbox is the rendered suggestion list: option rows laid out on
// lines between section and group headers, with a mutation notification the
// combobox subscribes to.
package listbox

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/combobox"
	"github.com/atomicstack/tabfinder/internal/lazy"
	"github.com/atomicstack/tabfinder/internal/suggest"
)

// Action runs when a row is clicked.
type Action func(item suggest.Item, secondary bool) tea.Cmd

// Row is one option. Its body is realized lazily.
type Row struct {
	Item suggest.Item

	id       string
	selected bool
	line     int
	content  string
	filled   bool
	action   Action
}

var (
	_ combobox.Option = (*Row)(nil)
	_ lazy.Target     = (*Row)(nil)
)

func NewRow(item suggest.Item, action Action) *Row {
	return &Row{Item: item, action: action, line: -1}
}

func (r *Row) ID() string { return r.id }

func (r *Row) SetID(id string) { r.id = id }

func (r *Row) Selected() bool { return r.selected }

func (r *Row) SetSelected(sel bool) { r.selected = sel }

// Line returns the row's line in the container, or -1 before layout.
func (r *Row) Line() int { return r.line }

func (r *Row) Bounds() (int, int) { return r.line, r.line + 1 }

// Content returns the realized body and whether it exists yet.
func (r *Row) Content() (string, bool) { return r.content, r.filled }

// Fill stores the realized body.
func (r *Row) Fill(content string) {
	r.content = content
	r.filled = true
}

func (r *Row) Click(secondary bool) tea.Cmd {
	if r.action == nil {
		return nil
	}
	return r.action(r.Item, secondary)
}

// Line is one rendered line: a header or a row.
type Line struct {
	Header string
	Color  int
	Group  bool
	Row    *Row
}

// Container holds the current lines.
type Container struct {
	lines     []Line
	rows      []*Row
	listeners []func()
}

var _ combobox.List = (*Container)(nil)

func New() *Container {
	return &Container{}
}

// Replace swaps in a new set of lines, assigns row positions and notifies
// every listener synchronously.
func (c *Container) Replace(lines []Line) {
	c.lines = lines
	c.rows = nil
	for i := range lines {
		if row := lines[i].Row; row != nil {
			row.line = i
			c.rows = append(c.rows, row)
		}
	}
	for _, fn := range c.listeners {
		fn()
	}
}

func (c *Container) OnMutate(fn func()) {
	c.listeners = append(c.listeners, fn)
}

func (c *Container) Options() []combobox.Option {
	options := make([]combobox.Option, len(c.rows))
	for i, row := range c.rows {
		options[i] = row
	}
	return options
}

func (c *Container) Lines() []Line {
	return c.lines
}

func (c *Container) Rows() []*Row {
	return c.rows
}

// Len returns the number of lines.
func (c *Container) Len() int {
	return len(c.lines)
}

// RowAt returns the row on line, if any.
func (c *Container) RowAt(line int) *Row {
	if line < 0 || line >= len(c.lines) {
		return nil
	}
	return c.lines[line].Row
}
