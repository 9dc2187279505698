// Package combobox implements single selection over a list of options that
// may change at any time, driven by keyboard and pointer input.
package combobox

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/logging/events"
)

// Option is one selectable row.
type Option interface {
	ID() string
	SetID(id string)
	SetSelected(selected bool)
	// Click performs the option's primary action. secondary reports whether
	// the secondary modifier was held.
	Click(secondary bool) tea.Cmd
}

// List is the container the combobox wraps. OnMutate subscribes to child
// list changes; the callback must run synchronously after each change.
type List interface {
	Options() []Option
	OnMutate(fn func())
}

// Input receives the id of the selected option.
type Input interface {
	SetActiveDescendant(id string)
}

// State is the coarse combobox state.
type State int

const (
	Empty State = iota
	Selecting
)

func (s State) String() string {
	if s == Empty {
		return "empty"
	}
	return "selecting"
}

// Config carries optional collaborators.
type Config struct {
	// OnChange is called after every selection update with the chosen option.
	OnChange func(index int, option Option)
	// RequestFrame asks for a frame so a pending scroll can be applied.
	RequestFrame func()
}

// Combobox tracks the selected index. Invariant: selected is -1 iff there
// are no options, otherwise it is in [0, len(options)).
type Combobox struct {
	list   List
	input  Input
	config Config

	options  []Option
	selected int
	current  Option

	initial    int
	hasInitial bool

	scrollTo      int
	scrollPending bool
}

// New attaches a combobox to list and derives the initial selection.
func New(list List, input Input, config Config) *Combobox {
	c := &Combobox{list: list, input: input, config: config, selected: -1}
	list.OnMutate(c.Mutated)
	c.Mutated()
	return c
}

// SetInitialIndex supplies the index used on the next mutation instead of
// the previous selection.
func (c *Combobox) SetInitialIndex(index int) {
	c.initial = index
	c.hasInitial = true
}

// Mutated re-derives the option list and clamps the selection into it.
func (c *Combobox) Mutated() {
	c.options = c.list.Options()
	index := c.selected
	if c.hasInitial {
		index = c.initial
		c.hasInitial = false
	}
	c.setSelected(index, false)
}

// Navigate moves the selection by delta and scrolls it into view.
func (c *Combobox) Navigate(delta int) {
	if c.State() == Empty {
		return
	}
	c.setSelected(c.selected+delta, true)
}

// Hover selects option without scrolling.
func (c *Combobox) Hover(option Option) {
	index := c.indexOf(option)
	if index < 0 {
		return
	}
	c.setSelected(index, false)
}

// Select selects index without scrolling.
func (c *Combobox) Select(index int) {
	c.setSelected(index, false)
}

// Activate clicks the selected option. It returns nil when empty.
func (c *Combobox) Activate(secondary bool) tea.Cmd {
	if c.current == nil {
		return nil
	}
	events.Selection.Activate(c.selected, c.current.ID(), secondary)
	return c.current.Click(secondary)
}

// Selected returns the selected index and option, or -1 and nil.
func (c *Combobox) Selected() (int, Option) {
	return c.selected, c.current
}

func (c *Combobox) Len() int {
	return len(c.options)
}

func (c *Combobox) State() State {
	if len(c.options) == 0 {
		return Empty
	}
	return Selecting
}

// TakeScroll returns the index to centre on, once per request.
func (c *Combobox) TakeScroll() (int, bool) {
	if !c.scrollPending {
		return 0, false
	}
	c.scrollPending = false
	if c.scrollTo >= len(c.options) {
		return 0, false
	}
	return c.scrollTo, true
}

func (c *Combobox) setSelected(index int, scroll bool) {
	n := len(c.options)
	if n == 0 {
		c.selected = -1
		c.current = nil
		c.input.SetActiveDescendant("")
		return
	}
	index = clamp(index, n)
	chosen := c.options[index]
	for _, option := range c.options {
		option.SetSelected(option == chosen)
	}
	c.selected = index
	c.current = chosen
	if chosen.ID() == "" {
		chosen.SetID(fmt.Sprintf("opt%d", index))
	}
	events.Selection.Changed(index, chosen.ID())
	if c.config.OnChange != nil {
		c.config.OnChange(index, chosen)
	}
	c.input.SetActiveDescendant(chosen.ID())
	if scroll {
		c.scrollTo = index
		if !c.scrollPending && c.config.RequestFrame != nil {
			c.config.RequestFrame()
		}
		c.scrollPending = true
	}
}

func (c *Combobox) indexOf(option Option) int {
	for i, o := range c.options {
		if o == option {
			return i
		}
	}
	return -1
}

func clamp(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}
