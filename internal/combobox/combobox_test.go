package combobox

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clickMsg struct {
	name      string
	secondary bool
}

type fakeOption struct {
	name     string
	id       string
	selected bool
}

func (o *fakeOption) ID() string { return o.id }
func (o *fakeOption) SetID(id string) { o.id = id }
func (o *fakeOption) SetSelected(sel bool) { o.selected = sel }
func (o *fakeOption) Click(secondary bool) tea.Cmd {
	return func() tea.Msg { return clickMsg{name: o.name, secondary: secondary} }
}

type fakeList struct {
	options []*fakeOption
	notify  []func()
}

func (l *fakeList) Options() []Option {
	out := make([]Option, len(l.options))
	for i, o := range l.options {
		out[i] = o
	}
	return out
}

func (l *fakeList) OnMutate(fn func()) { l.notify = append(l.notify, fn) }

func (l *fakeList) set(names ...string) {
	l.options = l.options[:0]
	for _, n := range names {
		l.options = append(l.options, &fakeOption{name: n})
	}
	for _, fn := range l.notify {
		fn()
	}
}

type fakeInput struct{ active string }

func (i *fakeInput) SetActiveDescendant(id string) { i.active = id }

func selectedCount(l *fakeList) int {
	n := 0
	for _, o := range l.options {
		if o.selected {
			n++
		}
	}
	return n
}

func newCombo(t *testing.T, names ...string) (*Combobox, *fakeList, *fakeInput) {
	t.Helper()
	list := &fakeList{}
	for _, n := range names {
		list.options = append(list.options, &fakeOption{name: n})
	}
	input := &fakeInput{}
	return New(list, input, Config{}), list, input
}

func TestEmptyListHasNoSelection(t *testing.T) {
	c, _, input := newCombo(t)
	idx, opt := c.Selected()
	assert.Equal(t, -1, idx)
	assert.Nil(t, opt)
	assert.Equal(t, Empty, c.State())
	assert.Equal(t, "", input.active)

	c.Navigate(1)
	assert.Nil(t, c.Activate(false))
	idx, _ = c.Selected()
	assert.Equal(t, -1, idx)
}

func TestMutationSelectsFirstOption(t *testing.T) {
	c, list, input := newCombo(t)
	list.set("a", "b", "c")
	idx, _ := c.Selected()
	assert.Equal(t, 0, idx)
	assert.Equal(t, Selecting, c.State())
	assert.True(t, list.options[0].selected)
	assert.Equal(t, "opt0", list.options[0].id)
	assert.Equal(t, "opt0", input.active)
	_, scroll := c.TakeScroll()
	assert.False(t, scroll)
}

func TestNavigateClampsAndScrolls(t *testing.T) {
	frames := 0
	list := &fakeList{}
	list.set("a", "b", "c")
	input := &fakeInput{}
	c := New(list, input, Config{RequestFrame: func() { frames++ }})

	c.Navigate(1)
	c.Navigate(1)
	c.Navigate(1)
	idx, _ := c.Selected()
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1, frames, "one frame covers several navigations")
	target, ok := c.TakeScroll()
	require.True(t, ok)
	assert.Equal(t, 2, target)
	_, ok = c.TakeScroll()
	assert.False(t, ok)

	c.Navigate(-10)
	idx, _ = c.Selected()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "opt0", input.active)
	assert.Equal(t, 2, frames)
}

func TestHoverDoesNotScroll(t *testing.T) {
	c, list, input := newCombo(t, "a", "b", "c")
	c.Hover(list.options[2])
	idx, _ := c.Selected()
	assert.Equal(t, 2, idx)
	assert.Equal(t, "opt2", input.active)
	_, scroll := c.TakeScroll()
	assert.False(t, scroll)

	c.Hover(&fakeOption{name: "stranger"})
	idx, _ = c.Selected()
	assert.Equal(t, 2, idx)
}

func TestStableIDsAreKept(t *testing.T) {
	c, list, input := newCombo(t, "a", "b")
	list.options[1].id = "tab-1-0"
	c.Select(1)
	assert.Equal(t, "tab-1-0", input.active)
	assert.Equal(t, "opt0", list.options[0].id)
}

func TestMutationClampsPreviousSelection(t *testing.T) {
	c, list, _ := newCombo(t, "a", "b", "c", "d")
	c.Select(3)
	list.set("x", "y")
	idx, opt := c.Selected()
	assert.Equal(t, 1, idx)
	assert.Same(t, list.options[1], opt)

	list.set()
	idx, opt = c.Selected()
	assert.Equal(t, -1, idx)
	assert.Nil(t, opt)
}

func TestInitialIndexAppliesToNextMutationOnly(t *testing.T) {
	c, list, _ := newCombo(t, "a")
	c.SetInitialIndex(2)
	list.set("a", "b", "c", "d")
	idx, _ := c.Selected()
	assert.Equal(t, 2, idx)

	c.Select(0)
	list.set("a", "b", "c", "d")
	idx, _ = c.Selected()
	assert.Equal(t, 0, idx)
}

func TestActivateClicksSelectedWithModifier(t *testing.T) {
	c, _, _ := newCombo(t, "a", "b")
	c.Navigate(1)
	cmd := c.Activate(true)
	require.NotNil(t, cmd)
	assert.Equal(t, clickMsg{name: "b", secondary: true}, cmd())
}

func TestOnChangeFires(t *testing.T) {
	list := &fakeList{}
	list.set("a", "b")
	var seen []int
	c := New(list, &fakeInput{}, Config{OnChange: func(i int, _ Option) { seen = append(seen, i) }})
	c.Navigate(1)
	c.Select(0)
	assert.Equal(t, []int{0, 1, 0}, seen)
}

func TestClampAndSingleSelectionUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c, list, _ := newCombo(t)
	for step := 0; step < 500; step++ {
		switch rng.Intn(4) {
		case 0:
			names := make([]string, rng.Intn(6))
			for i := range names {
				names[i] = string(rune('a' + i))
			}
			list.set(names...)
		case 1:
			c.Navigate(rng.Intn(7) - 3)
		case 2:
			c.Select(rng.Intn(20) - 10)
		case 3:
			if len(list.options) > 0 {
				c.Hover(list.options[rng.Intn(len(list.options))])
			}
		}
		idx, _ := c.Selected()
		n := len(list.options)
		if n == 0 {
			require.Equal(t, -1, idx, "step %d", step)
			continue
		}
		require.GreaterOrEqual(t, idx, 0, "step %d", step)
		require.Less(t, idx, n, "step %d", step)
		require.Equal(t, 1, selectedCount(list), "step %d", step)
		require.True(t, list.options[idx].selected, "step %d", step)
	}
}
