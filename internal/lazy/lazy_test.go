package lazy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	top, bottom int
	content     string
	fills       int
}

func (r *row) Bounds() (int, int) { return r.top, r.bottom }
func (r *row) Fill(content string) { r.content = content; r.fills++ }

type harness struct {
	frames   int
	bottom   int
	observer *ViewportObserver
	sched    *Scheduler
}

func newHarness(bottom int) *harness {
	h := &harness{bottom: bottom, observer: NewViewportObserver()}
	h.sched = NewScheduler(func() { h.frames++ }, func() int { return h.bottom }, h.observer)
	return h
}

func thunk(s string, calls *int) Thunk {
	return func() string {
		*calls++
		return s
	}
}

func TestScheduleCoalescesIntoOneFrame(t *testing.T) {
	h := newHarness(10)
	var calls int
	for i := 0; i < 5; i++ {
		h.sched.Schedule(&row{top: i, bottom: i + 1}, thunk("x", &calls))
	}
	assert.Equal(t, 1, h.frames)
	assert.Equal(t, 5, h.sched.Queued())
	assert.Zero(t, calls)

	h.sched.Frame()
	assert.Zero(t, h.sched.Queued())
	assert.Equal(t, 5, calls)

	h.sched.Schedule(&row{top: 6, bottom: 7}, thunk("y", &calls))
	assert.Equal(t, 2, h.frames)
}

func TestFrameRealizesRowsAboveViewportBottom(t *testing.T) {
	h := newHarness(4)
	above := &row{top: 0, bottom: 1}
	edge := &row{top: 3, bottom: 4}
	below := &row{top: 4, bottom: 5}
	straddle := &row{top: 3, bottom: 5}
	var calls int
	for _, r := range []*row{above, edge, below, straddle} {
		h.sched.Schedule(r, thunk("body", &calls))
	}
	h.sched.Frame()

	assert.Equal(t, "body", above.content)
	assert.Equal(t, "body", edge.content)
	assert.Empty(t, below.content)
	assert.Empty(t, straddle.content)
	assert.Equal(t, 2, h.sched.Watching())
	assert.Equal(t, 2, h.observer.Len())
}

func TestDeferredRowRealizedOnlyAfterVisibility(t *testing.T) {
	h := newHarness(2)
	below := &row{top: 5, bottom: 6}
	var calls int
	h.sched.Schedule(below, thunk("late", &calls))
	h.sched.Frame()
	require.Zero(t, calls)

	// scrolling to a window that still misses the row realizes nothing
	assert.Empty(t, h.observer.SetViewport(1, 3))
	assert.Zero(t, h.observer.Deliver(h.sched))

	visible := h.observer.SetViewport(4, 6)
	require.Len(t, visible, 1)
	assert.Equal(t, 1, h.observer.Deliver(h.sched))
	assert.Equal(t, "late", below.content)
	assert.Zero(t, h.observer.Len())
	assert.Zero(t, h.sched.Watching())

	// a second notification does not realize again
	assert.False(t, h.sched.Visible(below))
	assert.Equal(t, 1, below.fills)
	assert.Equal(t, 1, calls)
}

func TestTargetScheduledTwiceInOnePassRealizedOnce(t *testing.T) {
	h := newHarness(10)
	r := &row{top: 0, bottom: 1}
	var calls int
	h.sched.Schedule(r, thunk("a", &calls))
	h.sched.Schedule(r, thunk("b", &calls))
	h.sched.Frame()
	h.sched.Schedule(r, thunk("c", &calls))
	h.sched.Frame()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a", r.content)
	assert.True(t, h.sched.Realized(r))
}

func TestBeginPassAbandonsOldTargets(t *testing.T) {
	h := newHarness(1)
	old := &row{top: 3, bottom: 4}
	queued := &row{top: 0, bottom: 1}
	var calls int
	h.sched.Schedule(old, thunk("old", &calls))
	h.sched.Frame()
	require.Equal(t, 1, h.sched.Watching())
	h.sched.Schedule(queued, thunk("queued", &calls))

	h.sched.BeginPass()
	assert.Zero(t, h.sched.Watching())
	assert.Zero(t, h.sched.Queued())
	assert.Zero(t, h.observer.Len())
	assert.False(t, h.sched.Visible(old))

	// the pending frame still covers new work
	fresh := &row{top: 0, bottom: 1}
	h.sched.Schedule(fresh, thunk("fresh", &calls))
	assert.Equal(t, 2, h.frames)
	h.sched.Frame()
	assert.Equal(t, "fresh", fresh.content)
	assert.Empty(t, queued.content)
	assert.Equal(t, 1, calls)
}

func TestFrameWithEmptyQueueIsNoop(t *testing.T) {
	h := newHarness(1)
	h.sched.Frame()
	assert.False(t, h.sched.Pending())
	assert.Zero(t, h.frames)
}
