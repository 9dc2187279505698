package lazy

import "github.com/atomicstack/tabfinder/internal/logging/events"

// ViewportObserver tracks watched targets against a scroll window of lines.
type ViewportObserver struct {
	top, bottom int
	watched     []Target
}

var _ Observer = (*ViewportObserver)(nil)

func NewViewportObserver() *ViewportObserver {
	return &ViewportObserver{}
}

func (o *ViewportObserver) Observe(target Target) {
	for _, t := range o.watched {
		if t == target {
			return
		}
	}
	o.watched = append(o.watched, target)
}

func (o *ViewportObserver) Unobserve(target Target) {
	for i, t := range o.watched {
		if t == target {
			o.watched = append(o.watched[:i], o.watched[i+1:]...)
			return
		}
	}
}

// SetViewport records the visible line window [top, bottom) and returns the
// watched targets that intersect it.
func (o *ViewportObserver) SetViewport(top, bottom int) []Target {
	o.top, o.bottom = top, bottom
	return o.Intersecting()
}

// Intersecting returns watched targets overlapping the current viewport, in
// registration order.
func (o *ViewportObserver) Intersecting() []Target {
	var visible []Target
	for _, t := range o.watched {
		top, bottom := t.Bounds()
		if top < o.bottom && bottom > o.top {
			visible = append(visible, t)
		}
	}
	if len(visible) > 0 {
		events.Lazy.Visible(len(visible))
	}
	return visible
}

// Len returns the number of watched targets.
func (o *ViewportObserver) Len() int {
	return len(o.watched)
}

// Deliver notifies s of every watched target currently in view and returns
// how many were realized.
func (o *ViewportObserver) Deliver(s *Scheduler) int {
	n := 0
	for _, t := range o.Intersecting() {
		if s.Visible(t) {
			n++
		}
	}
	return n
}
