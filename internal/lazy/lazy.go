// Package lazy defers the expensive part of row construction until the row is
// inside the viewport, and batches pending work into one pass per frame.
package lazy

import "github.com/atomicstack/tabfinder/internal/logging/events"

// Target is a row whose body can be realized later. Bounds reports the
// half-open line range [top, bottom) the row occupies in the list.
type Target interface {
	Bounds() (top, bottom int)
	Fill(content string)
}

// Thunk builds a row body. The scheduler invokes it at most once.
type Thunk func() string

// Observer is told which targets wait for visibility.
type Observer interface {
	Observe(Target)
	Unobserve(Target)
}

type entry struct {
	target Target
	thunk  Thunk
}

// Scheduler owns the pending queue and the visibility watch table. It is not
// safe for concurrent use; the update loop drives it.
type Scheduler struct {
	requestFrame   func()
	viewportBottom func() int
	observer       Observer

	framePending bool
	queue        []entry

	// pass-scoped side tables keyed by row identity
	queued   map[Target]struct{}
	watch    map[Target]Thunk
	realized map[Target]struct{}
}

// NewScheduler builds a scheduler. requestFrame must arrange for Frame to be
// called once on the next frame. viewportBottom returns the first line below
// the visible window.
func NewScheduler(requestFrame func(), viewportBottom func() int, observer Observer) *Scheduler {
	s := &Scheduler{
		requestFrame:   requestFrame,
		viewportBottom: viewportBottom,
		observer:       observer,
	}
	s.reset()
	return s
}

// BeginPass abandons everything scheduled for the previous set of rows.
// Watched targets are unregistered from the observer.
func (s *Scheduler) BeginPass() {
	for target := range s.watch {
		s.observer.Unobserve(target)
	}
	s.queue = nil
	s.reset()
}

func (s *Scheduler) reset() {
	s.queued = make(map[Target]struct{})
	s.watch = make(map[Target]Thunk)
	s.realized = make(map[Target]struct{})
}

// Schedule registers a deferred body for target. Only the first Schedule of
// a target in a pass counts. A frame is requested when none is pending.
func (s *Scheduler) Schedule(target Target, thunk Thunk) {
	if _, ok := s.queued[target]; ok {
		return
	}
	s.queued[target] = struct{}{}
	s.queue = append(s.queue, entry{target: target, thunk: thunk})
	if !s.framePending {
		s.framePending = true
		s.requestFrame()
	}
}

// Frame drains the queue. Targets ending at or above the viewport bottom are
// realized now; the rest are handed to the observer.
func (s *Scheduler) Frame() {
	s.framePending = false
	drained := s.queue
	s.queue = nil
	if len(drained) == 0 {
		return
	}
	bottom := s.viewportBottom()
	realized, deferred := 0, 0
	for _, e := range drained {
		if _, done := s.realized[e.target]; done {
			continue
		}
		if _, end := e.target.Bounds(); end <= bottom {
			s.realize(e.target, e.thunk)
			realized++
			continue
		}
		s.watch[e.target] = e.thunk
		s.observer.Observe(e.target)
		deferred++
	}
	events.Lazy.Frame(len(drained), realized, deferred)
}

// Visible handles an observer notification. It reports whether target was
// realized; targets from an abandoned pass are ignored.
func (s *Scheduler) Visible(target Target) bool {
	thunk, ok := s.watch[target]
	if !ok {
		return false
	}
	delete(s.watch, target)
	s.observer.Unobserve(target)
	s.realize(target, thunk)
	return true
}

// Pending reports whether a frame has been requested and not yet run.
func (s *Scheduler) Pending() bool {
	return s.framePending
}

// Queued returns the number of entries awaiting the next frame.
func (s *Scheduler) Queued() int {
	return len(s.queue)
}

// Watching returns the number of targets waiting for visibility.
func (s *Scheduler) Watching() int {
	return len(s.watch)
}

// Realized reports whether target's body has been built in this pass.
func (s *Scheduler) Realized(target Target) bool {
	_, ok := s.realized[target]
	return ok
}

func (s *Scheduler) realize(target Target, thunk Thunk) {
	s.realized[target] = struct{}{}
	target.Fill(thunk())
}
