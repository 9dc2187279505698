package backend

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/tabfinder/internal/logging/events"
)

// Event reports that a watched profile file changed, or that watching failed.
type Event struct {
	Path string
	Op   string
	Err  error
}

// Watcher publishes an event whenever one of the watched files is written,
// created, renamed or removed. Events are paced by a throttle so a burst of
// writes from the browser produces few refreshes.
type Watcher struct {
	files    map[string]struct{}
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches paths. Their parent directories are watched so files
// replaced by rename are still seen. Directories that do not exist are
// skipped.
func NewWatcher(paths []string, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		fs:       fsw,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.files[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}
	for dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			events.Backend.Error(err)
		}
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		_ = w.fs.Close()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if evt.Op&interesting == 0 {
				continue
			}
			if _, watched := w.files[filepath.Clean(evt.Name)]; !watched {
				continue
			}
			events.Backend.Change(evt.Name, evt.Op.String())
			w.throttle.wait()
			if !w.emit(Event{Path: evt.Name, Op: evt.Op.String()}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Backend.Error(err)
			if !w.emit(Event{Err: err}) {
				return
			}
		}
	}
}

// emit delivers evt unless the buffer is full; a pending event already
// triggers a refresh.
func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
	default:
	}
	return true
}
