package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFileChanges(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "places.sqlite")
	other := filepath.Join(dir, "other.txt")

	w, err := NewWatcher([]string{watched}, 0)
	require.NoError(t, err)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("x"), 0o644))

	select {
	case evt := <-w.Events():
		require.NoError(t, evt.Err)
		assert.Equal(t, watched, filepath.Clean(evt.Path))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "missing", "file")}, 0)
	require.NoError(t, err)
	w.Stop()
	w.Wait()
	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "expected closed channel")
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}
