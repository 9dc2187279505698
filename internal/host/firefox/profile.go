// Package firefox reads browser state out of a Firefox profile directory:
// open tabs from the session store, bookmarks from places.sqlite, and remote
// devices from a synced-devices snapshot.
package firefox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoProfile is returned when no profile directory can be located.
var ErrNoProfile = errors.New("firefox profile not found")

const (
	recoveryFile = "sessionstore-backups/recovery.jsonlz4"
	sessionFile  = "sessionstore.jsonlz4"
	placesFile   = "places.sqlite"
)

// Profile locates the files of one Firefox profile.
type Profile struct {
	Dir         string
	DevicesFile string
}

// FindProfile resolves dir, or when dir is empty, the first
// *.default-release profile under home.
func FindProfile(dir, home string) (Profile, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: %v", ErrNoProfile, err)
		}
		if !info.IsDir() {
			return Profile{}, fmt.Errorf("%w: %s is not a directory", ErrNoProfile, dir)
		}
		return Profile{Dir: dir}, nil
	}
	if home == "" {
		return Profile{}, ErrNoProfile
	}
	for _, pattern := range []string{"*.default-release", "*.default"} {
		matches, _ := filepath.Glob(filepath.Join(home, ".mozilla", "firefox", pattern))
		sort.Strings(matches)
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				return Profile{Dir: match}, nil
			}
		}
	}
	return Profile{}, ErrNoProfile
}

// SessionPath returns the session store to read, preferring the live
// recovery file.
func (p Profile) SessionPath() string {
	recovery := filepath.Join(p.Dir, recoveryFile)
	if _, err := os.Stat(recovery); err == nil {
		return recovery
	}
	return filepath.Join(p.Dir, sessionFile)
}

// PlacesPath returns the bookmarks database path.
func (p Profile) PlacesPath() string {
	return filepath.Join(p.Dir, placesFile)
}

// WatchPaths lists the files whose changes invalidate displayed results.
func (p Profile) WatchPaths() []string {
	paths := []string{
		filepath.Join(p.Dir, recoveryFile),
		filepath.Join(p.Dir, sessionFile),
		p.PlacesPath(),
		p.PlacesPath() + "-wal",
	}
	if p.DevicesFile != "" {
		paths = append(paths, p.DevicesFile)
	}
	return paths
}
