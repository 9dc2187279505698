// Package host describes the browser the launcher talks to: where open tabs,
// bookmarks and remote sessions come from, and how a chosen row is acted on.
package host

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by launchers that cannot perform an action.
var ErrUnsupported = errors.New("operation not supported by host")

// Tab is an open tab. Window identifies the containing window, Index is the
// tab's position inside it.
type Tab struct {
	Window int
	Index  int
	Title  string
	URL    string
	Active bool
}

// Bookmark is a bookmark node. Folders carry no URL.
type Bookmark struct {
	ID    string
	Title string
	URL   string
}

// Session is one window's worth of tabs on a remote device.
type Session struct {
	Tabs []Tab
}

// Device is a synced remote device.
type Device struct {
	Name     string
	Sessions []Session
}

// Browser enumerates browser state.
type Browser interface {
	Tabs(ctx context.Context) ([]Tab, error)
	SearchBookmarks(ctx context.Context, query string) ([]Bookmark, error)
	Devices(ctx context.Context) ([]Device, error)
}

// Launcher performs the side effects of activating a row.
type Launcher interface {
	SwitchTo(ctx context.Context, window, index int) error
	Open(ctx context.Context, url string, background bool) error
}
