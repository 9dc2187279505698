package testutil

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/host/firefox"
)

// Profile describes the browser state written by WriteProfile.
type Profile struct {
	// Windows become the session store; each tab's title and URL form its
	// only history entry.
	Windows   [][]host.Tab
	Bookmarks []host.Bookmark
	Devices   []host.Device
}

type sessionEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type sessionTab struct {
	Index   int            `json:"index"`
	Entries []sessionEntry `json:"entries"`
}

type sessionWindow struct {
	Selected int          `json:"selected"`
	Tabs     []sessionTab `json:"tabs"`
}

// WriteProfile creates a profile directory under t.TempDir and returns it
// together with the devices snapshot path, which is empty when p has no
// devices.
func WriteProfile(t testing.TB, p Profile) (dir, devices string) {
	t.Helper()
	dir = t.TempDir()
	writeSessionStore(t, filepath.Join(dir, "sessionstore-backups", "recovery.jsonlz4"), p.Windows)
	writePlaces(t, filepath.Join(dir, "places.sqlite"), p.Bookmarks)
	if len(p.Devices) > 0 {
		devices = filepath.Join(dir, "devices.yaml")
		writeDevices(t, devices, p.Devices)
	}
	return dir, devices
}

func writeSessionStore(t testing.TB, path string, windows [][]host.Tab) {
	t.Helper()
	doc := struct {
		Windows []sessionWindow `json:"windows"`
	}{}
	for _, tabs := range windows {
		win := sessionWindow{Selected: 1}
		for i, tab := range tabs {
			if tab.Active {
				win.Selected = i + 1
			}
			win.Tabs = append(win.Tabs, sessionTab{Index: 1, Entries: []sessionEntry{{URL: tab.URL, Title: tab.Title}}})
		}
		doc.Windows = append(doc.Windows, win)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encode session: %v", err)
	}
	framed, err := firefox.EncodeMozLz4(data)
	if err != nil {
		t.Fatalf("frame session: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create session dir: %v", err)
	}
	if err := os.WriteFile(path, framed, 0o644); err != nil {
		t.Fatalf("write session: %v", err)
	}
}

func writePlaces(t testing.TB, path string, bookmarks []host.Bookmark) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open places: %v", err)
	}
	defer db.Close()
	for _, stmt := range []string{
		`CREATE TABLE moz_places (id INTEGER PRIMARY KEY, url TEXT)`,
		`CREATE TABLE moz_bookmarks (id INTEGER PRIMARY KEY, type INTEGER, fk INTEGER, title TEXT, guid TEXT)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create places schema: %v", err)
		}
	}
	for i, bookmark := range bookmarks {
		id := i + 1
		if _, err := db.Exec(`INSERT INTO moz_places (id, url) VALUES (?, ?)`, id, bookmark.URL); err != nil {
			t.Fatalf("insert place: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO moz_bookmarks (id, type, fk, title, guid) VALUES (?, 1, ?, ?, ?)`, id, id, bookmark.Title, bookmark.ID); err != nil {
			t.Fatalf("insert bookmark: %v", err)
		}
	}
}

func writeDevices(t testing.TB, path string, devices []host.Device) {
	t.Helper()
	type tab struct {
		Title string `yaml:"title"`
		URL   string `yaml:"url"`
	}
	type session struct {
		Tabs []tab `yaml:"tabs"`
	}
	type device struct {
		Name     string    `yaml:"name"`
		Sessions []session `yaml:"sessions"`
	}
	doc := struct {
		Devices []device `yaml:"devices"`
	}{}
	for _, d := range devices {
		out := device{Name: d.Name}
		for _, s := range d.Sessions {
			var tabs []tab
			for _, st := range s.Tabs {
				tabs = append(tabs, tab{Title: st.Title, URL: st.URL})
			}
			out.Sessions = append(out.Sessions, session{Tabs: tabs})
		}
		doc.Devices = append(doc.Devices, out)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("encode devices: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write devices: %v", err)
	}
}
