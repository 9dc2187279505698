package source

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/match"
	"github.com/atomicstack/tabfinder/internal/suggest"
)

// DefaultExcludedURLs are the new-tab pages the launcher itself replaces.
var DefaultExcludedURLs = []string{"about:newtab", "about:home", "chrome://newtab/"}

// Tabs matches open tabs by title or URL and performs tab actions.
type Tabs struct {
	browser  host.Browser
	launcher host.Launcher
	exclude  map[string]struct{}
}

var _ suggest.Source = (*Tabs)(nil)

// NewTabs builds the tab adapter. A nil exclude list uses DefaultExcludedURLs.
func NewTabs(browser host.Browser, launcher host.Launcher, exclude []string) *Tabs {
	if exclude == nil {
		exclude = DefaultExcludedURLs
	}
	set := make(map[string]struct{}, len(exclude))
	for _, u := range exclude {
		set[u] = struct{}{}
	}
	return &Tabs{browser: browser, launcher: launcher, exclude: set}
}

func (t *Tabs) Kind() suggest.Kind { return suggest.KindTab }

// Matches returns every open tab whose title or URL contains all query words.
func (t *Tabs) Matches(ctx context.Context, query string) ([]suggest.Item, error) {
	tabs, err := t.browser.Tabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tabs: %w", err)
	}
	parts := match.Split(query)
	items := make([]suggest.Item, 0, len(tabs))
	for _, tab := range tabs {
		if _, skip := t.exclude[tab.URL]; skip {
			continue
		}
		item, ok := matchTab(tab, parts)
		if !ok {
			continue
		}
		item.ID = fmt.Sprintf("tab-%d-%d", tab.Window, tab.Index)
		item.Kind = suggest.KindTab
		item.GroupKey = strconv.Itoa(tab.Window)
		item.GroupLabel = fmt.Sprintf("window %d", tab.Window)
		item.GroupColor = tab.Window % 10
		items = append(items, item)
	}
	return items, nil
}

// SwitchTo focuses the tab at index in window.
func (t *Tabs) SwitchTo(ctx context.Context, window, index int) error {
	return t.launcher.SwitchTo(ctx, window, index)
}

// Open opens url in a new tab.
func (t *Tabs) Open(ctx context.Context, url string, background bool) error {
	return t.launcher.Open(ctx, url, background)
}

func matchTab(tab host.Tab, parts []string) (suggest.Item, bool) {
	item := suggest.Item{
		Title:        tab.Title,
		URL:          tab.URL,
		MatchesTitle: match.Matches(tab.Title, parts),
		MatchesURL:   match.Matches(tab.URL, parts),
		Window:       tab.Window,
		Index:        tab.Index,
	}
	return item, item.MatchesTitle || item.MatchesURL
}
