package source

import (
	"context"
	"fmt"

	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/match"
	"github.com/atomicstack/tabfinder/internal/suggest"
)

// Bookmarks delegates the search to the browser and drops folders.
type Bookmarks struct {
	browser host.Browser
}

var _ suggest.Source = (*Bookmarks)(nil)

func NewBookmarks(browser host.Browser) *Bookmarks {
	return &Bookmarks{browser: browser}
}

func (b *Bookmarks) Kind() suggest.Kind { return suggest.KindBookmark }

func (b *Bookmarks) Matches(ctx context.Context, query string) ([]suggest.Item, error) {
	found, err := b.browser.SearchBookmarks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search bookmarks: %w", err)
	}
	parts := match.Split(query)
	items := make([]suggest.Item, 0, len(found))
	for _, bookmark := range found {
		if bookmark.URL == "" {
			continue
		}
		items = append(items, suggest.Item{
			ID:           "bookmark-" + bookmark.ID,
			Title:        bookmark.Title,
			URL:          bookmark.URL,
			MatchesTitle: match.Matches(bookmark.Title, parts),
			MatchesURL:   match.Matches(bookmark.URL, parts),
			GroupColor:   suggest.NoColor,
			Kind:         suggest.KindBookmark,
		})
	}
	return items, nil
}
