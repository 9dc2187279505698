package suggest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Aggregator resolves queries against a fixed set of sources.
type Aggregator struct {
	sources []Source
}

// NewAggregator builds an aggregator over the supplied sources. Nil sources
// are skipped.
func NewAggregator(sources ...Source) *Aggregator {
	kept := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			kept = append(kept, src)
		}
	}
	return &Aggregator{sources: kept}
}

// Resolve queries every source concurrently and waits for all of them. If any
// source fails the resolution fails with a *SourceError and no partial view
// model is returned. Sources are not cancelled or timed out.
func (a *Aggregator) Resolve(ctx context.Context, query string) (ViewModel, error) {
	results := make([][]Item, len(a.sources))
	var g errgroup.Group
	for i, src := range a.sources {
		g.Go(func() error {
			items, err := src.Matches(ctx, query)
			if err != nil {
				return &SourceError{Kind: src.Kind(), Err: err}
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ViewModel{}, err
	}
	return Assemble(query, results...), nil
}

// Assemble folds raw source results into a view model: bookmarks that point
// at an open tab are dropped, tabs and sessions are grouped by key.
func Assemble(query string, results ...[]Item) ViewModel {
	var tabs, bookmarks, sessions, pages, settings []Item
	for _, batch := range results {
		for _, item := range batch {
			switch item.Kind {
			case KindTab:
				tabs = append(tabs, item)
			case KindBookmark:
				bookmarks = append(bookmarks, item)
			case KindSession:
				sessions = append(sessions, item)
			case KindPage:
				pages = append(pages, item)
			case KindSetting:
				settings = append(settings, item)
			}
		}
	}
	return ViewModel{
		Tabs:      GroupBy(tabs, groupKey),
		Sessions:  GroupBy(sessions, groupKey),
		Bookmarks: DropOpenTabs(bookmarks, tabs),
		Pages:     pages,
		Settings:  settings,
		Query:     query,
	}
}

// DropOpenTabs removes bookmarks whose URL is already open as a tab.
func DropOpenTabs(bookmarks, tabs []Item) []Item {
	if len(bookmarks) == 0 {
		return nil
	}
	open := make(map[string]struct{}, len(tabs))
	for _, tab := range tabs {
		open[tab.URL] = struct{}{}
	}
	kept := make([]Item, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		if _, ok := open[bookmark.URL]; ok {
			continue
		}
		kept = append(kept, bookmark)
	}
	return kept
}

func groupKey(item Item) string {
	return item.GroupKey
}
