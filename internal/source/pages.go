package source

import (
	"context"
	"fmt"

	"github.com/atomicstack/tabfinder/internal/match"
	"github.com/atomicstack/tabfinder/internal/suggest"
)

// Page is an internal browser page reachable by name.
type Page struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// DefaultPages is the built-in page table.
var DefaultPages = []Page{
	{Text: "history", URL: "about:firefoxview#history"},
	{Text: "bookmarks", URL: "chrome://browser/content/places/places.xhtml"},
	{Text: "settings", URL: "about:preferences"},
	{Text: "extensions", URL: "about:addons"},
	{Text: "inspect", URL: "about:debugging"},
}

// Pages matches a fixed table of pages by name. The table is copied at
// construction and never changes afterwards.
type Pages struct {
	pages []Page
}

var _ suggest.Source = (*Pages)(nil)

// NewPages builds the page adapter. A nil table uses DefaultPages.
func NewPages(pages []Page) *Pages {
	if pages == nil {
		pages = DefaultPages
	}
	return &Pages{pages: append([]Page(nil), pages...)}
}

func (p *Pages) Kind() suggest.Kind { return suggest.KindPage }

// Matches returns nothing for an empty query.
func (p *Pages) Matches(_ context.Context, query string) ([]suggest.Item, error) {
	parts := match.Split(query)
	if len(parts) == 0 {
		return nil, nil
	}
	var items []suggest.Item
	for i, page := range p.pages {
		if !match.Matches(page.Text, parts) {
			continue
		}
		items = append(items, suggest.Item{
			ID:           fmt.Sprintf("page-%d", i),
			Title:        page.Text,
			URL:          page.URL,
			MatchesTitle: true,
			GroupColor:   suggest.NoColor,
			Kind:         suggest.KindPage,
		})
	}
	return items, nil
}
