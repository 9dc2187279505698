package source

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/match"
	"github.com/atomicstack/tabfinder/internal/suggest"
)

// Sessions matches tabs open on synced remote devices. Items are keyed by
// device position so the aggregator groups them per device.
type Sessions struct {
	browser host.Browser
}

var _ suggest.Source = (*Sessions)(nil)

func NewSessions(browser host.Browser) *Sessions {
	return &Sessions{browser: browser}
}

func (s *Sessions) Kind() suggest.Kind { return suggest.KindSession }

func (s *Sessions) Matches(ctx context.Context, query string) ([]suggest.Item, error) {
	devices, err := s.browser.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	parts := match.Split(query)
	var items []suggest.Item
	for d, device := range devices {
		for w, session := range device.Sessions {
			for i, tab := range session.Tabs {
				item, ok := matchTab(tab, parts)
				if !ok {
					continue
				}
				item.ID = fmt.Sprintf("session-%d-%d-%d", d, w, i)
				item.Kind = suggest.KindSession
				item.GroupKey = strconv.Itoa(d)
				item.GroupLabel = device.Name
				item.GroupColor = d % 10
				items = append(items, item)
			}
		}
	}
	return items, nil
}
