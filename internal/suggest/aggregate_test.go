package suggest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(kind Kind, items ...Item) Source {
	return SourceFunc{SourceKind: kind, Fn: func(context.Context, string) ([]Item, error) {
		return items, nil
	}}
}

func tab(window, index int, title, url string) Item {
	return Item{
		ID:         fmt.Sprintf("tab:%d:%d", window, index),
		Title:      title,
		URL:        url,
		Kind:       KindTab,
		GroupKey:   fmt.Sprint(window),
		GroupColor: window % 10,
		Window:     window,
		Index:      index,
	}
}

func bookmark(title, url string) Item {
	return Item{ID: "bookmark:" + url, Title: title, URL: url, Kind: KindBookmark, GroupColor: NoColor}
}

func TestResolveEndToEndGitScenario(t *testing.T) {
	agg := NewAggregator(
		staticSource(KindTab, tab(7, 0, "GitHub", "https://github.com")),
		staticSource(KindBookmark, bookmark("Git Docs", "https://github.com"), bookmark("Git Book", "https://git-scm.com/book")),
		staticSource(KindSession),
		staticSource(KindPage),
	)

	vm, err := agg.Resolve(context.Background(), "git")
	require.NoError(t, err)

	assert.Equal(t, "git", vm.Query)
	require.Len(t, vm.Bookmarks, 1)
	assert.Equal(t, "Git Book", vm.Bookmarks[0].Title)

	items, ok := vm.Tabs.Get("7")
	require.True(t, ok, "expected tab group for window 7")
	require.Len(t, items, 1)
	assert.Equal(t, "GitHub", items[0].Title)
}

func TestAssembleNeverKeepsBookmarkOfOpenTab(t *testing.T) {
	tabs := []Item{
		tab(1, 0, "a", "https://a.example"),
		tab(2, 0, "b", "https://b.example"),
	}
	bookmarks := []Item{
		bookmark("a", "https://a.example"),
		bookmark("c", "https://c.example"),
		bookmark("b", "https://b.example"),
		bookmark("a again", "https://a.example"),
	}
	vm := Assemble("", tabs, bookmarks)

	open := map[string]bool{}
	for _, item := range vm.Tabs.Flatten() {
		open[item.URL] = true
	}
	for _, b := range vm.Bookmarks {
		assert.False(t, open[b.URL], "bookmark %q duplicates an open tab", b.URL)
	}
	require.Len(t, vm.Bookmarks, 1)
	assert.Equal(t, "https://c.example", vm.Bookmarks[0].URL)
}

func TestGroupingKeepsFirstSeenOrder(t *testing.T) {
	item0 := tab(3, 0, "zero", "https://0.example")
	item1 := tab(1, 0, "one", "https://1.example")
	item2 := tab(3, 1, "two", "https://2.example")

	vm := Assemble("", []Item{item0, item1, item2})

	assert.Equal(t, []string{"3", "1"}, vm.Tabs.Keys())
	window3, ok := vm.Tabs.Get("3")
	require.True(t, ok)
	assert.Equal(t, []Item{item0, item2}, window3)
	assert.Equal(t, 3, vm.Tabs[0].Color)
	assert.Equal(t, 3, vm.Len())
}

func TestResolveFailsWholeQueryOnSourceError(t *testing.T) {
	cause := errors.New("profile locked")
	agg := NewAggregator(
		staticSource(KindTab, tab(1, 0, "a", "https://a.example")),
		SourceFunc{SourceKind: KindBookmark, Fn: func(context.Context, string) ([]Item, error) {
			return nil, cause
		}},
	)

	vm, err := agg.Resolve(context.Background(), "a")
	require.Error(t, err)
	assert.Zero(t, vm.Len(), "no partial results on failure")

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, KindBookmark, srcErr.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bookmarks: profile locked", err.Error())
}

func TestResolveRunsSourcesConcurrently(t *testing.T) {
	startedA := make(chan struct{})
	startedB := make(chan struct{})
	wait := func(self, other chan struct{}) func(context.Context, string) ([]Item, error) {
		return func(context.Context, string) ([]Item, error) {
			close(self)
			select {
			case <-other:
				return nil, nil
			case <-time.After(2 * time.Second):
				return nil, errors.New("sources were not run concurrently")
			}
		}
	}
	agg := NewAggregator(
		SourceFunc{SourceKind: KindTab, Fn: wait(startedA, startedB)},
		SourceFunc{SourceKind: KindBookmark, Fn: wait(startedB, startedA)},
	)
	_, err := agg.Resolve(context.Background(), "")
	require.NoError(t, err)
}

func TestResolvePassesQueryToEverySource(t *testing.T) {
	seen := make(chan string, 2)
	record := SourceFunc{SourceKind: KindPage, Fn: func(_ context.Context, q string) ([]Item, error) {
		seen <- q
		return nil, nil
	}}
	agg := NewAggregator(record, nil, record)
	_, err := agg.Resolve(context.Background(), "hist")
	require.NoError(t, err)
	assert.Equal(t, "hist", <-seen)
	assert.Equal(t, "hist", <-seen)
}

func TestSessionsGroupedByDevice(t *testing.T) {
	s := func(device, i int) Item {
		return Item{ID: fmt.Sprintf("session:%d:%d", device, i), Kind: KindSession, GroupKey: fmt.Sprint(device), GroupColor: device}
	}
	vm := Assemble("", []Item{s(0, 0), s(1, 0), s(0, 1)})
	assert.Equal(t, []string{"0", "1"}, vm.Sessions.Keys())
	assert.Equal(t, 3, vm.Sessions.Len())
}
