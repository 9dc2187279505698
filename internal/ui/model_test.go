package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tabfinder/internal/logging"
	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/ui/command"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type resolverFunc func(ctx context.Context, query string) (suggest.ViewModel, error)

func (f resolverFunc) Resolve(ctx context.Context, query string) (suggest.ViewModel, error) {
	return f(ctx, query)
}

// staticResolver answers every query with the same items, filtered by title.
func staticResolver(items ...suggest.Item) Resolver {
	return resolverFunc(func(_ context.Context, query string) (suggest.ViewModel, error) {
		kept := make([]suggest.Item, 0, len(items))
		for _, item := range items {
			if query == "" || strings.Contains(strings.ToLower(item.Title), strings.ToLower(query)) {
				kept = append(kept, item)
			}
		}
		return suggest.Assemble(query, kept), nil
	})
}

type switchCall struct{ window, index int }

type openCall struct {
	url        string
	background bool
}

type fakeActions struct {
	switched []switchCall
	opened   []openCall
	err      error
}

func (f *fakeActions) SwitchTo(_ context.Context, window, index int) error {
	f.switched = append(f.switched, switchCall{window, index})
	return f.err
}

func (f *fakeActions) Open(_ context.Context, url string, background bool) error {
	f.opened = append(f.opened, openCall{url, background})
	return f.err
}

type fakePrefs struct {
	dark  bool
	set   bool
	saved []bool
}

func (f *fakePrefs) DarkTheme() (bool, bool) { return f.dark, f.set }

func (f *fakePrefs) SetDarkTheme(dark bool) error {
	f.saved = append(f.saved, dark)
	f.dark, f.set = dark, true
	return nil
}

func tabItem(window, index int, title, url string) suggest.Item {
	return suggest.Item{
		ID:           fmt.Sprintf("tab-%d-%d", window, index),
		Title:        title,
		URL:          url,
		Kind:         suggest.KindTab,
		MatchesTitle: true,
		GroupKey:     fmt.Sprint(window),
		GroupLabel:   fmt.Sprintf("window %d", window),
		GroupColor:   window % 10,
		Window:       window,
		Index:        index,
	}
}

func bookmarkItem(title, url string) suggest.Item {
	return suggest.Item{ID: "bookmark-" + title, Title: title, URL: url, Kind: suggest.KindBookmark, GroupColor: suggest.NoColor}
}

func newTestModel(opts Options) *Model {
	if opts.FrameInterval == 0 {
		opts.FrameInterval = time.Millisecond
	}
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 12
	}
	return NewModel(opts)
}

func runMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	return cmd()
}

func TestLastIssuedQueryWins(t *testing.T) {
	m := newTestModel(Options{Resolver: staticResolver(bookmarkItem("git", "https://git-scm.com"), bookmarkItem("gist", "https://gist.github.com"))})

	first := m.issueQuery("gi")
	second := m.issueQuery("git")

	m.Update(runMsg(t, second))
	m.Update(runMsg(t, first))

	assert.Equal(t, "git", m.ViewModel().Query)
	assert.Len(t, m.ViewModel().Bookmarks, 1)
}

func TestStaleResultNeverReplacesNewer(t *testing.T) {
	m := newTestModel(Options{Resolver: staticResolver(bookmarkItem("git", "https://git-scm.com"))})

	stale := m.issueQuery("g")
	latest := m.issueQuery("gi")
	staleMsg := runMsg(t, stale)

	m.Update(runMsg(t, latest))
	before := m.ViewModel()
	m.Update(staleMsg)
	assert.Equal(t, before.Query, m.ViewModel().Query, "stale result replaced the view model")
}

func TestFailedResolutionKeepsViewModel(t *testing.T) {
	fail := false
	resolver := resolverFunc(func(_ context.Context, query string) (suggest.ViewModel, error) {
		if fail {
			return suggest.ViewModel{}, &suggest.SourceError{Kind: suggest.KindBookmark, Err: errors.New("database is locked")}
		}
		return suggest.Assemble(query, []suggest.Item{bookmarkItem("git", "https://git-scm.com")}), nil
	})
	m := newTestModel(Options{Resolver: resolver})

	m.Update(runMsg(t, m.issueQuery("git")))
	fail = true
	m.Update(runMsg(t, m.issueQuery("gitx")))

	assert.Equal(t, "git", m.ViewModel().Query, "previous view model should survive")
	assert.Contains(t, m.Err(), "database is locked")
	assert.Contains(t, m.View(), "Error:")
}

func TestInitialSelectionFollowsBestMatch(t *testing.T) {
	m := newTestModel(Options{Resolver: staticResolver(
		bookmarkItem("Gitter chat", "https://gitter.im"),
		bookmarkItem("git", "https://git-scm.com"),
	)})

	m.Update(runMsg(t, m.issueQuery("git")))

	index, option := m.combo.Selected()
	require.Equal(t, 1, index, "exact match should be selected")
	assert.Equal(t, option.ID(), m.activeID)
}

func TestBestMatchBelowViewportIsScrolledIntoView(t *testing.T) {
	items := make([]suggest.Item, 0, 21)
	for i := 0; i < 20; i++ {
		items = append(items, bookmarkItem(fmt.Sprintf("about git %02d", i), fmt.Sprintf("https://example.com/%02d", i)))
	}
	items = append(items, bookmarkItem("gitlab", "https://gitlab.com"))
	m := newTestModel(Options{Height: 10, Resolver: staticResolver(items...)})

	m.Update(runMsg(t, m.issueQuery("git")))

	index, _ := m.combo.Selected()
	require.Equal(t, 20, index, "prefix match should win")
	line := m.list.Rows()[index].Line()
	assert.True(t, m.viewport.Contains(line), "selected line %d outside viewport %+v", line, m.viewport)

	m.Update(frameMsg{})
	assert.Contains(t, m.View(), "gitlab")
}

func TestUnchangedQueryKeepsSelection(t *testing.T) {
	m := newTestModel(Options{Resolver: staticResolver(
		bookmarkItem("alpha", "https://a.example"),
		bookmarkItem("beta", "https://b.example"),
		bookmarkItem("gamma", "https://c.example"),
	)})
	m.Update(runMsg(t, m.issueQuery("")))
	m.combo.Navigate(2)

	m.Update(runMsg(t, m.issueQuery("")))

	index, _ := m.combo.Selected()
	assert.Equal(t, 2, index, "selection should survive a refresh")
}

func TestFrameRequestsCoalesce(t *testing.T) {
	m := newTestModel(Options{})
	// NewModel already asked for the startup frame
	m.requestFrame()
	m.requestFrame()

	require.NotNil(t, m.finishUpdate(nil), "expected a frame command")
	m.requestFrame()
	assert.Nil(t, m.finishUpdate(nil), "no second frame while one is in flight")
	m.Update(frameMsg{})
	assert.True(t, m.frameInFlight, "the merged request should schedule the next frame")
}

func TestActionErrorIsShown(t *testing.T) {
	m := newTestModel(Options{})
	m.Update(command.Result{ID: "x", Label: "open", Err: errors.New("xdg-open: not found")})

	assert.Equal(t, "xdg-open: not found", m.Err())
}

func TestLayoutReservesPromptStatusAndFooter(t *testing.T) {
	m := newTestModel(Options{Height: 12})
	assert.Equal(t, 10, m.viewport.Height)

	m = newTestModel(Options{Height: 12, ShowFooter: true})
	assert.Equal(t, 8, m.viewport.Height)
	assert.Len(t, strings.Split(m.View(), "\n"), 12)
}
