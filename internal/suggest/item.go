// Package suggest holds the suggestion data model and the aggregator that fans
// a query out to every source and folds the answers into one view model.
package suggest

import "context"

// Kind identifies the source an item came from.
type Kind int

const (
	KindTab Kind = iota
	KindBookmark
	KindSession
	KindPage
	KindSetting
)

func (k Kind) String() string {
	switch k {
	case KindTab:
		return "tabs"
	case KindBookmark:
		return "bookmarks"
	case KindSession:
		return "sessions"
	case KindPage:
		return "pages"
	case KindSetting:
		return "settings"
	default:
		return "unknown"
	}
}

// NoColor marks an item without a group colour.
const NoColor = -1

// Setting is the payload of a settings row.
type Setting struct {
	Name  string
	Value string
}

// Item is one matched candidate.
type Item struct {
	ID           string
	Title        string
	URL          string
	MatchesTitle bool
	MatchesURL   bool
	GroupKey     string
	GroupLabel   string
	GroupColor   int
	Kind         Kind

	// Window and Index locate an open tab so it can be switched to.
	Window int
	Index  int

	Setting Setting
}

// Source produces the items matching a query. Implementations may block on
// I/O and may fail; the aggregator treats every source independently.
type Source interface {
	Kind() Kind
	Matches(ctx context.Context, query string) ([]Item, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc struct {
	SourceKind Kind
	Fn         func(ctx context.Context, query string) ([]Item, error)
}

func (s SourceFunc) Kind() Kind { return s.SourceKind }

func (s SourceFunc) Matches(ctx context.Context, query string) ([]Item, error) {
	return s.Fn(ctx, query)
}
