package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/match"
)

const bookmarksQuery = `SELECT b.guid, COALESCE(b.title, ''), COALESCE(p.url, '')
FROM moz_bookmarks b
LEFT JOIN moz_places p ON p.id = b.fk
WHERE b.type = 1
ORDER BY b.id`

// openPlaces opens places.sqlite read-only. The immutable flag lets the
// database be read while the browser holds its lock.
func openPlaces(path string) (*sql.DB, error) {
	dsn := (&url.URL{
		Scheme:   "file",
		Path:     path,
		RawQuery: "mode=ro&immutable=1",
	}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open places database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// SearchBookmarks returns bookmarks where every query word appears in the
// title or URL. An empty query returns every bookmark. Words are matched in
// Go rather than with LIKE, which only folds ASCII.
func SearchBookmarks(ctx context.Context, path, query string) ([]host.Bookmark, error) {
	db, err := openPlaces(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, bookmarksQuery)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	parts := match.Split(query)
	var bookmarks []host.Bookmark
	for rows.Next() {
		var b host.Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.URL); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		if matchBookmark(b, parts) {
			bookmarks = append(bookmarks, b)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return bookmarks, nil
}

// matchBookmark lets each word match the title or the URL on its own.
func matchBookmark(b host.Bookmark, parts []string) bool {
	for _, part := range parts {
		word := []string{part}
		if !match.Matches(b.Title, word) && !match.Matches(b.URL, word) {
			return false
		}
	}
	return true
}
