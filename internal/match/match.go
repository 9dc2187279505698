// Package match implements the substring matching and highlight decomposition
// shared by every suggestion source and by row rendering.
package match

import "strings"

// Split lower-cases the query and breaks it into whitespace-separated parts.
// An empty or blank query yields no parts.
func Split(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Matches reports whether every part is a case-insensitive substring of text.
// Parts are expected to be lower-cased already (see Split). With no parts the
// result is true; sources that want "nothing on empty query" check for that
// themselves.
func Matches(text string, parts []string) bool {
	lower := strings.ToLower(text)
	for _, part := range parts {
		if !strings.Contains(lower, part) {
			return false
		}
	}
	return true
}

// Highlight splits text around the first case-insensitive occurrence of term.
// The returned segments keep the original casing of text. When term is empty
// or absent the whole text is returned as pre.
func Highlight(text, term string) (pre, match, post string) {
	if term == "" {
		return text, "", ""
	}
	idx := indexFold(text, term)
	if idx < 0 {
		return text, "", ""
	}
	end := idx + len(term)
	return text[:idx], text[idx:end], text[end:]
}

// indexFold finds term in text ignoring case. It walks byte offsets of text so
// the returned index is always a valid slice boundary for the original string.
func indexFold(text, term string) int {
	n := len(term)
	for i := 0; i+n <= len(text); i++ {
		if i > 0 && !isRuneStart(text[i]) {
			continue
		}
		if strings.EqualFold(text[i:i+n], term) {
			return i
		}
	}
	return -1
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
