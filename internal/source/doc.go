// Package source adapts raw browser state into suggest.Item lists, one
// adapter per kind of suggestion.
package source
