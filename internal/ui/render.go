package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tabfinder/internal/match"
)

// highlight renders text with the first occurrence of term emphasised.
func highlight(text, term string, base, emphasis lipgloss.Style) string {
	pre, hit, post := match.Highlight(text, term)
	out := ""
	if pre != "" {
		out += base.Render(pre)
	}
	if hit != "" {
		out += emphasis.Render(hit)
	}
	if post != "" {
		out += base.Render(post)
	}
	return out
}
