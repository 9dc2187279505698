package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"git", "hub"}, Split("  Git   HUB "))
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("   "))
}

func TestMatchesRequiresEveryPart(t *testing.T) {
	parts := Split("git hub")
	assert.True(t, Matches("GitHub - Where the world builds software", parts))
	assert.True(t, Matches("hub of git", parts))
	assert.False(t, Matches("GitLab", parts))
	assert.True(t, Matches("anything", nil), "no parts matches everything")
}

func TestHighlight(t *testing.T) {
	cases := []struct {
		text, term       string
		pre, match, post string
	}{
		{"Hello World", "world", "Hello ", "World", ""},
		{"Hello World", "LLO", "He", "llo", " World"},
		{"Hello World", "xyz", "Hello World", "", ""},
		{"Hello World", "", "Hello World", "", ""},
		{"https://github.com", "git", "https://", "git", "hub.com"},
		{"", "a", "", "", ""},
	}
	for _, tc := range cases {
		pre, m, post := Highlight(tc.text, tc.term)
		assert.Equal(t, tc.pre, pre, "pre for %q/%q", tc.text, tc.term)
		assert.Equal(t, tc.match, m, "match for %q/%q", tc.text, tc.term)
		assert.Equal(t, tc.post, post, "post for %q/%q", tc.text, tc.term)
	}
}

func TestHighlightKeepsMultibyteBoundaries(t *testing.T) {
	pre, m, post := Highlight("Café Über", "über")
	assert.Equal(t, "Café ", pre)
	assert.Equal(t, "Über", m)
	assert.Equal(t, "", post)
}
