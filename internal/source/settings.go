package source

import (
	"context"
	"fmt"

	"github.com/atomicstack/tabfinder/internal/match"
	"github.com/atomicstack/tabfinder/internal/suggest"
)

// SettingDarkTheme names the theme preference.
const SettingDarkTheme = "darkTheme"

var settingRows = []struct {
	text    string
	setting suggest.Setting
}{
	{text: "set dark theme", setting: suggest.Setting{Name: SettingDarkTheme, Value: "true"}},
	{text: "set light theme", setting: suggest.Setting{Name: SettingDarkTheme, Value: "false"}},
}

// Settings offers preference switches by name.
type Settings struct{}

var _ suggest.Source = Settings{}

func (Settings) Kind() suggest.Kind { return suggest.KindSetting }

// Matches returns nothing for an empty query.
func (Settings) Matches(_ context.Context, query string) ([]suggest.Item, error) {
	parts := match.Split(query)
	if len(parts) == 0 {
		return nil, nil
	}
	var items []suggest.Item
	for i, row := range settingRows {
		if !match.Matches(row.text, parts) {
			continue
		}
		items = append(items, suggest.Item{
			ID:           fmt.Sprintf("setting-%d", i),
			Title:        row.text,
			MatchesTitle: true,
			GroupColor:   suggest.NoColor,
			Kind:         suggest.KindSetting,
			Setting:      row.setting,
		})
	}
	return items, nil
}
