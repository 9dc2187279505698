package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/logging"
	"github.com/atomicstack/tabfinder/internal/logging/events"
	"github.com/atomicstack/tabfinder/internal/source"
	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/theme"
	"github.com/atomicstack/tabfinder/internal/ui/command"
)

var errNoActions = fmt.Errorf("no browser actions configured: %w", host.ErrUnsupported)

// settingMsg applies a settings row inside the update loop.
type settingMsg struct {
	setting suggest.Setting
}

// activate is the click handler shared by every row.
func (m *Model) activate(item suggest.Item, secondary bool) tea.Cmd {
	switch item.Kind {
	case suggest.KindSetting:
		setting := item.Setting
		return func() tea.Msg { return settingMsg{setting: setting} }
	case suggest.KindTab:
		return m.bus.Execute(command.Request{
			ID:    item.ID,
			Label: "switch to " + item.Title,
			Quit:  true,
			Handler: m.withActions(func(ctx context.Context, a TabActions) error {
				return a.SwitchTo(ctx, item.Window, item.Index)
			}),
		})
	default:
		url := item.URL
		return m.bus.Execute(command.Request{
			ID:    item.ID,
			Label: "open " + url,
			// a background tab leaves the launcher in front
			Quit: !secondary,
			Handler: m.withActions(func(ctx context.Context, a TabActions) error {
				return a.Open(ctx, url, secondary)
			}),
		})
	}
}

func (m *Model) withActions(fn func(context.Context, TabActions) error) command.Action {
	actions := m.actions
	return func(ctx context.Context) error {
		if actions == nil {
			return errNoActions
		}
		return fn(ctx, actions)
	}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		if !errors.Is(result.Err, host.ErrUnsupported) {
			logging.Error(result.Err)
		}
		return nil
	}
	m.errMsg = ""
	events.Action.Success(result.Label)
	if result.Quit {
		return tea.Quit
	}
	if m.verbose {
		m.setInfo(result.Label)
	}
	return nil
}

func (m *Model) handleSettingMsg(msg tea.Msg) tea.Cmd {
	setting, ok := msg.(settingMsg)
	if !ok {
		return nil
	}
	switch setting.setting.Name {
	case source.SettingDarkTheme:
		dark := setting.setting.Value == "true"
		m.setTheme(dark)
		if m.prefs == nil {
			return nil
		}
		store := m.prefs
		return m.bus.Execute(command.Request{
			ID:    "setting-" + setting.setting.Name,
			Label: fmt.Sprintf("set %s=%s", setting.setting.Name, setting.setting.Value),
			Handler: func(context.Context) error {
				return store.SetDarkTheme(dark)
			},
		})
	}
	return nil
}

// setTheme swaps the style set and re-renders the rows with it.
func (m *Model) setTheme(dark bool) {
	if m.dark == dark {
		return
	}
	m.dark = dark
	m.styles = theme.For(dark)
	m.applyInputStyles()
	if m.hasVM {
		m.patch()
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
