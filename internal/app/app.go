package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tabfinder/internal/backend"
	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/host/firefox"
	"github.com/atomicstack/tabfinder/internal/logging"
	"github.com/atomicstack/tabfinder/internal/prefs"
	"github.com/atomicstack/tabfinder/internal/source"
	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/ui"
)

const watchInterval = 1500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	ProfileDir    string
	DevicesFile   string
	PrefsFile     string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	Query         string
	Print         bool
	Color         string
	FrameInterval time.Duration

	Pages    []source.Page
	Commands host.Commands
	Exclude  []string
}

// Runtime is the wired object graph behind both the interactive program
// and print mode.
type Runtime struct {
	Profile    firefox.Profile
	Tabs       *source.Tabs
	Aggregator *suggest.Aggregator
}

// Build locates the profile and wires the sources over it.
func Build(cfg Config) (Runtime, error) {
	home, _ := os.UserHomeDir()
	profile, err := firefox.FindProfile(cfg.ProfileDir, home)
	if err != nil {
		return Runtime{}, fmt.Errorf("locate profile: %w", err)
	}
	profile.DevicesFile = cfg.DevicesFile
	browser := firefox.NewBrowser(profile)
	tabs := source.NewTabs(browser, host.NewCommandLauncher(cfg.Commands, nil), cfg.Exclude)
	aggregator := suggest.NewAggregator(
		tabs,
		source.NewBookmarks(browser),
		source.NewSessions(browser),
		source.NewPages(cfg.Pages),
		source.Settings{},
	)
	return Runtime{Profile: profile, Tabs: tabs, Aggregator: aggregator}, nil
}

// Run bootstraps and executes the Bubble Tea program, or prints one
// resolution when cfg.Print is set.
func Run(cfg Config) error {
	rt, err := Build(cfg)
	if err != nil {
		return err
	}
	aggregator, tabs := rt.Aggregator, rt.Tabs

	if cfg.Print {
		return Print(context.Background(), aggregator, cfg.Query, os.Stdout)
	}

	if err := ApplyColor(cfg.Color); err != nil {
		return err
	}

	opts := ui.Options{
		Resolver:      aggregator,
		Actions:       tabs,
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		Verbose:       cfg.Verbose,
		FrameInterval: cfg.FrameInterval,
		InitialQuery:  cfg.Query,
		DarkTheme:     lipgloss.HasDarkBackground(),
	}
	if store := openPrefs(cfg.PrefsFile); store != nil {
		opts.Prefs = store
	}
	watcher, err := backend.NewWatcher(rt.Profile.WatchPaths(), watchInterval)
	if err != nil {
		// the list still works, it just won't refresh on its own
		logging.Error(fmt.Errorf("watch profile: %w", err))
	} else {
		defer watcher.Stop()
		opts.Watcher = watcher
	}

	model := ui.NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func openPrefs(path string) *prefs.Store {
	if path == "" {
		var err error
		path, err = prefs.DefaultPath()
		if err != nil {
			logging.Error(err)
			return nil
		}
	}
	return prefs.Open(path)
}
