package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/backend"
	"github.com/atomicstack/tabfinder/internal/combobox"
	"github.com/atomicstack/tabfinder/internal/lazy"
	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/theme"
	"github.com/atomicstack/tabfinder/internal/ui/command"
	"github.com/atomicstack/tabfinder/internal/ui/listbox"
	uistate "github.com/atomicstack/tabfinder/internal/ui/state"
)

const defaultFrameInterval = 16 * time.Millisecond

// Resolver turns a query into a view model.
type Resolver interface {
	Resolve(ctx context.Context, query string) (suggest.ViewModel, error)
}

// TabActions are the side effects behind tab, bookmark, page and session rows.
type TabActions interface {
	SwitchTo(ctx context.Context, window, index int) error
	Open(ctx context.Context, url string, background bool) error
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	DarkTheme() (dark bool, ok bool)
	SetDarkTheme(dark bool) error
}

// Options configures a Model.
type Options struct {
	Resolver Resolver
	Actions  TabActions
	Prefs    ThemeStore
	Watcher  *backend.Watcher

	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	FrameInterval time.Duration
	InitialQuery  string
	// DarkTheme is used when the preference store holds no value.
	DarkTheme bool
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the suggestion list.
type Model struct {
	resolver Resolver
	actions  TabActions
	prefs    ThemeStore
	backend  *backend.Watcher
	bus      *command.Bus

	styles *theme.Styles
	dark   bool

	input     textinput.Model
	activeID  string
	lastQuery string
	seq       suggest.Sequencer
	vm        suggest.ViewModel
	hasVM     bool
	loading   bool

	list     *listbox.Container
	combo    *combobox.Combobox
	sched    *lazy.Scheduler
	observer *lazy.ViewportObserver
	viewport uistate.Viewport

	frameInterval time.Duration
	frameWanted   bool
	frameInFlight bool
	started       bool

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	backendLastErr string
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	showFooter     bool
	verbose        bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model. The first query is issued once the first frame
// has been rendered.
func NewModel(opts Options) *Model {
	m := &Model{
		resolver:      opts.Resolver,
		actions:       opts.Actions,
		prefs:         opts.Prefs,
		backend:       opts.Watcher,
		bus:           command.New(context.Background()),
		dark:          opts.DarkTheme,
		list:          listbox.New(),
		observer:      lazy.NewViewportObserver(),
		frameInterval: opts.FrameInterval,
		showFooter:    opts.ShowFooter,
		verbose:       opts.Verbose,
	}
	if m.frameInterval <= 0 {
		m.frameInterval = defaultFrameInterval
	}
	if m.prefs != nil {
		if dark, ok := m.prefs.DarkTheme(); ok {
			m.dark = dark
		}
	}
	m.styles = theme.For(m.dark)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	m.input = textinput.New()
	m.input.Prompt = "» "
	m.input.Placeholder = "search"
	m.input.Cursor.SetMode(cursor.CursorStatic)
	m.input.SetValue(opts.InitialQuery)
	m.input.Focus()
	m.applyInputStyles()

	m.sched = lazy.NewScheduler(m.requestFrame, func() int { return m.viewport.Bottom() }, m.observer)
	m.combo = combobox.New(m.list, m, combobox.Config{RequestFrame: m.requestFrame})
	m.layout()
	m.registerHandlers()
	// startup frame; the first query follows it
	m.requestFrame()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return m.finishUpdate(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(resultsMsg{}):        m.handleResultsMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
		reflect.TypeOf(settingMsg{}):        m.handleSettingMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.frameWanted && !m.frameInFlight {
		m.frameWanted = false
		m.frameInFlight = true
		cmds = append(cmds, m.frameCmd())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// SetActiveDescendant records the selected option id; the search box is the
// combobox input.
func (m *Model) SetActiveDescendant(id string) {
	m.activeID = id
}

// ViewModel returns the displayed view model.
func (m *Model) ViewModel() suggest.ViewModel {
	return m.vm
}

// Query returns the text of the search box.
func (m *Model) Query() string {
	return m.input.Value()
}

// DarkTheme reports whether the dark theme is active.
func (m *Model) DarkTheme() bool {
	return m.dark
}

// Err returns the status line error, if any.
func (m *Model) Err() string {
	return m.errMsg
}
