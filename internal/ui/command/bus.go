package command

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabfinder/internal/logging/events"
)

// Action performs a row's side effect.
type Action func(ctx context.Context) error

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
	// Quit asks the program to exit once the action succeeds.
	Quit bool
}

// Result is delivered to the update loop when an action finishes.
type Result struct {
	ID    string
	Label string
	Err   error
	Quit  bool
}

// Bus coordinates the execution of row actions.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus instance. Actions run with ctx.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		err := req.Handler(b.ctx)
		msg := Result{ID: req.ID, Label: req.Label, Err: err, Quit: req.Quit && err == nil}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
