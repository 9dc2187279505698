package host

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Placeholders understood by command templates.
const (
	PlaceholderURL    = "{url}"
	PlaceholderWindow = "{window}"
	PlaceholderIndex  = "{index}"
)

// Commands holds argv templates for launcher actions. An empty template means
// the action is unsupported.
type Commands struct {
	Open           []string `yaml:"open"`
	OpenBackground []string `yaml:"open_background"`
	Switch         []string `yaml:"switch"`
}

// DefaultCommands opens URLs with xdg-open and leaves tab switching
// unconfigured.
func DefaultCommands() Commands {
	return Commands{
		Open: []string{"xdg-open", PlaceholderURL},
	}
}

// Runner executes a prepared argv.
type Runner func(ctx context.Context, argv []string) error

// CommandLauncher implements Launcher by running external commands.
type CommandLauncher struct {
	commands Commands
	run      Runner
}

// NewCommandLauncher builds a launcher from templates. A nil runner executes
// the command and waits for it.
func NewCommandLauncher(commands Commands, run Runner) *CommandLauncher {
	if run == nil {
		run = execRunner
	}
	return &CommandLauncher{commands: commands, run: run}
}

// SwitchTo focuses the tab at index inside window.
func (l *CommandLauncher) SwitchTo(ctx context.Context, window, index int) error {
	if len(l.commands.Switch) == 0 {
		return fmt.Errorf("switch to tab %d:%d: %w", window, index, ErrUnsupported)
	}
	argv := Expand(l.commands.Switch, map[string]string{
		PlaceholderWindow: strconv.Itoa(window),
		PlaceholderIndex:  strconv.Itoa(index),
	})
	if err := l.run(ctx, argv); err != nil {
		return fmt.Errorf("switch to tab %d:%d: %w", window, index, err)
	}
	return nil
}

// Open opens url in a new tab. A background open needs its own template;
// without one it is unsupported rather than silently opened in front.
func (l *CommandLauncher) Open(ctx context.Context, url string, background bool) error {
	template := l.commands.Open
	if background {
		template = l.commands.OpenBackground
	}
	if len(template) == 0 {
		return fmt.Errorf("open %s: %w", url, ErrUnsupported)
	}
	argv := Expand(template, map[string]string{PlaceholderURL: url})
	if err := l.run(ctx, argv); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Expand substitutes placeholders in every argument of template.
func Expand(template []string, values map[string]string) []string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, k, v)
	}
	replacer := strings.NewReplacer(pairs...)
	argv := make([]string, len(template))
	for i, arg := range template {
		argv[i] = replacer.Replace(arg)
	}
	return argv
}

func execRunner(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrUnsupported
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", argv[0], err, msg)
		}
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
