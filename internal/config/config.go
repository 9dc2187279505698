package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tabfinder/internal/app"
	"github.com/atomicstack/tabfinder/internal/host"
	"github.com/atomicstack/tabfinder/internal/source"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

// File is the optional YAML configuration file.
type File struct {
	Pages    []source.Page  `yaml:"pages"`
	Commands *host.Commands `yaml:"commands"`
	Exclude  []string       `yaml:"exclude"`
}

const (
	envProfile       = "TABFINDER_PROFILE"
	envDevices       = "TABFINDER_DEVICES"
	envConfig        = "TABFINDER_CONFIG"
	envWidth         = "TABFINDER_WIDTH"
	envHeight        = "TABFINDER_HEIGHT"
	envShowFooter    = "TABFINDER_FOOTER"
	envVerbose       = "TABFINDER_VERBOSE"
	envTrace         = "TABFINDER_TRACE"
	envLogFile       = "TABFINDER_LOG_FILE"
	envColor         = "TABFINDER_COLOR"
	envFrameInterval = "TABFINDER_FRAME_INTERVAL"
	envPrefsFile     = "TABFINDER_PREFS_FILE"

	defaultFrameInterval = 16 * time.Millisecond
	configFileName       = "config.yaml"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("tabfinder", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	profile := fs.String("profile", envOrDefault(env, envProfile, ""), "path to the Firefox profile directory (default: first *.default-release profile)")
	devices := fs.String("devices", envOrDefault(env, envDevices, ""), "path to a synced-devices YAML snapshot")
	configFile := fs.String("config", envOrDefault(env, envConfig, ""), "path to the YAML config file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	query := fs.StringP("query", "q", "", "initial query")
	printMode := fs.Bool("print", false, "resolve the query once, print the results and exit")
	color := fs.String("color", envOrDefault(env, envColor, "auto"), "colour profile: auto, truecolor, 256, 16 or none")
	frameInterval := fs.Duration("frame-interval", envOrDuration(env, envFrameInterval, defaultFrameInterval), "delay between render frames")
	prefsFile := fs.String("prefs-file", envOrDefault(env, envPrefsFile, ""), "path to the preferences file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	path, explicit := *configFile, *configFile != ""
	if !explicit {
		path = defaultConfigPath(env)
	}
	file, err := LoadFile(path, explicit)
	if err != nil {
		return Config{}, err
	}
	commands := host.DefaultCommands()
	if file.Commands != nil {
		commands = *file.Commands
	}

	cfg := Config{
		App: app.Config{
			ProfileDir:    *profile,
			DevicesFile:   *devices,
			PrefsFile:     *prefsFile,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			Query:         *query,
			Print:         *printMode,
			Color:         *color,
			FrameInterval: *frameInterval,
			Pages:         file.Pages,
			Commands:      commands,
			Exclude:       file.Exclude,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		File: path,
		Flags: map[string]string{
			"profile":       *profile,
			"devices":       *devices,
			"config":        *configFile,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"verbose":       strconv.FormatBool(*verbose),
			"logFile":       *logFile,
			"query":         *query,
			"print":         strconv.FormatBool(*printMode),
			"color":         *color,
			"frameInterval": frameInterval.String(),
			"prefsFile":     *prefsFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// LoadFile reads the YAML config file. A missing file is an error only when
// it was asked for explicitly.
func LoadFile(path string, required bool) (File, error) {
	var file File
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return file, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func defaultConfigPath(env map[string]string) string {
	dir := env["XDG_CONFIG_HOME"]
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "tabfinder", configFileName)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks value ranges the flag parser cannot.
func Validate(cfg Config) error {
	if _, _, err := app.ColorProfile(cfg.App.Color); err != nil {
		return err
	}
	if cfg.App.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be > 0 (got %s)", cfg.App.FrameInterval)
	}
	for i, page := range cfg.App.Pages {
		if strings.TrimSpace(page.Text) == "" || strings.TrimSpace(page.URL) == "" {
			return fmt.Errorf("page %d: text and url are required", i)
		}
	}
	if len(cfg.App.Commands.Open) == 0 {
		return errors.New("commands.open must not be empty")
	}
	return nil
}
