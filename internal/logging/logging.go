package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "tabfinder.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	sink         io.WriteCloser
	logger       = zerolog.Nop()
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	l := currentLocked()
	l.Error().Err(err).Msg("error")
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	l := currentLocked()
	entry := l.Trace().Str("event", event)
	if payload != nil {
		entry = entry.Interface("payload", payload)
	}
	entry.Send()
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	next := defaultLogFile
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		} else {
			next = trimmed
		}
	}
	if next == logPath && sink != nil {
		return
	}
	closeLocked()
	logPath = next
}

// SetOutput routes log entries to w instead of the rotating log file. Tests
// use it to capture entries.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = newLogger(w)
	sink = nopCloser{w}
}

// Close flushes and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func currentLocked() *zerolog.Logger {
	if sink == nil {
		rotator := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		sink = rotator
		logger = newLogger(rotator)
	}
	return &logger
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Logger()
}

func closeLocked() {
	if sink != nil {
		_ = sink.Close()
	}
	sink = nil
	logger = zerolog.Nop()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
}
