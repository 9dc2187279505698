// Package prefs persists the single user preference: the theme.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tabfinder/internal/logging"
)

const fileName = "prefs.yaml"

type document struct {
	DarkTheme *bool `yaml:"dark_theme,omitempty"`
}

// Store reads and writes the preference file.
type Store struct {
	path string
	mu   sync.Mutex
}

// DefaultPath returns prefs.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "tabfinder", fileName), nil
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// DarkTheme returns the stored theme and whether one was stored. Unreadable
// files count as unset.
func (s *Store) DarkTheme() (dark bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		logging.Error(err)
		return false, false
	}
	if doc.DarkTheme == nil {
		return false, false
	}
	return *doc.DarkTheme, true
}

// SetDarkTheme stores the theme, replacing the file atomically.
func (s *Store) SetDarkTheme(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		doc = document{}
	}
	doc.DarkTheme = &dark
	return s.write(doc)
}

func (s *Store) read() (document, error) {
	var doc document
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read prefs: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
