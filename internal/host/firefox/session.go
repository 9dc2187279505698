package firefox

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pierrec/lz4/v4"

	"github.com/atomicstack/tabfinder/internal/host"
)

var mozLz4Magic = []byte("mozLz40\x00")

// ErrBadMagic is returned for files that are not mozlz4 framed.
var ErrBadMagic = errors.New("not a mozlz4 file")

// DecodeMozLz4 unpacks a mozlz4 frame: an 8 byte magic, a little-endian
// uint32 decompressed size and one lz4 block.
func DecodeMozLz4(data []byte) ([]byte, error) {
	header := len(mozLz4Magic) + 4
	if len(data) < header || !bytes.Equal(data[:len(mozLz4Magic)], mozLz4Magic) {
		return nil, ErrBadMagic
	}
	size := int(binary.LittleEndian.Uint32(data[len(mozLz4Magic):header]))
	destination := make([]byte, size)
	read, err := lz4.UncompressBlock(data[header:], destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != size {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, size)
	}
	return destination, nil
}

// EncodeMozLz4 frames data as mozlz4.
func EncodeMozLz4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	out := make([]byte, len(mozLz4Magic)+4+bound)
	copy(out, mozLz4Magic)
	binary.LittleEndian.PutUint32(out[len(mozLz4Magic):], uint32(len(data)))
	written, err := lz4.CompressBlock(data, out[len(mozLz4Magic)+4:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if written == 0 {
		return nil, errors.New("lz4 compress: incompressible input")
	}
	return out[:len(mozLz4Magic)+4+written], nil
}

type sessionStore struct {
	Windows []sessionWindow `json:"windows"`
}

type sessionWindow struct {
	Tabs     []sessionTab `json:"tabs"`
	Selected int          `json:"selected"`
}

type sessionTab struct {
	Entries []sessionEntry `json:"entries"`
	Index   int            `json:"index"`
}

type sessionEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ReadSessionFile decodes the session store at path into open tabs. Windows
// are numbered from 1 in store order; tab indexes start at 0.
func ReadSessionFile(path string) ([]host.Tab, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session store: %w", err)
	}
	data, err := DecodeMozLz4(raw)
	if err != nil {
		return nil, fmt.Errorf("decode session store %s: %w", path, err)
	}
	var store sessionStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse session store %s: %w", path, err)
	}
	return store.tabs(), nil
}

func (s sessionStore) tabs() []host.Tab {
	var tabs []host.Tab
	for w, window := range s.Windows {
		for i, tab := range window.Tabs {
			entry, ok := tab.current()
			if !ok {
				continue
			}
			title := entry.Title
			if title == "" {
				title = entry.URL
			}
			tabs = append(tabs, host.Tab{
				Window: w + 1,
				Index:  i,
				Title:  title,
				URL:    entry.URL,
				Active: window.Selected == i+1,
			})
		}
	}
	return tabs
}

// current returns the history entry the tab is showing. Index is 1-based.
func (t sessionTab) current() (sessionEntry, bool) {
	if len(t.Entries) == 0 {
		return sessionEntry{}, false
	}
	idx := t.Index - 1
	if idx < 0 || idx >= len(t.Entries) {
		idx = len(t.Entries) - 1
	}
	return t.Entries[idx], true
}
