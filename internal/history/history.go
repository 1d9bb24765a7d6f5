// Package history persists REPL history between sessions as a
// schema-versioned msgpack payload in the user cache directory.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// DefaultMax is how many entries a store keeps when max is not set.
const DefaultMax = 500

// Entry is one evaluated REPL expression.
type Entry struct {
	Expr  string
	Value float64
	Err   string // stable error message; empty on success
}

type payload struct {
	Schema  uint16
	Entries []Entry
}

// Store reads and writes the history file. Thread-safe.
type Store struct {
	mu   sync.Mutex
	path string
	max  int
}

// Open initializes a store at the standard cache location for app.
func Open(app string, max int) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(dir, "history.mp"), max), nil
}

// OpenAt initializes a store at an explicit path.
func OpenAt(path string, max int) *Store {
	if max <= 0 {
		max = DefaultMax
	}
	return &Store{path: path, max: max}
}

// Load returns the stored entries. A missing file or a payload with a
// different schema yields an empty history, not an error.
func (s *Store) Load() ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]Entry, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var p payload
	if err := msgpack.Unmarshal(content, &p); err != nil {
		return nil, err
	}
	if p.Schema != schemaVersion {
		return nil, nil
	}
	return p.Entries, nil
}

// Append adds one entry, trimming the oldest beyond the store's max,
// and writes the file atomically.
func (s *Store) Append(e Entry) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	if len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}
	return s.save(entries)
}

func (s *Store) save(entries []Entry) error {
	data, err := msgpack.Marshal(payload{Schema: schemaVersion, Entries: entries})
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	// Atomic replace.
	return os.Rename(name, s.path)
}

// Clear removes the history file.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
