package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

const (
	fileName   = "history.json"
	maxEntries = 100
)

// ErrEmpty is returned when history has no entries.
var ErrEmpty = errors.New("history is empty")

// Entry records one copy that reached the clipboard.
type Entry struct {
	Source    string    `json:"source,omitempty"`
	Selector  string    `json:"selector,omitempty"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Store keeps the most recent copies in a JSON file.
type Store struct {
	filePath string
}

// NewStore creates a Store that persists history in the given directory.
func NewStore(dir string) *Store {
	return &Store{filePath: filepath.Join(dir, fileName)}
}

// Add appends an entry, keeps only the newest maxEntries and writes the file
// atomically.
func (s *Store) Add(entry Entry) error {
	entries, err := s.readAll()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	return s.writeAll(entries)
}

// Last returns the most recent copy.
func (s *Store) Last() (Entry, error) {
	entries, err := s.readAll()
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrEmpty
	}
	return entries[len(entries)-1], nil
}

// Recent returns up to n entries, newest first. n <= 0 means all.
func (s *Store) Recent(n int) ([]Entry, error) {
	entries, err := s.readAll()
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// Clear removes the history file.
func (s *Store) Clear() error {
	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing history: %w", err)
	}
	return nil
}

func (s *Store) readAll() ([]Entry, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return entries, nil
}

func (s *Store) writeAll(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing history temp file: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming history temp file: %w", err)
	}
	return nil
}
