// Package feedback persists user ratings of generated reports.
package feedback

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinRating        = 1
	MaxRating        = 5
	maxCommentLength = 2000
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Entry struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

// FileStore keeps every entry in memory and rewrites the JSON file on each
// change.
type FileStore struct {
	mu      sync.RWMutex
	path    string
	entries []Entry
	now     func() time.Time
}

// Open loads the store at path, creating its directory if needed. A missing
// file starts an empty store.
func Open(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create feedback directory: %w", err)
	}

	s := &FileStore{path: path, entries: []Entry{}, now: time.Now}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.entries); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
	}
	return s, nil
}

// Add validates and stores a new entry.
func (s *FileStore) Add(rating int, comment string) (Entry, error) {
	if rating < MinRating || rating > MaxRating {
		return Entry{}, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	comment = truncate(comment, maxCommentLength)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		ID:        uuid.NewString(),
		Rating:    rating,
		Comment:   comment,
		Timestamp: s.now().UTC(),
	}

	entries := append(s.entries, entry)
	if err := s.save(entries); err != nil {
		return Entry{}, err
	}
	s.entries = entries
	return entry, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// List returns a copy of all entries, oldest first.
func (s *FileStore) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// save writes through a temp file so a crash never leaves a partial file.
func (s *FileStore) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feedback: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
