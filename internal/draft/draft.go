// Package draft persists the in-progress answer set across program restarts.
// It is a single keyed entry in a JSON file: whichever subject is currently
// open owns the entry, every field edit overwrites it, and a successful
// submission deletes it. Nothing ever expires it otherwise.
package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/azizk/campulse/internal/survey"
)

const fileName = "draft.json"

// Store reads and writes the single draft entry.
type Store struct {
	path string
}

// NewStore creates a Store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, fileName)}
}

// Load returns the saved draft, or nil when none exists.
func (s *Store) Load() (*survey.FeedbackData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	var d survey.FeedbackData
	if err := json.Unmarshal(raw, &d); err != nil {
		// A corrupt draft is dropped rather than surfaced; the student
		// simply starts the form over.
		return nil, nil
	}
	if d.Subject == "" {
		return nil, nil
	}
	return &d, nil
}

// LoadFor returns the saved draft only if it belongs to subject; entering a
// form for any other subject starts blank.
func (s *Store) LoadFor(subject string) (*survey.FeedbackData, error) {
	d, err := s.Load()
	if err != nil {
		return nil, err
	}
	if d == nil || d.Subject != subject {
		return nil, nil
	}
	return d, nil
}

// Save overwrites the draft entry. Called on every field edit, no debounce.
func (s *Store) Save(d *survey.FeedbackData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}

// Clear deletes the draft entry. Missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
