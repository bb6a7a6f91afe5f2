package qr

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DirSource watches a capture directory for badge photos. The scanner
// screen polls Next on a timer; captures already seen are skipped, so a
// directory full of old photos does not replay. Close releases the source,
// a closed source never returns captures again.
type DirSource struct {
	dir string

	mu     sync.Mutex
	seen   map[string]bool
	closed bool
}

// NewDirSource opens a capture source over dir. Existing files are marked
// seen so only new captures are picked up.
func NewDirSource(dir string) (*DirSource, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create capture dir: %w", err)
	}

	s := &DirSource{dir: dir, seen: make(map[string]bool)}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read capture dir: %w", err)
	}
	for _, e := range entries {
		s.seen[e.Name()] = true
	}
	return s, nil
}

// Next returns the path of the oldest unseen capture, or "" when there is
// none yet.
func (s *DirSource) Next() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", fmt.Errorf("capture source closed")
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("read capture dir: %w", err)
	}

	var fresh []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || s.seen[name] || !isImage(name) {
			continue
		}
		fresh = append(fresh, name)
	}
	if len(fresh) == 0 {
		return "", nil
	}
	sort.Strings(fresh)

	s.seen[fresh[0]] = true
	return filepath.Join(s.dir, fresh[0]), nil
}

// Close releases the source. Safe to call more than once.
func (s *DirSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
