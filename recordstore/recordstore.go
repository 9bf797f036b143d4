// Package recordstore persists one JSON document per user identifier,
// partitioned by resource kind into separate directories under a data root.
package recordstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no document exists for the given kind/user pair.
var ErrNotFound = errors.New("record not found")

type Kind string

const (
	KindLearningPath     Kind = "learning-paths"
	KindLearningProgress Kind = "learning-progress"
)

var kinds = []Kind{KindLearningPath, KindLearningProgress}

// Store is a file-per-identifier JSON store. Writes go through a temp file and
// an atomic rename, serialized per key, so concurrent writers to the same
// identifier cannot leave a partial file behind; the last completed write wins.
type Store struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open prepares the store under root, creating one directory per resource kind.
func Open(root string) (*Store, error) {
	for _, kind := range kinds {
		if err := os.MkdirAll(filepath.Join(root, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir: %w", kind, err)
		}
	}
	return &Store{root: root, locks: make(map[string]*sync.Mutex)}, nil
}

// Read returns the raw document for the given kind and user, or ErrNotFound.
func (s *Store) Read(kind Kind, userID string) ([]byte, error) {
	data, err := os.ReadFile(s.path(kind, userID))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write marshals doc and replaces the document for the given kind and user
// wholesale. The write is atomic: marshal, write a sibling temp file, rename.
func (s *Store) Write(kind Kind, userID string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	target := s.path(kind, userID)
	lock := s.lockFor(target)
	lock.Lock()
	defer lock.Unlock()

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Delete removes the document for the given kind and user. Returns ErrNotFound
// when nothing was stored; callers decide whether that is an error.
func (s *Store) Delete(kind Kind, userID string) error {
	target := s.path(kind, userID)
	lock := s.lockFor(target)
	lock.Lock()
	defer lock.Unlock()

	err := os.Remove(target)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// SweepTempFiles removes temp files older than olderThan left behind by
// interrupted writes. Returns the number of files removed.
func (s *Store) SweepTempFiles(olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, kind := range kinds {
		entries, err := os.ReadDir(filepath.Join(s.root, string(kind)))
		if err != nil {
			return removed, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmp") {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			if err := os.Remove(filepath.Join(s.root, string(kind), entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func (s *Store) path(kind Kind, userID string) string {
	return filepath.Join(s.root, string(kind), sanitizeID(userID)+".json")
}

func (s *Store) lockFor(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	return lock
}

// sanitizeID maps a user identifier onto a safe filename so a hostile id
// cannot escape the kind directory.
func sanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), ".")
	if name == "" {
		name = "_"
	}
	return name
}
