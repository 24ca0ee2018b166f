// Package store persists each entity collection as one JSON array file on
// disk. Every mutation is read-full, mutate-in-memory, write-full; a
// per-collection mutex serializes writers within the process and files are
// replaced via temp-file rename so a crash cannot leave a torn file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

type collection struct {
	mu   sync.Mutex
	path string
}

// Store owns the on-disk representation of all entity collections. No other
// component writes these files.
type Store struct {
	dir    string
	logger *slog.Logger

	idMu   sync.Mutex
	lastID int64

	attorneys collection
	blogs     collection
	areas     collection
	services  collection
	contacts  collection
	admins    collection
}

// Open prepares the data directory and returns a Store bound to it.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{dir: dir, logger: logger}
	s.attorneys.path = filepath.Join(dir, "attorneys.json")
	s.blogs.path = filepath.Join(dir, "blogs.json")
	s.areas.path = filepath.Join(dir, "practice_areas.json")
	s.services.path = filepath.Join(dir, "services.json")
	s.contacts.path = filepath.Join(dir, "contacts.json")
	s.admins.path = filepath.Join(dir, "admins.json")

	return s, nil
}

// nextID returns a millisecond-timestamp id, bumped past the previous one so
// ids stay unique even when two creates land in the same millisecond.
func (s *Store) nextID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	return strconv.FormatInt(id, 10)
}

// stampAfter returns the current time, floored to strictly after prev so
// updatedAt always increases across an update.
func stampAfter(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}

	return now
}

func readAll[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// first run, nothing persisted yet
			return nil, nil
		}

		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var recs []T
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return recs, nil
}

func writeAll[T any](path string, recs []T) error {
	if recs == nil {
		recs = []T{}
	}

	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}

	return nil
}
