package mirror

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Kind keys partitioning the store. One cache entry per kind, plus a
// session marker holding the active user id.
const (
	KindGoals      = "goals"
	KindMilestones = "milestones"
	KindNotes      = "notes"
	KindTodos      = "todos"
	KindCheckIns   = "checkins"
)

var kinds = []string{KindGoals, KindMilestones, KindNotes, KindTodos, KindCheckIns}

type storeData struct {
	User  string                     `json:"user,omitempty"`
	Kinds map[string]json.RawMessage `json:"kinds"`
}

// Store is a persistent kind-keyed cache backed by a single JSON file,
// the analogue of a per-browser-profile key-value store. It is mutated
// only through the mirror, never read elsewhere.
type Store struct {
	path string

	mu   sync.Mutex
	data storeData
}

// Open loads the store at path, creating parent directories as needed.
// A missing or malformed file starts empty rather than failing.
func Open(path string) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &Store{path: path}
	s.data.Kinds = map[string]json.RawMessage{}

	raw, err := os.ReadFile(path)
	if err == nil {
		var loaded storeData
		if jsonErr := json.Unmarshal(raw, &loaded); jsonErr == nil {
			s.data = loaded
			if s.data.Kinds == nil {
				s.data.Kinds = map[string]json.RawMessage{}
			}
		}
	}

	return s, nil
}

// User returns the id the cached entries belong to.
func (s *Store) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.User
}

// SetUser records the active user. When the id changes, every per-kind
// entry for the previous user is cleared first, so stale data never
// leaks across accounts sharing the store.
func (s *Store) SetUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.User == userID {
		return nil
	}

	s.data.User = userID
	s.data.Kinds = map[string]json.RawMessage{}
	return s.save()
}

// Read unmarshals the cached entry for kind into out. It reports false
// when the entry is absent or malformed; out is untouched in that case.
func (s *Store) Read(kind string, out any) bool {
	s.mu.Lock()
	raw, ok := s.data.Kinds[kind]
	s.mu.Unlock()

	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Write replaces the cached entry for kind.
func (s *Store) Write(kind string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s cache entry: %w", kind, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Kinds[kind] = raw
	return s.save()
}

// Clear drops the session marker and every per-kind entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = storeData{Kinds: map[string]json.RawMessage{}}
	return s.save()
}

// save persists via write-to-temp then rename, so a crash mid-write
// never leaves behind a truncated store.
func (s *Store) save() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, raw, 0600)
	if err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	err = os.Rename(tmp, s.path)
	if err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}

	return nil
}
