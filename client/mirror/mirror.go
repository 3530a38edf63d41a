// Package mirror is the local mirror layer: a write-through cache over
// the remote client, keyed by entity kind. Every successful remote
// operation updates the mirror; failed reads degrade to the last cached
// state, failed writes always surface a typed error so callers never
// believe unsaved data was persisted.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/strideapp/stride/client"
)

// Remote is the network-facing half of the repository pair, satisfied
// by *client.Client. It is an interface so the fallback policy can be
// tested without a live server.
type Remote interface {
	ListGoals(ctx context.Context, s *client.Session) ([]client.Goal, error)
	CreateGoal(ctx context.Context, s *client.Session, in client.GoalInput) (*client.Goal, error)
	UpdateGoal(ctx context.Context, s *client.Session, patch client.GoalPatch) (*client.Goal, error)
	DeleteGoal(ctx context.Context, s *client.Session, id string) error

	ListMilestones(ctx context.Context, s *client.Session, goalID string) ([]client.Milestone, error)
	CreateMilestone(ctx context.Context, s *client.Session, in client.MilestoneInput) (*client.Milestone, error)
	UpdateMilestone(ctx context.Context, s *client.Session, patch client.MilestonePatch) (*client.Milestone, error)
	DeleteMilestone(ctx context.Context, s *client.Session, id string) error

	ListNotes(ctx context.Context, s *client.Session) ([]client.Note, error)
	CreateNote(ctx context.Context, s *client.Session, in client.NoteInput) (*client.Note, error)
	UpdateNote(ctx context.Context, s *client.Session, patch client.NotePatch) (*client.Note, error)
	DeleteNote(ctx context.Context, s *client.Session, id string) error

	ListTodos(ctx context.Context, s *client.Session, completed *bool) ([]client.Todo, error)
	CreateTodo(ctx context.Context, s *client.Session, in client.TodoInput) (*client.Todo, error)
	UpdateTodo(ctx context.Context, s *client.Session, patch client.TodoPatch) (*client.Todo, error)
	DeleteTodo(ctx context.Context, s *client.Session, id string) error

	ListCheckIns(ctx context.Context, s *client.Session) ([]client.CheckIn, error)
	CreateCheckIn(ctx context.Context, s *client.Session, in client.CheckInInput) (*client.CheckIn, error)
	UpdateCheckIn(ctx context.Context, s *client.Session, patch client.CheckInPatch) (*client.CheckIn, error)
	DeleteCheckIn(ctx context.Context, s *client.Session, id string) error
}

// StorageError wraps a failed write against the remote. The local cache
// is left untouched when one is raised.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type Mirror struct {
	remote Remote
	store  *Store
}

func New(remote Remote, store *Store) *Mirror {
	return &Mirror{remote: remote, store: store}
}

// Store exposes the underlying cache, mainly for session management.
func (m *Mirror) Store() *Store {
	return m.store
}

// escape HTML-entity-encodes free text before it travels to storage,
// so stored values are safe to render unescaped later.
func escape(s string) string {
	return html.EscapeString(s)
}

func unescape(s string) string {
	return html.UnescapeString(s)
}

func escapeList(l client.List) client.List {
	out := make(client.List, len(l))
	for i, s := range l {
		out[i] = escape(s)
	}
	return out
}

func unescapeList(l client.List) client.List {
	out := make(client.List, len(l))
	for i, s := range l {
		out[i] = unescape(s)
	}
	return out
}

// wrapWriteErr maps a failed remote write onto the error taxonomy:
// validation, not-found and no-session conditions pass through
// unchanged, everything else becomes a StorageError.
func wrapWriteErr(op string, err error) error {
	var verr *client.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	if errors.Is(err, client.ErrNotFound) || errors.Is(err, client.ErrNoSession) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func hasSession(s *client.Session) bool {
	return s != nil && s.UserID != ""
}

// syncUser points the store at the session's user, clearing any prior
// user's entries before anything new is cached.
func (m *Mirror) syncUser(s *client.Session) {
	err := m.store.SetUser(s.UserID)
	if err != nil {
		slog.Warn("failed to update cache session marker", "error", err)
	}
}

// listKind fetches remote-first and falls back to the cache: the only
// path allowed to recover from a storage failure.
func listKind[T any](m *Mirror, s *client.Session, kind string,
	fetch func() ([]T, error), unescapeItem func(*T)) ([]T, error) {

	// Deliberate no-error short-circuit: without a session there is
	// nothing to list.
	if !hasSession(s) {
		return []T{}, nil
	}
	m.syncUser(s)

	items, err := fetch()
	if err != nil {
		slog.Warn("list failed, falling back to cache", "kind", kind, "error", err)
		cached := []T{}
		if !m.store.Read(kind, &cached) {
			cached = []T{}
		}
		for i := range cached {
			unescapeItem(&cached[i])
		}
		return cached, nil
	}

	err = m.store.Write(kind, items)
	if err != nil {
		slog.Warn("failed to cache list", "kind", kind, "error", err)
	}

	for i := range items {
		unescapeItem(&items[i])
	}
	return items, nil
}

// getKind delegates to listKind and scans linearly; if listing itself
// failed, it re-reads the raw cache as a last resort.
func getKind[T any](m *Mirror, s *client.Session, kind, id string,
	list func() ([]T, error), itemID func(*T) string, unescapeItem func(*T)) (*T, error) {

	items, err := list()
	if err != nil {
		cached := []T{}
		if !m.store.Read(kind, &cached) {
			cached = []T{}
		}
		for i := range cached {
			unescapeItem(&cached[i])
		}
		items = cached
	}

	for i := range items {
		if itemID(&items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, client.ErrNotFound
}

// createKind appends the server's canonical object to the cache and
// returns it unescaped. The cache is never touched on failure.
func createKind[T any](m *Mirror, s *client.Session, kind, op string,
	post func() (*T, error), unescapeItem func(*T)) (*T, error) {

	if !hasSession(s) {
		return nil, client.ErrNoSession
	}
	m.syncUser(s)

	created, err := post()
	if err != nil {
		slog.Error("create failed", "kind", kind, "error", err)
		return nil, wrapWriteErr(op, err)
	}

	cached := []T{}
	m.store.Read(kind, &cached)
	cached = append(cached, *created)
	err = m.store.Write(kind, cached)
	if err != nil {
		slog.Warn("failed to cache created entity", "kind", kind, "error", err)
	}

	unescapeItem(created)
	return created, nil
}

// updateKind replaces the matching cache entry by identifier.
func updateKind[T any](m *Mirror, s *client.Session, kind, op, id string,
	put func() (*T, error), itemID func(*T) string, unescapeItem func(*T)) (*T, error) {

	if !hasSession(s) {
		return nil, client.ErrNoSession
	}
	m.syncUser(s)

	updated, err := put()
	if err != nil {
		slog.Error("update failed", "kind", kind, "id", id, "error", err)
		return nil, wrapWriteErr(op, err)
	}

	cached := []T{}
	m.store.Read(kind, &cached)
	replaced := false
	for i := range cached {
		if itemID(&cached[i]) == id {
			cached[i] = *updated
			replaced = true
			break
		}
	}
	if !replaced {
		cached = append(cached, *updated)
	}
	err = m.store.Write(kind, cached)
	if err != nil {
		slog.Warn("failed to cache updated entity", "kind", kind, "error", err)
	}

	unescapeItem(updated)
	return updated, nil
}

// deleteKind removes the matching cache entry after the remote delete
// succeeds.
func deleteKind[T any](m *Mirror, s *client.Session, kind, op, id string,
	del func() error, itemID func(*T) string) error {

	if !hasSession(s) {
		return client.ErrNoSession
	}
	m.syncUser(s)

	err := del()
	if err != nil {
		slog.Error("delete failed", "kind", kind, "id", id, "error", err)
		return wrapWriteErr(op, err)
	}

	cached := []T{}
	if m.store.Read(kind, &cached) {
		kept := cached[:0]
		for i := range cached {
			if itemID(&cached[i]) != id {
				kept = append(kept, cached[i])
			}
		}
		err = m.store.Write(kind, kept)
		if err != nil {
			slog.Warn("failed to prune cache entry", "kind", kind, "error", err)
		}
	}

	return nil
}
