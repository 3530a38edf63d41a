package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/model"
)

func seedNote(t *testing.T, d *sqlx.DB, userID, title string, pinned bool, at time.Time) *model.Note {
	t.Helper()

	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   "body",
		IsPinned:  pinned,
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := NewNoteRepository(d).Create(note); err != nil {
		t.Fatalf("seed note: %v", err)
	}
	return note
}

func TestNotesPinnedFirst(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewNoteRepository(d)

	base := time.Now().Add(-time.Hour)
	seedNote(t, d, user.ID, "recent", false, base.Add(30*time.Minute))
	seedNote(t, d, user.ID, "pinned old", true, base)

	notes, err := repo.Notes(user.ID)
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes", len(notes))
	}
	if notes[0].Title != "pinned old" {
		t.Errorf("first note = %q, want the pinned one", notes[0].Title)
	}
}
