package mirror

import (
	"context"
	"strings"

	"github.com/strideapp/stride/client"
)

func sanitizeNoteInput(in *client.NoteInput) {
	in.Title = escape(in.Title)
	in.Content = escape(in.Content)
	in.Category = escape(in.Category)
}

func sanitizeNotePatch(patch *client.NotePatch) {
	if patch.Title != nil {
		escaped := escape(*patch.Title)
		patch.Title = &escaped
	}
	if patch.Content != nil {
		escaped := escape(*patch.Content)
		patch.Content = &escaped
	}
	if patch.Category != nil {
		escaped := escape(*patch.Category)
		patch.Category = &escaped
	}
}

func unescapeNote(n *client.Note) {
	n.Title = unescape(n.Title)
	n.Content = unescape(n.Content)
	n.Category = unescape(n.Category)
}

func noteID(n *client.Note) string { return n.ID }

func (m *Mirror) Notes(ctx context.Context, s *client.Session) ([]client.Note, error) {
	return listKind(m, s, KindNotes,
		func() ([]client.Note, error) { return m.remote.ListNotes(ctx, s) },
		unescapeNote)
}

func (m *Mirror) Note(ctx context.Context, s *client.Session, id string) (*client.Note, error) {
	return getKind(m, s, KindNotes, id,
		func() ([]client.Note, error) { return m.Notes(ctx, s) },
		noteID, unescapeNote)
}

func (m *Mirror) CreateNote(ctx context.Context, s *client.Session, in client.NoteInput) (*client.Note, error) {
	sanitizeNoteInput(&in)

	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "is required"
	}
	if strings.TrimSpace(in.Content) == "" {
		fields["content"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &client.ValidationError{Fields: fields}
	}

	return createKind(m, s, KindNotes, "create note",
		func() (*client.Note, error) { return m.remote.CreateNote(ctx, s, in) },
		unescapeNote)
}

func (m *Mirror) UpdateNote(ctx context.Context, s *client.Session, patch client.NotePatch) (*client.Note, error) {
	sanitizeNotePatch(&patch)

	return updateKind(m, s, KindNotes, "update note", patch.ID,
		func() (*client.Note, error) { return m.remote.UpdateNote(ctx, s, patch) },
		noteID, unescapeNote)
}

func (m *Mirror) DeleteNote(ctx context.Context, s *client.Session, id string) error {
	return deleteKind[client.Note](m, s, KindNotes, "delete note", id,
		func() error { return m.remote.DeleteNote(ctx, s, id) },
		noteID)
}
