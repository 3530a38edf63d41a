package handler

import (
	"net/http"

	"github.com/strideapp/stride/internal/ctxkeys"
	"github.com/strideapp/stride/internal/service"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	notes, err := h.noteService.Notes(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to list notes", "user_id", user.ID)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.NoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := h.noteService.Create(user.ID, in)
	if err != nil {
		respondServiceError(w, err, "failed to create note", "user_id", user.ID, "payload", in)
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patch service.NotePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	note, err := h.noteService.Update(user.ID, patch)
	if err != nil {
		respondServiceError(w, err, "failed to update note", "user_id", user.ID, "note_id", patch.ID, "payload", patch)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	noteID := r.URL.Query().Get("id")
	if noteID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.noteService.Delete(user.ID, noteID)
	if err != nil {
		respondServiceError(w, err, "failed to delete note", "user_id", user.ID, "note_id", noteID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
