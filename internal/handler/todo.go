package handler

import (
	"net/http"
	"strconv"

	"github.com/strideapp/stride/internal/ctxkeys"
	"github.com/strideapp/stride/internal/service"
)

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// List returns the user's todos, optionally filtered by ?completed=.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var completed *bool
	if raw := r.URL.Query().Get("completed"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "completed must be true or false")
			return
		}
		completed = &b
	}

	todos, err := h.todoService.Todos(user.ID, completed)
	if err != nil {
		respondServiceError(w, err, "failed to list todos", "user_id", user.ID)
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.TodoInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todoService.Create(user.ID, in)
	if err != nil {
		respondServiceError(w, err, "failed to create todo", "user_id", user.ID, "payload", in)
		return
	}

	respondJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patch service.TodoPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	todo, err := h.todoService.Update(user.ID, patch)
	if err != nil {
		respondServiceError(w, err, "failed to update todo", "user_id", user.ID, "todo_id", patch.ID, "payload", patch)
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	todoID := r.URL.Query().Get("id")
	if todoID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.todoService.Delete(user.ID, todoID)
	if err != nil {
		respondServiceError(w, err, "failed to delete todo", "user_id", user.ID, "todo_id", todoID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
