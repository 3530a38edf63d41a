package handler

import (
	"net/http"

	"github.com/strideapp/stride/internal/ctxkeys"
	"github.com/strideapp/stride/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to list goals", "user_id", user.ID)
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.GoalInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(user.ID, in)
	if err != nil {
		respondServiceError(w, err, "failed to create goal", "user_id", user.ID, "payload", in)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patch service.GoalPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	goal, err := h.goalService.Update(user.ID, patch)
	if err != nil {
		respondServiceError(w, err, "failed to update goal", "user_id", user.ID, "goal_id", patch.ID, "payload", patch)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goalID := r.URL.Query().Get("id")
	if goalID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err, "failed to delete goal", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
