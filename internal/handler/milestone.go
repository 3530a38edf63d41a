package handler

import (
	"net/http"

	"github.com/strideapp/stride/internal/ctxkeys"
	"github.com/strideapp/stride/internal/service"
)

type MilestoneHandler struct {
	milestoneService *service.MilestoneService
}

func NewMilestoneHandler(milestoneService *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// List returns the user's milestones, optionally filtered by ?goalId=.
func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.URL.Query().Get("goalId")

	milestones, err := h.milestoneService.Milestones(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err, "failed to list milestones", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusOK, milestones)
}

func (h *MilestoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.MilestoneInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	milestone, err := h.milestoneService.Create(user.ID, in)
	if err != nil {
		respondServiceError(w, err, "failed to create milestone", "user_id", user.ID, "payload", in)
		return
	}

	respondJSON(w, http.StatusCreated, milestone)
}

func (h *MilestoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patch service.MilestonePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	milestone, err := h.milestoneService.Update(user.ID, patch)
	if err != nil {
		respondServiceError(w, err, "failed to update milestone", "user_id", user.ID, "milestone_id", patch.ID, "payload", patch)
		return
	}

	respondJSON(w, http.StatusOK, milestone)
}

func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	milestoneID := r.URL.Query().Get("id")
	if milestoneID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.milestoneService.Delete(user.ID, milestoneID)
	if err != nil {
		respondServiceError(w, err, "failed to delete milestone", "user_id", user.ID, "milestone_id", milestoneID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
