package handler

import (
	"net/http"

	"github.com/strideapp/stride/internal/ctxkeys"
	"github.com/strideapp/stride/internal/service"
)

type CheckInHandler struct {
	checkInService *service.CheckInService
}

func NewCheckInHandler(checkInService *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	checkIns, err := h.checkInService.CheckIns(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to list check-ins", "user_id", user.ID)
		return
	}

	respondJSON(w, http.StatusOK, checkIns)
}

func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.CheckInInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := h.checkInService.Create(user.ID, in)
	if err != nil {
		respondServiceError(w, err, "failed to create check-in", "user_id", user.ID, "payload", in)
		return
	}

	respondJSON(w, http.StatusCreated, checkIn)
}

func (h *CheckInHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var patch service.CheckInPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	checkIn, err := h.checkInService.Update(user.ID, patch)
	if err != nil {
		respondServiceError(w, err, "failed to update check-in", "user_id", user.ID, "checkin_id", patch.ID, "payload", patch)
		return
	}

	respondJSON(w, http.StatusOK, checkIn)
}

func (h *CheckInHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	checkInID := r.URL.Query().Get("id")
	if checkInID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.checkInService.Delete(user.ID, checkInID)
	if err != nil {
		respondServiceError(w, err, "failed to delete check-in", "user_id", user.ID, "checkin_id", checkInID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
