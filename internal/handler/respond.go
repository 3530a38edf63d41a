package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/validation"
)

// maxBodyBytes caps request bodies before decoding starts.
const maxBodyBytes = 64 << 10

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a size-capped JSON body into dst. Unknown fields are
// tolerated and passed through.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return fmt.Errorf("malformed request body")
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrGoalNotFound) ||
		errors.Is(err, repository.ErrMilestoneNotFound) ||
		errors.Is(err, repository.ErrNoteNotFound) ||
		errors.Is(err, repository.ErrTodoNotFound) ||
		errors.Is(err, repository.ErrCheckInNotFound)
}

// respondServiceError maps a service error onto the wire: validation
// failures name their fields, missing rows surface as 404, everything
// else is logged with operation context and hidden behind a generic 500.
func respondServiceError(w http.ResponseWriter, err error, op string, logAttrs ...any) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}

	if isNotFound(err) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	attrs := append([]any{"error", err}, logAttrs...)
	slog.Error(op, attrs...)
	respondError(w, http.StatusInternalServerError, "something went wrong")
}
