package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/prompt-gallery/internal/facades"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/moderation"
	"github.com/sbilibin2017/prompt-gallery/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Artwork not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrArtworkNotFound):
		writeError(w, http.StatusNotFound, "Artwork not found")
	case errors.Is(err, services.ErrEmailRequired):
		writeError(w, http.StatusForbidden, "email required")
	case errors.Is(err, services.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "Please enter a valid email address")
	case errors.Is(err, services.ErrDomainNotAllowed):
		writeError(w, http.StatusBadRequest, "Only @gmail.com and @icloud.com emails are allowed")
	case errors.Is(err, moderation.ErrInvalidSubmission):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrConfirmationRequired):
		writeError(w, http.StatusBadRequest, "confirmation required")
	case errors.Is(err, moderation.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrNoEmails):
		writeError(w, http.StatusNotFound, "No emails to export")
	case errors.Is(err, services.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Storage is not configured")
	case errors.Is(err, facades.ErrUploadFailed):
		writeError(w, http.StatusBadGateway, "Image upload failed, please try again")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
