package handlers

//go:generate mockgen -source=gate.go -destination=mock_gate.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/middlewares"
)

// PromptCopier releases prompts to unlocked sessions.
type PromptCopier interface {
	CopyPrompt(ctx context.Context, sessionID uuid.UUID, artworkID string, vis gallery.Visibility) (string, error)
}

// EmailSubmitter unlocks a session with an email.
type EmailSubmitter interface {
	SubmitEmail(ctx context.Context, sessionID uuid.UUID, email, userAgent string) (string, error)
}

// PromptResponse carries a released prompt
// swagger:model PromptResponse
type PromptResponse struct {
	// default: Cyberpunk city street at night
	Prompt string `json:"prompt"`
}

// EmailRequest is the body of an email submission
// swagger:model EmailRequest
type EmailRequest struct {
	// required: true
	// default: someone@gmail.com
	Email string `json:"email"`
}

// EmailResponse confirms an email submission
// swagger:model EmailResponse
type EmailResponse struct {
	// default: Thank you! You can now copy prompts.
	Message string `json:"message"`
	// Prompt held by an earlier copy attempt, if any
	Prompt string `json:"prompt,omitempty"`
}

// NewCopyPromptHandler returns the prompt of an artwork to unlocked sessions.
// @Summary Copy prompt
// @Description Locked sessions get 403 and the prompt is held until an email is submitted
// @Tags prompt-access
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} handlers.PromptResponse
// @Failure 403 {object} handlers.ErrorResponse "email required"
// @Failure 404 {object} handlers.ErrorResponse "Artwork not found"
// @Router /artworks/{id}/copy [post]
// @Security BearerAuth
func NewCopyPromptHandler(svc PromptCopier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		vis := gallery.VisibilityPublic
		if claims.IsAdmin() {
			vis = gallery.VisibilityAdmin
		}

		prompt, err := svc.CopyPrompt(r.Context(), claims.UserID, chi.URLParam(r, "id"), vis)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PromptResponse{Prompt: prompt})
	}
}

// NewSubmitEmailHandler records an email and unlocks prompt copying for the session.
// @Summary Submit email
// @Tags prompt-access
// @Accept json
// @Produce json
// @Param request body handlers.EmailRequest true "Email"
// @Success 201 {object} handlers.EmailResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or not allowed email"
// @Router /prompt-access [post]
// @Security BearerAuth
func NewSubmitEmailHandler(svc EmailSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req EmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		prompt, err := svc.SubmitEmail(r.Context(), claims.UserID, req.Email, r.UserAgent())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, EmailResponse{
			Message: "Thank you! You can now copy prompts.",
			Prompt:  prompt,
		})
	}
}
