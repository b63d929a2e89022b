package handlers

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// Moderator applies moderation actions.
type Moderator interface {
	Approve(ctx context.Context, id string) (*models.Artwork, error)
	Reject(ctx context.Context, id string, confirmed bool) (*models.Artwork, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// StatsProvider summarises the collection.
type StatsProvider interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// EmailExporter lists and exports captured emails.
type EmailExporter interface {
	List(ctx context.Context) ([]models.EmailAccess, error)
	Export(ctx context.Context) (filename string, data []byte, err error)
}

// ConfirmRequest confirms a destructive action
// swagger:model ConfirmRequest
type ConfirmRequest struct {
	// default: true
	Confirm bool `json:"confirm"`
}

// AdminArtworkListResponse is the moderation queue
// swagger:model AdminArtworkListResponse
type AdminArtworkListResponse struct {
	Artworks []AdminArtwork `json:"artworks"`
	Models   []string       `json:"models"`
}

// EmailListResponse lists email submissions
// swagger:model EmailListResponse
type EmailListResponse struct {
	Emails []models.EmailAccess `json:"emails"`
}

// NewAdminListArtworksHandler lists every artwork with its status and allowed actions.
// @Summary List all artworks
// @Tags admin
// @Produce json
// @Param search query string false "Search text"
// @Param model query string false "Model filter"
// @Param sort query string false "newest or oldest"
// @Success 200 {object} handlers.AdminArtworkListResponse
// @Router /admin/artworks [get]
// @Security BearerAuth
func NewAdminListArtworksHandler(svc ArtworkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		records := svc.List(ctx, queryFromRequest(r, gallery.VisibilityAdmin))

		writeJSON(w, http.StatusOK, AdminArtworkListResponse{
			Artworks: toAdminList(records),
			Models:   svc.Models(ctx),
		})
	}
}

// NewApproveArtworkHandler publishes a pending artwork.
// @Summary Approve artwork
// @Tags admin
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} handlers.AdminArtwork
// @Failure 404 {object} handlers.ErrorResponse "Artwork not found"
// @Failure 409 {object} handlers.ErrorResponse "Invalid transition"
// @Router /admin/artworks/{id}/approve [post]
// @Security BearerAuth
func NewApproveArtworkHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artwork, err := svc.Approve(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdmin(*artwork))
	}
}

// NewRejectArtworkHandler hides a pending artwork. The body must confirm the action.
// @Summary Reject artwork
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Artwork ID"
// @Param request body handlers.ConfirmRequest true "Confirmation"
// @Success 200 {object} handlers.AdminArtwork
// @Failure 400 {object} handlers.ErrorResponse "confirmation required"
// @Failure 404 {object} handlers.ErrorResponse "Artwork not found"
// @Failure 409 {object} handlers.ErrorResponse "Invalid transition"
// @Router /admin/artworks/{id}/reject [post]
// @Security BearerAuth
func NewRejectArtworkHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		artwork, err := svc.Reject(r.Context(), chi.URLParam(r, "id"), req.Confirm)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdmin(*artwork))
	}
}

// NewDeleteArtworkHandler removes an artwork. Requires ?confirm=true.
// @Summary Delete artwork
// @Tags admin
// @Param id path string true "Artwork ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "confirmation required"
// @Failure 404 {object} handlers.ErrorResponse "Artwork not found"
// @Router /admin/artworks/{id} [delete]
// @Security BearerAuth
func NewDeleteArtworkHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id"), confirmed); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewStatsHandler returns dashboard totals.
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} models.Stats
// @Router /admin/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewListEmailsHandler lists email submissions, newest first.
// @Summary List emails
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.EmailListResponse
// @Router /admin/emails [get]
// @Security BearerAuth
func NewListEmailsHandler(svc EmailExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emails, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if emails == nil {
			emails = []models.EmailAccess{}
		}
		writeJSON(w, http.StatusOK, EmailListResponse{Emails: emails})
	}
}

// NewExportEmailsHandler downloads email submissions as CSV.
// @Summary Export emails
// @Tags admin
// @Produce text/csv
// @Success 200 {file} file
// @Failure 404 {object} handlers.ErrorResponse "No emails to export"
// @Router /admin/emails/export [get]
// @Security BearerAuth
func NewExportEmailsHandler(svc EmailExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := svc.Export(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
