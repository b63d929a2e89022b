package handlers

//go:generate mockgen -source=upload.go -destination=mock_upload.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/middlewares"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/moderation"
)

// ArtworkSubmitter accepts uploads.
type ArtworkSubmitter interface {
	Submit(ctx context.Context, sub moderation.Submission, image io.Reader, uploaderID string, asAdmin bool) (*models.Artwork, error)
}

// NewUploadArtworkHandler accepts a multipart upload with an "image" file and
// the text fields prompt, description, model, uploader_name and uploader_email.
// @Summary Upload artwork
// @Description Visitor uploads wait for moderation; admin uploads are published directly
// @Tags artworks
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Param prompt formData string true "Prompt"
// @Param description formData string true "Description"
// @Param model formData string false "Model"
// @Param uploader_name formData string true "Your name"
// @Param uploader_email formData string true "Your email"
// @Success 201 {object} handlers.AdminArtwork
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid field"
// @Failure 502 {object} handlers.ErrorResponse "Image upload failed"
// @Failure 503 {object} handlers.ErrorResponse "Storage is not configured"
// @Router /artworks [post]
// @Security BearerAuth
func NewUploadArtworkHandler(svc ArtworkSubmitter, maxBytes int64, asAdmin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "image is too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		defer r.MultipartForm.RemoveAll()

		sub := moderation.Submission{
			Prompt:        r.FormValue("prompt"),
			Description:   r.FormValue("description"),
			Model:         r.FormValue("model"),
			UploaderName:  r.FormValue("uploader_name"),
			UploaderEmail: r.FormValue("uploader_email"),
		}

		var image io.Reader = http.NoBody
		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			image = file
			sub.ImageName = header.Filename
			sub.ImageSize = header.Size
		case errors.Is(err, http.ErrMissingFile):
		default:
			logger.Log.Infow("unreadable image part", "err", err)
			writeError(w, http.StatusBadRequest, "invalid image")
			return
		}

		artwork, err := svc.Submit(r.Context(), sub, image, claims.UserID.String(), asAdmin)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAdmin(*artwork))
	}
}
