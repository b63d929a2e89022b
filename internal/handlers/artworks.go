package handlers

//go:generate mockgen -source=artworks.go -destination=mock_artworks.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// ArtworkLister derives gallery views from the live collection.
type ArtworkLister interface {
	List(ctx context.Context, q gallery.Query) []models.Artwork
	Models(ctx context.Context) []string
}

// ArtworkGetter looks a single artwork up.
type ArtworkGetter interface {
	Get(ctx context.Context, id string, vis gallery.Visibility) (*models.Artwork, error)
}

// ArtworkSharer builds share links.
type ArtworkSharer interface {
	Share(ctx context.Context, id string) (*models.ShareLinks, error)
}

// ArtworkListResponse is the public gallery view
// swagger:model ArtworkListResponse
type ArtworkListResponse struct {
	Artworks []PublicArtwork `json:"artworks"`
	Models   []string        `json:"models"`
	// Set when the gallery runs on sample data
	Warning string `json:"warning,omitempty"`
}

// ModelsResponse lists the model filter options
// swagger:model ModelsResponse
type ModelsResponse struct {
	// default: ["All"]
	Models []string `json:"models"`
}

func queryFromRequest(r *http.Request, vis gallery.Visibility) gallery.Query {
	params := r.URL.Query()
	return gallery.Query{
		Search:     params.Get("search"),
		Model:      params.Get("model"),
		Sort:       gallery.ParseSortOrder(params.Get("sort")),
		Visibility: vis,
	}
}

// NewListArtworksHandler returns the public gallery.
// @Summary List artworks
// @Description Approved artworks filtered by search and model, sorted by creation time
// @Tags artworks
// @Produce json
// @Param search query string false "Case-insensitive text in prompt, description or model"
// @Param model query string false "Exact model name, All disables the filter"
// @Param sort query string false "newest (default) or oldest"
// @Success 200 {object} handlers.ArtworkListResponse
// @Router /artworks [get]
func NewListArtworksHandler(svc ArtworkLister, warning string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		records := svc.List(ctx, queryFromRequest(r, gallery.VisibilityPublic))

		writeJSON(w, http.StatusOK, ArtworkListResponse{
			Artworks: toPublicList(records),
			Models:   svc.Models(ctx),
			Warning:  warning,
		})
	}
}

// NewListModelsHandler returns the model filter options.
// @Summary List models
// @Tags artworks
// @Produce json
// @Success 200 {object} handlers.ModelsResponse
// @Router /artworks/models [get]
func NewListModelsHandler(svc ArtworkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ModelsResponse{Models: svc.Models(r.Context())})
	}
}

// NewGetArtworkHandler resolves a shared link.
// @Summary Get artwork
// @Tags artworks
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} handlers.PublicArtwork
// @Failure 404 {object} handlers.ErrorResponse "Artwork not found"
// @Router /artworks/{id} [get]
func NewGetArtworkHandler(svc ArtworkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artwork, err := svc.Get(r.Context(), chi.URLParam(r, "id"), gallery.VisibilityPublic)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPublic(*artwork))
	}
}

// NewShareArtworkHandler returns the share link and social intents of an artwork.
// @Summary Share artwork
// @Tags artworks
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} models.ShareLinks
// @Failure 404 {object} handlers.ErrorResponse "Artwork not found"
// @Router /artworks/{id}/share [get]
func NewShareArtworkHandler(svc ArtworkSharer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := svc.Share(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, links)
	}
}
