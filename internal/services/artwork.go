package services

//go:generate mockgen -source=artwork.go -destination=mock_artwork.go -package=services

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/moderation"
)

// ArtworkSnapshotter exposes the live collection.
type ArtworkSnapshotter interface {
	Snapshot() []models.Artwork
}

// Refresher reloads the live collection after a committed write.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ArtworkReader looks a single artwork up.
type ArtworkReader interface {
	GetByID(ctx context.Context, id string) (*models.Artwork, error)
}

// ArtworkWriter persists new artworks.
type ArtworkWriter interface {
	Save(ctx context.Context, artwork models.Artwork) (*models.Artwork, error)
}

// MediaUploader stores an image and returns its public URL.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// EventPublisher announces committed changes.
type EventPublisher interface {
	Publish(ctx context.Context, artworkID, eventType string)
}

// ArtworkService serves gallery views and accepts uploads.
type ArtworkService struct {
	snapshots ArtworkSnapshotter
	refresher Refresher
	reader    ArtworkReader
	writer    ArtworkWriter
	uploader  MediaUploader
	events    EventPublisher
	baseURL   string
}

// NewArtworkService creates an ArtworkService. A nil writer or uploader
// puts the service in read-only mode.
func NewArtworkService(
	snapshots ArtworkSnapshotter,
	refresher Refresher,
	reader ArtworkReader,
	writer ArtworkWriter,
	uploader MediaUploader,
	events EventPublisher,
	baseURL string,
) *ArtworkService {
	return &ArtworkService{
		snapshots: snapshots,
		refresher: refresher,
		reader:    reader,
		writer:    writer,
		uploader:  uploader,
		events:    events,
		baseURL:   baseURL,
	}
}

// Configured reports whether uploads are accepted.
func (svc *ArtworkService) Configured() bool {
	return svc.writer != nil && svc.uploader != nil
}

// List returns the derived view of the current snapshot.
func (svc *ArtworkService) List(ctx context.Context, q gallery.Query) []models.Artwork {
	return gallery.Derive(svc.snapshots.Snapshot(), q)
}

// Models returns the model filter options of the current snapshot.
func (svc *ArtworkService) Models(ctx context.Context) []string {
	return gallery.Models(svc.snapshots.Snapshot())
}

// Get returns the artwork if the visibility rule allows it.
func (svc *ArtworkService) Get(ctx context.Context, id string, vis gallery.Visibility) (*models.Artwork, error) {
	artwork, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get artwork", "id", id, "error", err)
		return nil, err
	}
	if artwork == nil || !vis.Allows(*artwork) {
		return nil, ErrArtworkNotFound
	}
	return artwork, nil
}

// Share builds the shareable link of a publicly visible artwork.
func (svc *ArtworkService) Share(ctx context.Context, id string) (*models.ShareLinks, error) {
	artwork, err := svc.Get(ctx, id, gallery.VisibilityPublic)
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/#/artwork/%s", svc.baseURL, url.PathEscape(artwork.ID))
	title := artwork.Title()
	text := "Check out this AI artwork: " + title

	return &models.ShareLinks{
		URL:      link,
		Title:    title,
		Text:     text,
		Twitter:  "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) + "&url=" + url.QueryEscape(link),
		WhatsApp: "https://wa.me/?text=" + url.QueryEscape(text+" "+link),
	}, nil
}

// Submit validates the upload, stores the image and creates the record.
// Visitor uploads start pending; admin uploads are published directly.
// Nothing is uploaded or written when validation fails.
func (svc *ArtworkService) Submit(
	ctx context.Context,
	sub moderation.Submission,
	image io.Reader,
	uploaderID string,
	asAdmin bool,
) (*models.Artwork, error) {
	if !svc.Configured() {
		return nil, ErrNotConfigured
	}

	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		logger.Log.Infow("rejected submission", "uploader_id", uploaderID, "error", err)
		return nil, err
	}

	imageURL, err := svc.uploader.Upload(ctx, sub.ImageName, image)
	if err != nil {
		logger.Log.Errorw("failed to upload image", "uploader_id", uploaderID, "error", err)
		return nil, err
	}

	status := models.StatusPending
	if asAdmin {
		status = models.StatusApproved
	}

	saved, err := svc.writer.Save(ctx, models.Artwork{
		ImageURL:      imageURL,
		Prompt:        sub.Prompt,
		Description:   sub.Description,
		Model:         sub.Model,
		Status:        status,
		UploaderID:    uploaderID,
		UploaderName:  sub.UploaderName,
		UploaderEmail: sub.UploaderEmail,
	})
	if err != nil {
		logger.Log.Errorw("failed to save artwork", "uploader_id", uploaderID, "error", err)
		return nil, err
	}

	svc.events.Publish(ctx, saved.ID, models.EventArtworkCreated)
	refresh(ctx, svc.refresher)

	return saved, nil
}

// refresh reloads the store. A failure is logged; the write already succeeded.
func refresh(ctx context.Context, r Refresher) {
	if r == nil {
		return
	}
	if err := r.Refresh(ctx); err != nil {
		logger.Log.Warnw("store refresh after write failed", "error", err)
	}
}
