package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/prompt-gallery/internal/facades"
	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/moderation"
	"github.com/sbilibin2017/prompt-gallery/internal/services"
)

func at(sec int64) *time.Time {
	t := time.Unix(sec, 0).UTC()
	return &t
}

func sampleArtworks() []models.Artwork {
	return []models.Artwork{
		{ID: "a", Prompt: "neon city", Model: "Midjourney v6", Status: models.StatusApproved, CreatedAt: at(300)},
		{ID: "b", Prompt: "robot garden", Model: "DALL-E 3", Status: models.StatusPending, CreatedAt: at(200)},
		{ID: "c", Prompt: "old photo", Model: "DALL-E 3", CreatedAt: at(100)},
		{ID: "d", Prompt: "hidden", Model: "Flux", Status: models.StatusRejected, CreatedAt: at(400)},
	}
}

type artworkMocks struct {
	snapshots *services.MockArtworkSnapshotter
	refresher *services.MockRefresher
	reader    *services.MockArtworkReader
	writer    *services.MockArtworkWriter
	uploader  *services.MockMediaUploader
	events    *services.MockEventPublisher
}

func newArtworkService(t *testing.T) (*services.ArtworkService, artworkMocks) {
	ctrl := gomock.NewController(t)
	m := artworkMocks{
		snapshots: services.NewMockArtworkSnapshotter(ctrl),
		refresher: services.NewMockRefresher(ctrl),
		reader:    services.NewMockArtworkReader(ctrl),
		writer:    services.NewMockArtworkWriter(ctrl),
		uploader:  services.NewMockMediaUploader(ctrl),
		events:    services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewArtworkService(m.snapshots, m.refresher, m.reader, m.writer, m.uploader, m.events, "https://gallery.example")
	return svc, m
}

func TestArtworkService_List(t *testing.T) {
	svc, m := newArtworkService(t)
	m.snapshots.EXPECT().Snapshot().Return(sampleArtworks()).Times(2)

	public := svc.List(context.Background(), gallery.Query{})
	assert.Equal(t, []string{"a", "c"}, ids(public))

	admin := svc.List(context.Background(), gallery.Query{Visibility: gallery.VisibilityAdmin, Model: "DALL-E 3", Sort: gallery.SortOldest})
	assert.Equal(t, []string{"c", "b"}, ids(admin))
}

func TestArtworkService_Models(t *testing.T) {
	svc, m := newArtworkService(t)
	m.snapshots.EXPECT().Snapshot().Return(sampleArtworks())

	assert.Equal(t, []string{"All", "Midjourney v6", "DALL-E 3", "Flux"}, svc.Models(context.Background()))
}

func TestArtworkService_Get(t *testing.T) {
	tests := []struct {
		name    string
		record  *models.Artwork
		err     error
		vis     gallery.Visibility
		wantErr error
	}{
		{name: "approved is public", record: &models.Artwork{ID: "x", Status: models.StatusApproved}},
		{name: "legacy is public", record: &models.Artwork{ID: "x"}},
		{name: "pending is hidden from the public", record: &models.Artwork{ID: "x", Status: models.StatusPending}, wantErr: services.ErrArtworkNotFound},
		{name: "pending is visible to admins", record: &models.Artwork{ID: "x", Status: models.StatusPending}, vis: gallery.VisibilityAdmin},
		{name: "missing", wantErr: services.ErrArtworkNotFound},
		{name: "reader error", err: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newArtworkService(t)
			m.reader.EXPECT().GetByID(gomock.Any(), "x").Return(tt.record, tt.err)

			got, err := svc.Get(context.Background(), "x", tt.vis)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", got.ID)
		})
	}
}

func TestArtworkService_Share(t *testing.T) {
	svc, m := newArtworkService(t)
	m.reader.EXPECT().GetByID(gomock.Any(), "abc").Return(&models.Artwork{ID: "abc", Status: models.StatusApproved}, nil)

	links, err := svc.Share(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "https://gallery.example/#/artwork/abc", links.URL)
	assert.Equal(t, "AI Artwork", links.Title)
	assert.Equal(t, "Check out this AI artwork: AI Artwork", links.Text)
	assert.True(t, strings.HasPrefix(links.Twitter, "https://twitter.com/intent/tweet?text=Check+out+this+AI+artwork"))
	assert.Contains(t, links.Twitter, "&url=https%3A%2F%2Fgallery.example%2F%23%2Fartwork%2Fabc")
	assert.True(t, strings.HasPrefix(links.WhatsApp, "https://wa.me/?text="))
}

func validSubmission() moderation.Submission {
	return moderation.Submission{
		ImageName:     "fox.png",
		ImageSize:     42,
		Prompt:        "  a fox in snow ",
		Description:   "Fox",
		UploaderName:  "Ann",
		UploaderEmail: "ann@gmail.com",
	}
}

func TestArtworkService_Submit(t *testing.T) {
	t.Run("visitor upload starts pending", func(t *testing.T) {
		svc, m := newArtworkService(t)

		m.uploader.EXPECT().Upload(gomock.Any(), "fox.png", gomock.Any()).Return("https://cdn/fox.png", nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a models.Artwork) (*models.Artwork, error) {
			assert.Equal(t, models.StatusPending, a.Status)
			assert.Equal(t, "a fox in snow", a.Prompt)
			assert.Equal(t, models.DefaultModel, a.Model)
			assert.Equal(t, "https://cdn/fox.png", a.ImageURL)
			assert.Equal(t, "sess-1", a.UploaderID)
			a.ID = "new"
			a.CreatedAt = at(1)
			return &a, nil
		})
		m.events.EXPECT().Publish(gomock.Any(), "new", models.EventArtworkCreated)
		m.refresher.EXPECT().Refresh(gomock.Any()).Return(nil)

		saved, err := svc.Submit(context.Background(), validSubmission(), strings.NewReader("img"), "sess-1", false)
		require.NoError(t, err)
		assert.Equal(t, "new", saved.ID)
	})

	t.Run("admin upload is published directly", func(t *testing.T) {
		svc, m := newArtworkService(t)

		m.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/fox.png", nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a models.Artwork) (*models.Artwork, error) {
			assert.Equal(t, models.StatusApproved, a.Status)
			a.ID = "new"
			return &a, nil
		})
		m.events.EXPECT().Publish(gomock.Any(), "new", models.EventArtworkCreated)
		m.refresher.EXPECT().Refresh(gomock.Any()).Return(assert.AnError)

		_, err := svc.Submit(context.Background(), validSubmission(), strings.NewReader("img"), "admin", true)
		assert.NoError(t, err, "refresh failure does not fail the write")
	})

	t.Run("missing fields never reach the media host", func(t *testing.T) {
		svc, _ := newArtworkService(t)

		sub := validSubmission()
		sub.Description = "   "
		_, err := svc.Submit(context.Background(), sub, strings.NewReader("img"), "sess-1", false)
		assert.ErrorIs(t, err, moderation.ErrInvalidSubmission)
	})

	t.Run("upload failure writes nothing", func(t *testing.T) {
		svc, m := newArtworkService(t)

		m.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("", facades.ErrUploadFailed)

		_, err := svc.Submit(context.Background(), validSubmission(), strings.NewReader("img"), "sess-1", false)
		assert.ErrorIs(t, err, facades.ErrUploadFailed)
	})

	t.Run("save failure publishes nothing", func(t *testing.T) {
		svc, m := newArtworkService(t)

		m.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/fox.png", nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := svc.Submit(context.Background(), validSubmission(), strings.NewReader("img"), "sess-1", false)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("read-only mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewArtworkService(services.NewMockArtworkSnapshotter(ctrl), nil, services.NewMockArtworkReader(ctrl), nil, nil, nil, "")

		assert.False(t, svc.Configured())
		_, err := svc.Submit(context.Background(), validSubmission(), strings.NewReader("img"), "sess-1", false)
		assert.ErrorIs(t, err, services.ErrNotConfigured)
	})
}

func ids(records []models.Artwork) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
