package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/services"
)

type gateMocks struct {
	reader   *services.MockArtworkReader
	sessions *services.MockSessionStore
	emails   *services.MockEmailWriter
}

func newGateService(t *testing.T) (*services.GateService, gateMocks) {
	ctrl := gomock.NewController(t)
	m := gateMocks{
		reader:   services.NewMockArtworkReader(ctrl),
		sessions: services.NewMockSessionStore(ctrl),
		emails:   services.NewMockEmailWriter(ctrl),
	}
	return services.NewGateService(m.reader, m.sessions, m.emails), m
}

func TestGateService_CopyPrompt(t *testing.T) {
	session := uuid.New()
	artwork := &models.Artwork{ID: "a1", Prompt: "a fox in snow", Status: models.StatusApproved}

	t.Run("locked session holds the prompt", func(t *testing.T) {
		svc, m := newGateService(t)

		m.reader.EXPECT().GetByID(gomock.Any(), "a1").Return(artwork, nil)
		m.sessions.EXPECT().IsGranted(gomock.Any(), session).Return(false, nil)
		m.sessions.EXPECT().SetPending(gomock.Any(), session, "a fox in snow").Return(nil)

		prompt, err := svc.CopyPrompt(context.Background(), session, "a1", gallery.VisibilityPublic)
		assert.ErrorIs(t, err, services.ErrEmailRequired)
		assert.Empty(t, prompt, "prompt is never revealed before the gate opens")
	})

	t.Run("granted session copies directly", func(t *testing.T) {
		svc, m := newGateService(t)

		m.reader.EXPECT().GetByID(gomock.Any(), "a1").Return(artwork, nil)
		m.sessions.EXPECT().IsGranted(gomock.Any(), session).Return(true, nil)

		prompt, err := svc.CopyPrompt(context.Background(), session, "a1", gallery.VisibilityPublic)
		require.NoError(t, err)
		assert.Equal(t, "a fox in snow", prompt)
	})

	t.Run("pending artwork is not public", func(t *testing.T) {
		svc, m := newGateService(t)

		m.reader.EXPECT().GetByID(gomock.Any(), "a1").Return(&models.Artwork{ID: "a1", Status: models.StatusPending}, nil)

		_, err := svc.CopyPrompt(context.Background(), session, "a1", gallery.VisibilityPublic)
		assert.ErrorIs(t, err, services.ErrArtworkNotFound)
	})

	t.Run("session store failure", func(t *testing.T) {
		svc, m := newGateService(t)

		m.reader.EXPECT().GetByID(gomock.Any(), "a1").Return(artwork, nil)
		m.sessions.EXPECT().IsGranted(gomock.Any(), session).Return(false, assert.AnError)

		_, err := svc.CopyPrompt(context.Background(), session, "a1", gallery.VisibilityPublic)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGateService_SubmitEmail(t *testing.T) {
	session := uuid.New()

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "not an email", email: "not-an-email", wantErr: services.ErrInvalidEmail},
		{name: "missing tld", email: "ann@gmail", wantErr: services.ErrInvalidEmail},
		{name: "blank", email: "   ", wantErr: services.ErrInvalidEmail},
		{name: "other domain", email: "ann@yahoo.com", wantErr: services.ErrDomainNotAllowed},
		{name: "lookalike domain", email: "ann@notgmail.com", wantErr: services.ErrDomainNotAllowed},
		{name: "syntax checked before domain", email: "ann@@yahoo.com", wantErr: services.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newGateService(t)

			prompt, err := svc.SubmitEmail(context.Background(), session, tt.email, "UA")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, prompt)
		})
	}

	t.Run("valid email unlocks and releases the pending prompt", func(t *testing.T) {
		svc, m := newGateService(t)

		gomock.InOrder(
			m.emails.EXPECT().Save(gomock.Any(), "ann@icloud.com", "UA").Return(nil),
			m.sessions.EXPECT().Grant(gomock.Any(), session).Return(nil),
			m.sessions.EXPECT().TakePending(gomock.Any(), session).Return("a fox in snow", nil),
		)

		prompt, err := svc.SubmitEmail(context.Background(), session, "  Ann@ICLOUD.com ", "UA")
		require.NoError(t, err)
		assert.Equal(t, "a fox in snow", prompt)
	})

	t.Run("store failure does not unlock", func(t *testing.T) {
		svc, m := newGateService(t)

		m.emails.EXPECT().Save(gomock.Any(), "ann@gmail.com", "UA").Return(assert.AnError)

		_, err := svc.SubmitEmail(context.Background(), session, "ann@gmail.com", "UA")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("read-only mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewGateService(services.NewMockArtworkReader(ctrl), services.NewMockSessionStore(ctrl), nil)

		_, err := svc.SubmitEmail(context.Background(), session, "ann@gmail.com", "UA")
		assert.ErrorIs(t, err, services.ErrNotConfigured)
	})
}

func TestGateService_EndSession(t *testing.T) {
	svc, m := newGateService(t)
	session := uuid.New()

	m.sessions.EXPECT().Clear(gomock.Any(), session).Return(nil)
	assert.NoError(t, svc.EndSession(context.Background(), session))

	m.sessions.EXPECT().Clear(gomock.Any(), session).Return(assert.AnError)
	assert.ErrorIs(t, svc.EndSession(context.Background(), session), assert.AnError)
}
