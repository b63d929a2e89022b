package services

//go:generate mockgen -source=gate.go -destination=mock_gate.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/validator"
)

var (
	// ErrEmailRequired is returned when a session copies a prompt before submitting an email.
	ErrEmailRequired = errors.New("email required")
	// ErrInvalidEmail is returned for an email that fails the syntax check.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrDomainNotAllowed is returned for an email outside the allowed domains.
	ErrDomainNotAllowed = errors.New("email domain not allowed")
)

var emailValidator = validator.New()

// emailSubmission is a normalized gate email checked by emailValidator.
type emailSubmission struct {
	Email string `json:"email" validate:"basic_email,allowed_domain"`
}

// SessionStore keeps per-session gate state.
type SessionStore interface {
	Grant(ctx context.Context, sessionID uuid.UUID) error
	IsGranted(ctx context.Context, sessionID uuid.UUID) (bool, error)
	SetPending(ctx context.Context, sessionID uuid.UUID, prompt string) error
	TakePending(ctx context.Context, sessionID uuid.UUID) (string, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// EmailWriter records email submissions.
type EmailWriter interface {
	Save(ctx context.Context, email, userAgent string) error
}

// GateService guards prompt copying behind an email submission.
type GateService struct {
	reader   ArtworkReader
	sessions SessionStore
	emails   EmailWriter
}

// NewGateService creates a GateService. A nil emails writer disables submissions.
func NewGateService(reader ArtworkReader, sessions SessionStore, emails EmailWriter) *GateService {
	return &GateService{
		reader:   reader,
		sessions: sessions,
		emails:   emails,
	}
}

// CopyPrompt returns the prompt of an artwork when the session is unlocked.
// Otherwise the prompt is held for the session and ErrEmailRequired is returned.
func (svc *GateService) CopyPrompt(ctx context.Context, sessionID uuid.UUID, artworkID string, vis gallery.Visibility) (string, error) {
	artwork, err := svc.reader.GetByID(ctx, artworkID)
	if err != nil {
		logger.Log.Errorw("failed to get artwork", "id", artworkID, "error", err)
		return "", err
	}
	if artwork == nil || !vis.Allows(*artwork) {
		return "", ErrArtworkNotFound
	}

	granted, err := svc.sessions.IsGranted(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to check prompt access", "session_id", sessionID, "error", err)
		return "", err
	}
	if granted {
		return artwork.Prompt, nil
	}

	if err := svc.sessions.SetPending(ctx, sessionID, artwork.Prompt); err != nil {
		logger.Log.Errorw("failed to hold pending prompt", "session_id", sessionID, "error", err)
		return "", err
	}
	return "", ErrEmailRequired
}

// SubmitEmail validates and records an email, unlocks the session and
// releases the prompt held by an earlier copy attempt, if any.
func (svc *GateService) SubmitEmail(ctx context.Context, sessionID uuid.UUID, email, userAgent string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := emailValidator.Validate(emailSubmission{Email: email}); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) && verr.Errors["email"] == "allowed_domain" {
			return "", ErrDomainNotAllowed
		}
		return "", ErrInvalidEmail
	}
	if svc.emails == nil {
		return "", ErrNotConfigured
	}

	if err := svc.emails.Save(ctx, email, userAgent); err != nil {
		logger.Log.Errorw("failed to save email", "session_id", sessionID, "error", err)
		return "", err
	}

	if err := svc.sessions.Grant(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to grant prompt access", "session_id", sessionID, "error", err)
		return "", err
	}

	prompt, err := svc.sessions.TakePending(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to release pending prompt", "session_id", sessionID, "error", err)
		return "", err
	}

	return prompt, nil
}

// EndSession drops the gate state of a session.
func (svc *GateService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Clear(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to clear session", "session_id", sessionID, "error", err)
		return err
	}
	return nil
}
