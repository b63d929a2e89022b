package services

//go:generate mockgen -source=moderation.go -destination=mock_moderation.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/moderation"
)

// ErrConfirmationRequired is returned when reject or delete is not confirmed.
var ErrConfirmationRequired = errors.New("confirmation required")

// ArtworkStatusWriter applies moderation writes.
type ArtworkStatusWriter interface {
	UpdateStatus(ctx context.Context, id string, from, to models.Status) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ModerationService applies admin moderation actions.
type ModerationService struct {
	reader    ArtworkReader
	writer    ArtworkStatusWriter
	refresher Refresher
	events    EventPublisher
}

func NewModerationService(
	reader ArtworkReader,
	writer ArtworkStatusWriter,
	refresher Refresher,
	events EventPublisher,
) *ModerationService {
	return &ModerationService{
		reader:    reader,
		writer:    writer,
		refresher: refresher,
		events:    events,
	}
}

// Approve publishes a pending artwork. Approving an approved artwork is a no-op.
func (svc *ModerationService) Approve(ctx context.Context, id string) (*models.Artwork, error) {
	return svc.apply(ctx, id, moderation.ActionApprove, true)
}

// Reject hides a pending artwork.
func (svc *ModerationService) Reject(ctx context.Context, id string, confirmed bool) (*models.Artwork, error) {
	return svc.apply(ctx, id, moderation.ActionReject, confirmed)
}

// Delete removes an artwork in any state.
func (svc *ModerationService) Delete(ctx context.Context, id string, confirmed bool) error {
	_, err := svc.apply(ctx, id, moderation.ActionDelete, confirmed)
	return err
}

func (svc *ModerationService) apply(ctx context.Context, id string, action moderation.Action, confirmed bool) (*models.Artwork, error) {
	if svc.writer == nil {
		return nil, ErrNotConfigured
	}
	if action.RequiresConfirmation() && !confirmed {
		return nil, ErrConfirmationRequired
	}

	current, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load artwork for moderation", "id", id, "action", action, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrArtworkNotFound
	}

	if action == moderation.ActionDelete {
		ok, err := svc.writer.Delete(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to delete artwork", "id", id, "error", err)
			return nil, err
		}
		if !ok {
			return nil, ErrArtworkNotFound
		}
		svc.committed(ctx, id, action)
		return nil, nil
	}

	to, changed, err := moderation.Transition(current.Status, action)
	if err != nil {
		return nil, err
	}
	if !changed {
		return current, nil
	}

	ok, err := svc.writer.UpdateStatus(ctx, id, current.Status, to)
	if err != nil {
		logger.Log.Errorw("failed to update artwork status", "id", id, "action", action, "error", err)
		return nil, err
	}
	if !ok {
		return svc.resolveConflict(ctx, id, action, to)
	}

	current.Status = to
	current.Version++
	svc.committed(ctx, id, action)

	return current, nil
}

// resolveConflict handles a status write that lost a race with another admin.
func (svc *ModerationService) resolveConflict(ctx context.Context, id string, action moderation.Action, to models.Status) (*models.Artwork, error) {
	latest, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, ErrArtworkNotFound
	}
	if latest.Status.Effective() == to {
		return latest, nil
	}

	logger.Log.Warnw("moderation conflict", "id", id, "action", action, "status", latest.Status.Effective())
	return nil, fmt.Errorf("%w: artwork is already %s", moderation.ErrInvalidTransition, latest.Status.Effective())
}

func (svc *ModerationService) committed(ctx context.Context, id string, action moderation.Action) {
	logger.Log.Infow("artwork moderated", "id", id, "action", action)
	svc.events.Publish(ctx, id, action.Event())
	refresh(ctx, svc.refresher)
}
