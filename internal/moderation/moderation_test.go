package moderation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name        string
		from        models.Status
		action      Action
		wantTo      models.Status
		wantChanged bool
		wantErr     error
	}{
		{name: "approve pending", from: models.StatusPending, action: ActionApprove, wantTo: models.StatusApproved, wantChanged: true},
		{name: "approve approved is a no-op", from: models.StatusApproved, action: ActionApprove, wantTo: models.StatusApproved},
		{name: "approve legacy is a no-op", from: models.StatusLegacy, action: ActionApprove, wantTo: models.StatusLegacy},
		{name: "approve rejected", from: models.StatusRejected, action: ActionApprove, wantTo: models.StatusRejected, wantErr: ErrInvalidTransition},
		{name: "reject pending", from: models.StatusPending, action: ActionReject, wantTo: models.StatusRejected, wantChanged: true},
		{name: "reject rejected is a no-op", from: models.StatusRejected, action: ActionReject, wantTo: models.StatusRejected},
		{name: "reject approved", from: models.StatusApproved, action: ActionReject, wantTo: models.StatusApproved, wantErr: ErrInvalidTransition},
		{name: "reject legacy", from: models.StatusLegacy, action: ActionReject, wantTo: models.StatusLegacy, wantErr: ErrInvalidTransition},
		{name: "delete pending", from: models.StatusPending, action: ActionDelete, wantTo: models.StatusPending, wantChanged: true},
		{name: "delete approved", from: models.StatusApproved, action: ActionDelete, wantTo: models.StatusApproved, wantChanged: true},
		{name: "delete rejected", from: models.StatusRejected, action: ActionDelete, wantTo: models.StatusRejected, wantChanged: true},
		{name: "unknown action", from: models.StatusPending, action: Action("resubmit"), wantTo: models.StatusPending, wantErr: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, changed, err := Transition(tt.from, tt.action)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantTo, to)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestTransition_NeverReturnsToPending(t *testing.T) {
	for _, from := range []models.Status{models.StatusLegacy, models.StatusApproved, models.StatusRejected} {
		for _, action := range []Action{ActionApprove, ActionReject} {
			to, _, _ := Transition(from, action)
			assert.NotEqual(t, models.StatusPending, to)
		}
	}
}

func TestActions(t *testing.T) {
	assert.Equal(t, []Action{ActionApprove, ActionReject, ActionDelete}, Actions(models.StatusPending))
	assert.Equal(t, []Action{ActionDelete}, Actions(models.StatusApproved))
	assert.Equal(t, []Action{ActionDelete}, Actions(models.StatusLegacy))
	assert.Equal(t, []Action{ActionDelete}, Actions(models.StatusRejected))
}

func TestRequiresConfirmation(t *testing.T) {
	assert.False(t, ActionApprove.RequiresConfirmation())
	assert.True(t, ActionReject.RequiresConfirmation())
	assert.True(t, ActionDelete.RequiresConfirmation())
}

func TestSubmission_Validate(t *testing.T) {
	valid := Submission{
		ImageName:     "robot.png",
		ImageSize:     2048,
		Prompt:        "A cute robot gardener",
		Description:   "Eco-bot",
		UploaderName:  "Ann",
		UploaderEmail: "ann@example.com",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(s *Submission)
		field  string
	}{
		{name: "no image", mutate: func(s *Submission) { s.ImageName = ""; s.ImageSize = 0 }, field: "image"},
		{name: "empty image", mutate: func(s *Submission) { s.ImageSize = 0 }, field: "image_size"},
		{name: "no prompt", mutate: func(s *Submission) { s.Prompt = "  " }, field: "prompt"},
		{name: "no description", mutate: func(s *Submission) { s.Description = "" }, field: "description"},
		{name: "no uploader name", mutate: func(s *Submission) { s.UploaderName = "" }, field: "uploader_name"},
		{name: "no uploader email", mutate: func(s *Submission) { s.UploaderEmail = "" }, field: "uploader_email"},
		{name: "malformed uploader email", mutate: func(s *Submission) { s.UploaderEmail = "ann" }, field: "uploader_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			assert.True(t, errors.Is(err, ErrInvalidSubmission))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSubmission_Normalize(t *testing.T) {
	s := Submission{Prompt: "  p  ", Model: " "}.Normalize()
	assert.Equal(t, "p", s.Prompt)
	assert.Equal(t, models.DefaultModel, s.Model)

	s = Submission{Model: "DALL-E 3"}.Normalize()
	assert.Equal(t, "DALL-E 3", s.Model)
}
