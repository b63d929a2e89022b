package moderation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/validator"
)

// ErrInvalidSubmission is returned when a required field is missing or malformed.
var ErrInvalidSubmission = errors.New("missing or invalid required field")

var submissionValidator = validator.New()

// Submission is an upload request before any remote call is made.
type Submission struct {
	ImageName     string `json:"image" validate:"notblank"`
	ImageSize     int64  `json:"image_size" validate:"gt=0"`
	Prompt        string `json:"prompt" validate:"notblank"`
	Description   string `json:"description" validate:"notblank"`
	Model         string `json:"model"`
	UploaderName  string `json:"uploader_name" validate:"notblank"`
	UploaderEmail string `json:"uploader_email" validate:"notblank,basic_email"`
}

// Normalize trims text fields and fills in the default model.
func (s Submission) Normalize() Submission {
	s.Prompt = strings.TrimSpace(s.Prompt)
	s.Description = strings.TrimSpace(s.Description)
	s.Model = strings.TrimSpace(s.Model)
	s.UploaderName = strings.TrimSpace(s.UploaderName)
	s.UploaderEmail = strings.TrimSpace(s.UploaderEmail)
	if s.Model == "" {
		s.Model = models.DefaultModel
	}
	return s
}

// Validate checks required fields. The error wraps ErrInvalidSubmission and names
// every failing field.
func (s Submission) Validate() error {
	err := submissionValidator.Validate(s)
	if err == nil {
		return nil
	}
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%w: %s", ErrInvalidSubmission, strings.Join(verr.Fields(), ", "))
	}
	return err
}
