package services

//go:generate mockgen -source=export.go -destination=mock_export.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// ErrNoEmails is returned when there is nothing to export.
var ErrNoEmails = errors.New("no emails to export")

// EmailLister lists email submissions, newest first.
type EmailLister interface {
	List(ctx context.Context) ([]models.EmailAccess, error)
}

// ExportService lists and exports captured emails.
type ExportService struct {
	emails EmailLister
	now    func() time.Time
}

// NewExportService creates an ExportService. A nil lister yields an empty list.
func NewExportService(emails EmailLister) *ExportService {
	return &ExportService{emails: emails, now: time.Now}
}

// List returns every email submission, newest first.
func (svc *ExportService) List(ctx context.Context) ([]models.EmailAccess, error) {
	if svc.emails == nil {
		return []models.EmailAccess{}, nil
	}
	emails, err := svc.emails.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list emails", "error", err)
		return nil, err
	}
	return emails, nil
}

// Export renders every submission as CSV and names the file after today's date.
func (svc *ExportService) Export(ctx context.Context) (filename string, data []byte, err error) {
	emails, err := svc.List(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(emails) == 0 {
		return "", nil, ErrNoEmails
	}

	filename = "email_submissions_" + svc.now().UTC().Format("2006-01-02") + ".csv"
	return filename, []byte(RenderCSV(emails)), nil
}

// RenderCSV renders submissions with the header "Email,Submitted At,User Agent".
// Timestamps are ISO-8601 UTC with milliseconds, or "Recent" when unset. The
// user agent is always quoted and becomes "N/A" when empty. Lines are joined
// with "\n" and there is no trailing newline.
func RenderCSV(emails []models.EmailAccess) string {
	lines := make([]string, 0, len(emails)+1)
	lines = append(lines, "Email,Submitted At,User Agent")

	for _, e := range emails {
		submitted := "Recent"
		if e.SubmittedAt != nil {
			submitted = e.SubmittedAt.UTC().Format("2006-01-02T15:04:05.000Z")
		}

		ua := e.UserAgent
		if ua == "" {
			ua = "N/A"
		}
		ua = `"` + strings.ReplaceAll(ua, `"`, `""`) + `"`

		lines = append(lines, e.Email+","+submitted+","+ua)
	}

	return strings.Join(lines, "\n")
}
