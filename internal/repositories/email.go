package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// EmailRepository stores emails captured by the prompt-copy gate.
type EmailRepository struct {
	db *sqlx.DB
}

func NewEmailRepository(db *sqlx.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

// Save appends a submission. Duplicates are kept.
func (r *EmailRepository) Save(ctx context.Context, email, userAgent string) error {
	query := `
		INSERT INTO prompt_access_emails (email, user_agent, submitted_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{email, userAgent}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"save email access",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// List returns every submission, newest first.
func (r *EmailRepository) List(ctx context.Context) ([]models.EmailAccess, error) {
	query := `
		SELECT id, email, submitted_at, user_agent
		FROM prompt_access_emails
		ORDER BY submitted_at DESC NULLS LAST
	`

	var emails []models.EmailAccess
	err := r.db.SelectContext(ctx, &emails, query)

	logger.Log.Infow(
		"list email access",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(emails),
		"error", err,
	)

	return emails, err
}

// Count returns the number of stored submissions.
func (r *EmailRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM prompt_access_emails`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"count email access",
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}
