package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/teris-io/shortid"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

const artworkColumns = `id, image_url, prompt, description, model, status, created_at,
	uploader_id, uploader_name, uploader_email, likes, version`

// ArtworkReadRepository reads artworks.
type ArtworkReadRepository struct {
	db *sqlx.DB
}

func NewArtworkReadRepository(db *sqlx.DB) *ArtworkReadRepository {
	return &ArtworkReadRepository{db: db}
}

// ListArtworks returns every artwork, newest first.
func (r *ArtworkReadRepository) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks ORDER BY created_at DESC NULLS LAST, id`

	var artworks []models.Artwork
	err := r.db.SelectContext(ctx, &artworks, query)

	logger.Log.Infow(
		"list artworks",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(artworks),
		"error", err,
	)

	return artworks, err
}

// GetByID returns the artwork with the given id, or nil when it does not exist.
func (r *ArtworkReadRepository) GetByID(ctx context.Context, id string) (*models.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = $1`

	var artwork models.Artwork
	err := r.db.GetContext(ctx, &artwork, query, id)

	logger.Log.Infow(
		"get artwork",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

// ArtworkWriteRepository creates, moderates and deletes artworks.
type ArtworkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	newID    func() (string, error)
}

func NewArtworkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ArtworkWriteRepository {
	return &ArtworkWriteRepository{db: db, txGetter: txGetter, newID: shortid.Generate}
}

func (r *ArtworkWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new artwork. The store assigns id and created_at.
func (r *ArtworkWriteRepository) Save(ctx context.Context, artwork models.Artwork) (*models.Artwork, error) {
	id, err := r.newID()
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO artworks (id, image_url, prompt, description, model, status,
			uploader_id, uploader_name, uploader_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + artworkColumns
	args := []any{
		id, artwork.ImageURL, artwork.Prompt, artwork.Description, artwork.Model, artwork.Status,
		artwork.UploaderID, artwork.UploaderName, artwork.UploaderEmail,
	}

	var saved models.Artwork
	err = sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow(
		"save artwork",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateStatus moves an artwork from one status to another. It reports
// false when the row is missing or no longer in the expected status.
func (r *ArtworkWriteRepository) UpdateStatus(ctx context.Context, id string, from, to models.Status) (bool, error) {
	query := `
		UPDATE artworks
		SET status = $3, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND status IS NOT DISTINCT FROM $2
	`
	args := []any{id, from, to}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"update artwork status",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Delete removes an artwork. It reports false when nothing was deleted.
func (r *ArtworkWriteRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM artworks WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"delete artwork",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
