package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

type AdminReadRepository struct {
	db *sqlx.DB
}

func NewAdminReadRepository(db *sqlx.DB) *AdminReadRepository {
	return &AdminReadRepository{db: db}
}

// GetByEmail returns the admin with the given email, or nil when there is none.
func (r *AdminReadRepository) GetByEmail(ctx context.Context, email string) (*models.AdminDB, error) {
	const query = `
		SELECT admin_id, email, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1
		LIMIT 1
	`

	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, email)

	logger.Log.Infow(
		"get admin by email",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", admin.AdminID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// GetByID returns the admin with the given id, or nil when there is none.
func (r *AdminReadRepository) GetByID(ctx context.Context, adminID uuid.UUID) (*models.AdminDB, error) {
	const query = `
		SELECT admin_id, email, password_hash, created_at, updated_at
		FROM admins
		WHERE admin_id = $1
	`

	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, adminID)

	logger.Log.Infow(
		"get admin by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{adminID},
		"result", admin.Email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

type AdminWriteRepository struct {
	db *sqlx.DB
}

func NewAdminWriteRepository(db *sqlx.DB) *AdminWriteRepository {
	return &AdminWriteRepository{db: db}
}

// Save creates the admin or replaces the password hash of an existing one.
func (r *AdminWriteRepository) Save(ctx context.Context, email, passwordHash string) error {
	query := `
		INSERT INTO admins (email, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    updated_at = NOW()
	`
	args := []any{email, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"save admin",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
