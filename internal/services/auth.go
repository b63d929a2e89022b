package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// ErrInvalidCredentials is returned for an unknown admin or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminReader defines read-only operations for admins.
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminDB, error)
	GetByID(ctx context.Context, adminID uuid.UUID) (*models.AdminDB, error)
}

// AdminWriter defines write operations for admins.
type AdminWriter interface {
	Save(ctx context.Context, email, passwordHash string) error
}

// TokenRevoker remembers signed-out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, anonymous bool) (string, error)
}

// AuthService issues session tokens.
type AuthService struct {
	reader  AdminReader
	writer  AdminWriter
	revoker TokenRevoker
	jwt     JWTGenerator
}

// NewAuthService creates a new AuthService instance. Nil admin repositories
// disable admin login.
func NewAuthService(reader AdminReader, writer AdminWriter, revoker TokenRevoker, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		revoker: revoker,
		jwt:     jwt,
	}
}

// Anonymous starts a visitor session.
func (svc *AuthService) Anonymous(ctx context.Context) (string, error) {
	token, err := svc.jwt.Generate(ctx, uuid.New(), true)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// Login authenticates an admin and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if svc.reader == nil {
		return "", ErrNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "err", err)
		return "", err
	}
	if admin == nil {
		logger.Log.Infow("admin does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, admin.AdminID, false)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// IsAdmin reports whether userID belongs to a stored administrator.
func (svc *AuthService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if svc.reader == nil {
		return false, nil
	}

	admin, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "user_id", userID, "err", err)
		return false, err
	}
	return admin != nil, nil
}

// Logout revokes the token until its expiry.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if tokenID == "" || ttl <= 0 || svc.revoker == nil {
		return nil
	}

	if err := svc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}

// IsRevoked reports whether the token was signed out.
func (svc *AuthService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" || svc.revoker == nil {
		return false, nil
	}
	return svc.revoker.IsRevoked(ctx, tokenID)
}

// EnsureAdmin creates the bootstrap admin or resets its password.
// It does nothing when email or password is empty.
func (svc *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || svc.writer == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save admin", "err", err)
		return err
	}

	logger.Log.Infow("admin account ready", "email", email)
	return nil
}
