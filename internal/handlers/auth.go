package handlers

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/middlewares"
	"github.com/sbilibin2017/prompt-gallery/internal/validator"
)

// AnonymousStarter starts visitor sessions.
type AnonymousStarter interface {
	Anonymous(ctx context.Context) (string, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionEnder drops the server-side state of a session.
type SessionEnder interface {
	EndSession(ctx context.Context, sessionID uuid.UUID) error
}

// TokenRevoker signs a token out until it expires.
type TokenRevoker interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

var requestValidator = validator.New()

// LoginRequest represents the JSON body for admin login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: admin@gmail.com
	Email string `json:"email" validate:"notblank,basic_email"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"notblank"`
}

// TokenResponse carries a session token
// swagger:model TokenResponse
type TokenResponse struct {
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// MeResponse describes the current session
// swagger:model MeResponse
type MeResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Anonymous bool      `json:"anonymous"`
	Admin     bool      `json:"admin"`
}

// NewAnonymousHandler starts a visitor session.
// @Summary Start visitor session
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenResponse
// @Router /auth/anonymous [post]
func NewAnonymousHandler(svc AnonymousStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := svc.Anonymous(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}

// NewLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.TokenResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := requestValidator.Validate(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}

// NewLogoutHandler clears the prompt access state of the session and revokes its token.
// @Summary Logout
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc SessionEnder, tokens TokenRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := svc.EndSession(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("logout failed", "user_id", claims.UserID, "err", err)
			writeServiceError(w, err)
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		if err := tokens.Logout(r.Context(), claims.ID, expiresAt); err != nil {
			logger.Log.Errorw("token revocation failed", "user_id", claims.UserID, "err", err)
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMeHandler describes the current session.
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeJSON(w, http.StatusOK, MeResponse{
			UserID:    claims.UserID,
			Anonymous: claims.Anonymous,
			Admin:     claims.IsAdmin(),
		})
	}
}
