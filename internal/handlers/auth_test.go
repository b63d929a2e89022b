package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/prompt-gallery/internal/jwt"
	"github.com/sbilibin2017/prompt-gallery/internal/middlewares"
	"github.com/sbilibin2017/prompt-gallery/internal/services"
)

func TestAnonymousHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStarter := NewMockAnonymousStarter(ctrl)
	mockStarter.EXPECT().Anonymous(gomock.Any()).Return("visitor-token", nil)

	rr := httptest.NewRecorder()
	NewAnonymousHandler(mockStarter).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/anonymous", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "visitor-token", decodeBody(t, rr)["token"])
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		mockSetup          func(m *MockLoginer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "success",
			body: `{"email":"admin@gmail.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "admin@gmail.com", "secret123").Return("admin-token", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name: "wrong password",
			body: `{"email":"admin@gmail.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "admin@gmail.com", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "no admin store",
			body: `{"email":"admin@gmail.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "admin@gmail.com", "secret123").Return("", services.ErrNotConfigured)
			},
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedKey:        "error",
		},
		{
			name:               "missing password",
			body:               `{"email":"admin@gmail.com"}`,
			mockSetup:          func(m *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "malformed email",
			body:               `{"email":"admin","password":"secret123"}`,
			mockSetup:          func(m *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "invalid JSON",
			body:               `{"email":`,
			mockSetup:          func(m *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLoginer := NewMockLoginer(ctrl)
			tt.mockSetup(mockLoginer)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockLoginer).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			_, ok := decodeBody(t, rr)[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	sessionID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	signedIn := func() *http.Request {
		claims := &jwt.Claims{UserID: sessionID, Anonymous: true}
		claims.ID = "tok-1"
		claims.ExpiresAt = jwtlib.NewNumericDate(expiresAt)
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		return req.WithContext(middlewares.WithClaims(req.Context(), claims))
	}

	t.Run("clears session and revokes token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEnder := NewMockSessionEnder(ctrl)
		mockRevoker := NewMockTokenRevoker(ctrl)
		mockEnder.EXPECT().EndSession(gomock.Any(), sessionID).Return(nil)
		mockRevoker.EXPECT().Logout(gomock.Any(), "tok-1", expiresAt).Return(nil)

		rr := httptest.NewRecorder()
		NewLogoutHandler(mockEnder, mockRevoker).ServeHTTP(rr, signedIn())

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("cache failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEnder := NewMockSessionEnder(ctrl)
		mockEnder.EXPECT().EndSession(gomock.Any(), sessionID).Return(assert.AnError)

		rr := httptest.NewRecorder()
		NewLogoutHandler(mockEnder, NewMockTokenRevoker(ctrl)).ServeHTTP(rr, signedIn())

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("revocation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEnder := NewMockSessionEnder(ctrl)
		mockRevoker := NewMockTokenRevoker(ctrl)
		mockEnder.EXPECT().EndSession(gomock.Any(), sessionID).Return(nil)
		mockRevoker.EXPECT().Logout(gomock.Any(), "tok-1", expiresAt).Return(assert.AnError)

		rr := httptest.NewRecorder()
		NewLogoutHandler(mockEnder, mockRevoker).ServeHTTP(rr, signedIn())

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

// revokedTokens is an in-memory sign-out list.
type revokedTokens struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

func (r *revokedTokens) Logout(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[tokenID] = expiresAt
	return nil
}

func (r *revokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[tokenID]
	return ok, nil
}

type knownAdmins map[uuid.UUID]bool

func (k knownAdmins) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	return k[userID], nil
}

type noGateState struct{}

func (noGateState) EndSession(context.Context, uuid.UUID) error { return nil }

func TestLogout_EndsAdminAccess(t *testing.T) {
	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour))
	revoked := &revokedTokens{ids: map[string]time.Time{}}
	adminID := uuid.New()

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, revoked))
		r.Post("/auth/logout", NewLogoutHandler(noGateState{}, revoked))
		r.With(middlewares.AdminOnly(knownAdmins{adminID: true})).Get("/admin/stats", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	call := func(method, path, token string) int {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr.Code
	}

	token, err := tokens.Generate(context.Background(), adminID, false)
	require.NoError(t, err)
	other, err := tokens.Generate(context.Background(), adminID, false)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/admin/stats", token))
	assert.Equal(t, http.StatusNoContent, call(http.MethodPost, "/auth/logout", token))
	assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/admin/stats", token))
	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/admin/stats", other), "other sessions stay signed in")

	forged, err := tokens.Generate(context.Background(), uuid.New(), false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call(http.MethodGet, "/admin/stats", forged))
}

func TestMeHandler(t *testing.T) {
	id := uuid.New()

	rr := httptest.NewRecorder()
	NewMeHandler().ServeHTTP(rr, asAdmin(httptest.NewRequest(http.MethodGet, "/auth/me", nil), id))

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody(t, rr)
	assert.Equal(t, id.String(), resp["user_id"])
	assert.Equal(t, true, resp["admin"])
	assert.Equal(t, false, resp["anonymous"])

	rr = httptest.NewRecorder()
	NewMeHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeBody(t, rr)["status"])
}
