package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/prompt-gallery/internal/jwt"
	"github.com/sbilibin2017/prompt-gallery/internal/middlewares"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asVisitor(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(middlewares.WithClaims(r.Context(), &jwt.Claims{UserID: id, Anonymous: true}))
}

func asAdmin(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(middlewares.WithClaims(r.Context(), &jwt.Claims{UserID: id}))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}
