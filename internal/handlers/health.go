package handlers

import "net/http"

// NewHealthHandler reports liveness.
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
