package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

// HealthHandler reports whether the storage behind the app is usable.
type HealthHandler struct {
	storage domain.Ensurer
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(storage domain.Ensurer) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// HandleHealthz responds 200 {"status":"ok"} when the data directory and
// metadata store are ready, 503 otherwise.
// GET /healthz
func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ensure(r.Context()); err != nil {
		slog.Error("health check", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
